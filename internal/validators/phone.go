package validators

import "strings"

// NormalizePhone remove separadores comuns de telefones digitados
// (espaços, hífens, parênteses e pontos), preservando o "+" inicial.
func NormalizePhone(phone string) string {
	var b strings.Builder

	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func IsValidPhone(phone string) bool {
	p := NormalizePhone(phone)

	digits := strings.TrimPrefix(p, "+")
	if len(digits) < 8 || len(digits) > 15 {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
