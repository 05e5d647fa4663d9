package appointment

import "time"

// ===============================
// Slot / expediente
// ===============================

// Expediente fixo: 09:00–16:59, 8 slots de uma hora por dia.
// Usado apenas pela busca de sugestões; a reserva aceita qualquer hora cheia.
const (
	WorkDayStartHour = 9
	WorkDayEndHour   = 17 // exclusivo

	SlotsPerDay = WorkDayEndHour - WorkDayStartHour

	MaxSuggestions = 5
)

// NormalizeSlot converte o instante para UTC e trunca para a hora cheia.
// Todo slot passa por aqui antes de qualquer checagem ou escrita.
func NormalizeSlot(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), 0, 0, 0, time.UTC)
}

// DayOf retorna a meia-noite UTC do dia do instante.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SuggestionCandidates lista, na ordem de varredura, os slots candidatos
// ao redor da data preferida: dia anterior, dia preferido e dia seguinte,
// cada um com as horas do expediente em ordem crescente (24 candidatos).
// Fins de semana entram na varredura como qualquer outro dia.
func SuggestionCandidates(preferred time.Time) []time.Time {
	day := DayOf(preferred)

	candidates := make([]time.Time, 0, 3*SlotsPerDay)
	for d := -1; d <= 1; d++ {
		cur := day.AddDate(0, 0, d)
		for hour := WorkDayStartHour; hour < WorkDayEndHour; hour++ {
			candidates = append(candidates, cur.Add(time.Duration(hour)*time.Hour))
		}
	}

	return candidates
}
