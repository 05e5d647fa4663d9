package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+5511998765432", NormalizePhone("+55 (11) 99876-5432"))
	assert.Equal(t, "11998765432", NormalizePhone("11 99876.5432"))
	assert.Equal(t, "+5511", NormalizePhone("+55-11"))
	// "+" fora da primeira posição é descartado
	assert.Equal(t, "5511", NormalizePhone("55+11"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+55 11 99876-5432"))
	assert.True(t, IsValidPhone("(11) 3456-7890"))

	assert.False(t, IsValidPhone("1234567"))            // curto demais
	assert.False(t, IsValidPhone("12345678901234567"))  // longo demais
	assert.False(t, IsValidPhone("telefone"))           // sem dígitos
	assert.False(t, IsValidPhone(""))
}
