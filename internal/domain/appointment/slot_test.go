package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlot(t *testing.T) {
	t.Run("trunca minutos e segundos", func(t *testing.T) {
		in := time.Date(2026, 9, 10, 14, 37, 22, 500, time.UTC)
		got := NormalizeSlot(in)

		assert.Equal(t, time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC), got)
	})

	t.Run("converte para UTC antes de truncar", func(t *testing.T) {
		loc := time.FixedZone("UTC-3", -3*60*60)
		in := time.Date(2026, 9, 10, 22, 30, 0, 0, loc) // 01:30 UTC do dia 11

		got := NormalizeSlot(in)

		assert.Equal(t, time.Date(2026, 9, 11, 1, 0, 0, 0, time.UTC), got)
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("hora cheia permanece igual", func(t *testing.T) {
		in := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
		assert.True(t, NormalizeSlot(in).Equal(in))
	})
}

func TestSuggestionCandidates(t *testing.T) {
	preferred := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	candidates := SuggestionCandidates(preferred)
	require.Len(t, candidates, 3*SlotsPerDay)

	// primeiro candidato: 09:00 do dia anterior
	assert.Equal(t, time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC), candidates[0])

	// último candidato: 16:00 do dia seguinte
	assert.Equal(t, time.Date(2024, 6, 16, 16, 0, 0, 0, time.UTC), candidates[len(candidates)-1])

	// ordem estritamente crescente dentro da janela
	for i := 1; i < len(candidates); i++ {
		assert.True(t, candidates[i].After(candidates[i-1]),
			"candidato %d deveria vir depois do anterior", i)
	}

	// todas as horas dentro do expediente
	for _, c := range candidates {
		assert.GreaterOrEqual(t, c.Hour(), WorkDayStartHour)
		assert.Less(t, c.Hour(), WorkDayEndHour)
	}
}

func TestSuggestionCandidatesIgnoresPreferredHour(t *testing.T) {
	morning := SuggestionCandidates(time.Date(2024, 6, 15, 2, 0, 0, 0, time.UTC))
	evening := SuggestionCandidates(time.Date(2024, 6, 15, 23, 45, 0, 0, time.UTC))

	assert.Equal(t, morning, evening)
}
