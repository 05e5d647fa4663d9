package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

type SuggestSlotsInput struct {
	PreferredDate time.Time

	// CustomerID é informativo: não filtra o resultado nem é validado.
	CustomerID uint
}

type SuggestSlots struct {
	repo domain.Repository
}

func NewSuggestSlots(repo domain.Repository) *SuggestSlots {
	return &SuggestSlots{repo: repo}
}

// Execute varre a janela de 3 dias ao redor da data preferida
// (dia -1, dia, dia +1; horas do expediente em ordem crescente)
// e devolve os primeiros slots livres, no máximo 5.
func (uc *SuggestSlots) Execute(
	ctx context.Context,
	in SuggestSlotsInput,
) ([]time.Time, error) {

	suggestions := make([]time.Time, 0, domain.MaxSuggestions)

	for _, slot := range domain.SuggestionCandidates(in.PreferredDate) {
		free, err := uc.repo.IsSlotFree(ctx, slot)
		if err != nil {
			return nil, err
		}

		if free {
			suggestions = append(suggestions, slot)
			if len(suggestions) == domain.MaxSuggestions {
				break
			}
		}
	}

	return suggestions, nil
}
