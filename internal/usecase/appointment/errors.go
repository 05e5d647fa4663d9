package appointment

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

// asNotFound traduz apenas registro inexistente para erro de negócio;
// falha de infraestrutura sobe como está (vira 500, nunca conflito).
func asNotFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
