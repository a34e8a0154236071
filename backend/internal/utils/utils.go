package utils

import (
	"github.com/kebab-dev/kebab/shared/domain"
	"github.com/kebab-dev/kebab/shared/validation"
)

// BoardValidator checks board input before it reaches the store.
type BoardValidator struct{}

func New() *BoardValidator {
	return &BoardValidator{}
}

func (v *BoardValidator) Title(title string) error {
	return validation.AsError(validation.Title("title", title))
}

func (v *BoardValidator) Id(raw string) (domain.BoardId, error) {
	return validation.BoardId(raw)
}
