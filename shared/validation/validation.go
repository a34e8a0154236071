package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kebab-dev/kebab/shared/domain"
)

const (
	TitleMinLen = 1
	TitleMaxLen = 255
)

// Title checks a title exactly as given: no trimming, length counted in characters.
// NUL is rejected, postgres text cannot store it.
func Title(field, value string) []Issue {
	n := utf8.RuneCountInString(value)
	switch {
	case strings.ContainsRune(value, 0):
		return []Issue{{Field: field, Message: "must not contain NUL characters"}}
	case n < TitleMinLen:
		return []Issue{{Field: field, Message: fmt.Sprintf("must be at least %d character", TitleMinLen)}}
	case n > TitleMaxLen:
		return []Issue{{Field: field, Message: fmt.Sprintf("must be at most %d characters", TitleMaxLen)}}
	}
	return nil
}

// BoardId parses a canonical 36-character UUID.
// uuid.Parse also accepts urn and braced forms, those are rejected here.
func BoardId(raw string) (domain.BoardId, error) {
	if len(raw) != 36 {
		return uuid.Nil, invalidId()
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidId()
	}
	return id, nil
}

func invalidId() error {
	return &Error{Issues: []Issue{{Field: "id", Message: "must be a valid UUID"}}}
}

// FromValidator converts go-playground/validator errors into issues keyed by the reported field name.
// Any other error is returned unchanged as the second value.
func FromValidator(err error) ([]Issue, error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{Field: fe.Field(), Message: describe(fe)})
	}
	return issues, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
