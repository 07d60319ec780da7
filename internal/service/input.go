package service

import (
	"errors"
	"fmt"
	"strings"

	"vocabook/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// WordInput holds the fields of an add or update request
type WordInput struct {
	Word     string `validate:"required,max=100"`
	Meaning  string `validate:"required,max=200"`
	Category string
}

// normalize lowercases the word and trims every field
func (i WordInput) normalize() WordInput {
	return WordInput{
		Word:     domain.NormalizeKey(i.Word),
		Meaning:  strings.TrimSpace(i.Meaning),
		Category: strings.TrimSpace(i.Category),
	}
}

// Validate checks presence and length limits
func (i WordInput) Validate() error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fieldErrs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrs = append(fieldErrs, domain.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return &domain.ValidationError{Errors: fieldErrs}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
