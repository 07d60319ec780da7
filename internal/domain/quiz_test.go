package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	assert.Equal(t, NativeToForeign, ParseDirection("korean_to_english"))
	assert.Equal(t, ForeignToNative, ParseDirection("english_to_korean"))
	assert.Equal(t, ForeignToNative, ParseDirection(""))
	assert.Equal(t, ForeignToNative, ParseDirection("unknown"))
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeMultiple, ParseMode("multiple"))
	assert.Equal(t, ModeText, ParseMode("text"))
	assert.Equal(t, ModeText, ParseMode(""))
}

func TestPromptAndAnswer(t *testing.T) {
	w := Word{Word: "apple", Meaning: "사과"}

	assert.Equal(t, "What does 'apple' mean?", Prompt(ForeignToNative, w))
	assert.Equal(t, "사과", Answer(ForeignToNative, w))

	assert.Equal(t, "Which word means '사과'?", Prompt(NativeToForeign, w))
	assert.Equal(t, "apple", Answer(NativeToForeign, w))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "apple", NormalizeKey("  Apple \n"))
	assert.Equal(t, "ice cream", NormalizeKey("Ice Cream"))
	assert.Equal(t, "", NormalizeKey("   "))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "word", Message: "is required"},
		{Field: "meaning", Message: "must be at most 200 characters"},
	}}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "word is required; meaning must be at most 200 characters", err.Error())
}
