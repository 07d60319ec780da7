package domain

import "fmt"

// Direction tells which side of a word pair is asked
type Direction string

const (
	ForeignToNative Direction = "english_to_korean"
	NativeToForeign Direction = "korean_to_english"
)

// ParseDirection maps a raw value to a Direction, defaulting to ForeignToNative
func ParseDirection(s string) Direction {
	if Direction(s) == NativeToForeign {
		return NativeToForeign
	}
	return ForeignToNative
}

// Mode is the answer format of a quiz question
type Mode string

const (
	ModeText     Mode = "text"
	ModeMultiple Mode = "multiple"
)

// ParseMode maps a raw value to a Mode, defaulting to ModeText
func ParseMode(s string) Mode {
	if Mode(s) == ModeMultiple {
		return ModeMultiple
	}
	return ModeText
}

// ChoiceCount is the number of options in a multiple-choice question
const ChoiceCount = 4

// QuizRequest describes the question to generate
type QuizRequest struct {
	Direction Direction
	Mode      Mode
	Category  string
	Focus     bool
}

// Question is a generated quiz question. The caller echoes Word, Direction,
// Mode and CorrectIndex back when submitting an answer.
type Question struct {
	Word          string
	Direction     Direction
	Mode          Mode
	Prompt        string
	CorrectAnswer string
	Choices       []string
	CorrectIndex  int
}

// Submission is an answer to a previously generated question
type Submission struct {
	Word         string
	Answer       string
	Direction    Direction
	Mode         Mode
	CorrectIndex *int
}

// GradeResult is the outcome of grading a submission
type GradeResult struct {
	Correct       bool
	CorrectAnswer string
	Stats         Stats
}

// Prompt renders the question text for a word in the given direction
func Prompt(d Direction, word Word) string {
	if d == NativeToForeign {
		return fmt.Sprintf("Which word means '%s'?", word.Meaning)
	}
	return fmt.Sprintf("What does '%s' mean?", word.Word)
}

// Answer returns the expected answer for a word in the given direction
func Answer(d Direction, word Word) string {
	if d == NativeToForeign {
		return word.Word
	}
	return word.Meaning
}
