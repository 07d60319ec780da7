package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "answer_2",
			expected: "answer_2",
		},
		{
			name:     "string with whitespace",
			input:    "  page_3  ",
			expected: "page_3",
		},
		{
			name:     "telebot unique marker",
			input:    "\fanswer_0",
			expected: "answer_0",
		},
		{
			name:     "string with newline",
			input:    "page\n_1",
			expected: "page_1",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "quiz\x00\x01",
			expected: "quiz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseSuffix(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		prefix      string
		expected    int
		expectedErr bool
	}{
		{name: "answer index", data: "answer_3", prefix: answerPrefix, expected: 3},
		{name: "page number", data: "page_12", prefix: pagePrefix, expected: 12},
		{name: "wrong prefix", data: "page_1", prefix: answerPrefix, expectedErr: true},
		{name: "not a number", data: "answer_x", prefix: answerPrefix, expectedErr: true},
		{name: "missing number", data: "page_", prefix: pagePrefix, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := parseSuffix(tt.data, tt.prefix)

			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}
