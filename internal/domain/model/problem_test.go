package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "d41d8cd98f00b204e9800998ecf8427e"},
		{input: "0", want: "cfcd208495d565ef66e7dff9f98764da"},
		{input: "6", want: "1679091c5a880faf6fb5e6087eb1b2dc"},
		{input: "233168", want: "e1edf9d1967ca96767dcc2b2d6df69f4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, HashAnswer(tt.input))
		})
	}
}

func TestCheckAnswer(t *testing.T) {
	p := Problem{
		Title:       "Problem 1",
		Description: "Find the sum.",
		AnswerHash:  "e1edf9d1967ca96767dcc2b2d6df69f4",
	}

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "correct", candidate: "233168", want: true},
		{name: "wrong", candidate: "0", want: false},
		{name: "empty", candidate: "", want: false},
		{name: "not trimmed", candidate: " 233168", want: false},
		{name: "trailing newline", candidate: "233168\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.CheckAnswer(tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := p.CheckAnswer(tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestCheckAnswer_CaseSensitiveDigest(t *testing.T) {
	p := Problem{Title: "Problem 6", Description: "x", AnswerHash: "1679091C5A880FAF6FB5E6087EB1B2DC"}

	got, err := p.CheckAnswer("6")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCheckAnswer_NoKnownAnswer(t *testing.T) {
	p := Problem{Title: "Problem 2", Description: "Unsolved.", AnswerHash: UnknownAnswer}
	assert.False(t, p.HasKnownAnswer())

	for _, candidate := range []string{"", "?", "233168", HashAnswer("?")} {
		got, err := p.CheckAnswer(candidate)
		assert.ErrorIs(t, err, ErrNoKnownAnswer, "candidate %q", candidate)
		assert.False(t, got)
	}
}
