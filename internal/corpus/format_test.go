package corpus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euler_offline/internal/domain/model"
)

func TestFormat(t *testing.T) {
	got := Format(model.Problem{Title: "Problem 1", Description: "Find the sum.", AnswerHash: sumHash})
	want := "Problem 1\n=========\n\nFind the sum.\n\nAnswer: " + sumHash + "\n"
	assert.Equal(t, want, got)
}

func TestFormat_RoundTrip(t *testing.T) {
	problems := []model.Problem{
		{Title: "Problem 1", Description: "Find the sum.", AnswerHash: sumHash},
		{Title: "Problem 2", Description: "Line one.\n\n\n  Indented line.\nLast.", AnswerHash: model.UnknownAnswer},
		{Title: "Problem 3 (hard)", Description: "x", AnswerHash: "trailing space "},
		{Title: "Problem", Description: "Untitled.", AnswerHash: "0"},
	}

	for _, p := range problems {
		again, err := ParseParagraph(Format(p))
		require.NoError(t, err)
		if diff := cmp.Diff(p, again); diff != "" {
			t.Errorf("ParseParagraph(Format(%q)) mismatch (-want +got):\n%s", p.Title, diff)
		}
	}

	parsed, err := Parse(FormatAll(problems))
	require.NoError(t, err)
	if diff := cmp.Diff(problems, parsed); diff != "" {
		t.Errorf("Parse(FormatAll) mismatch (-want +got):\n%s", diff)
	}

	reparsed, err := Parse(FormatAll(parsed))
	require.NoError(t, err)
	assert.Equal(t, parsed, reparsed)
}
