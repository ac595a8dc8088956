package corpus

import (
	"strings"

	"euler_offline/internal/domain/model"
)

// Format renders p in the corpus layout ParseSegment reads back.
func Format(p model.Problem) string {
	var b strings.Builder
	writeProblem(&b, p)
	return b.String()
}

// FormatAll renders problems as one corpus, separated by blank lines.
func FormatAll(problems []model.Problem) string {
	var b strings.Builder
	for i, p := range problems {
		if i > 0 {
			b.WriteString("\n")
		}
		writeProblem(&b, p)
	}
	return b.String()
}

func writeProblem(b *strings.Builder, p model.Problem) {
	underline := len(p.Title)
	if underline == 0 {
		underline = 1
	}
	b.WriteString(p.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(underlinePrefix, underline))
	b.WriteString("\n\n")
	b.WriteString(p.Description)
	b.WriteString("\n\n")
	b.WriteString(answerMarker)
	b.WriteString(p.AnswerHash)
	b.WriteString("\n")
}
