// Package corpus turns the plain-text problem corpus into model.Problem records.
//
// A corpus is a sequence of segments, each opened by a line starting with
// "Problem":
//
//	Problem 1
//	=========
//
//	Find the sum.
//
//	Answer: e1edf9d1967ca96767dcc2b2d6df69f4
//
// Lines before the first header are ignored.
package corpus

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"euler_offline/internal/domain/model"
)

const (
	headerPrefix    = "Problem"
	underlinePrefix = "="
	answerMarker    = "Answer: "
)

var (
	ErrWrongHeader   = errors.New("wrong header")
	ErrNoDescription = errors.New("no description")
	ErrNoAnswer      = errors.New("no answer statement")
)

// ParseError reports a malformed segment. Lines holds the segment exactly as it
// appeared in the corpus.
type ParseError struct {
	Message string
	Lines   []string
	Segment int // 1-based position in the corpus; 0 when parsed on its own

	reason error
}

func (e *ParseError) Error() string {
	if e.Segment > 0 {
		return fmt.Sprintf("segment %d: %s", e.Segment, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.reason
}

func newParseError(reason error, message string, lines []string) *ParseError {
	return &ParseError{
		Message: "invalid problem syntax (" + message + ")",
		Lines:   append([]string(nil), lines...),
		reason:  reason,
	}
}

// SplitLines splits text on "\n" or "\r\n".
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Parse parses a whole corpus. Records come back in header order. The first
// malformed segment fails the parse and nothing else is returned.
func Parse(text string) ([]model.Problem, error) {
	return ParseLines(SplitLines(text))
}

// ParseLines is Parse over a corpus that is already split into lines.
func ParseLines(lines []string) ([]model.Problem, error) {
	problems := []model.Problem{}

	var segment []string
	open := false
	flush := func() error {
		p, err := ParseSegment(segment)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Segment = len(problems) + 1
			}
			return err
		}
		problems = append(problems, p)
		return nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, headerPrefix) {
			if open {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			segment = []string{line}
			open = true
			continue
		}
		if open {
			segment = append(segment, line)
		}
	}
	if open {
		if err := flush(); err != nil {
			return nil, err
		}
	}

	return problems, nil
}

// ParseParagraph parses a single segment given as text.
func ParseParagraph(text string) (model.Problem, error) {
	return ParseSegment(SplitLines(text))
}

// ParseSegment builds a Problem from the lines of one segment: header line,
// "=" underline, description, and an "Answer: " line carrying the digest.
func ParseSegment(lines []string) (model.Problem, error) {
	if len(lines) < 2 ||
		!strings.HasPrefix(lines[0], headerPrefix) ||
		!strings.HasPrefix(lines[1], underlinePrefix) {
		return model.Problem{}, newParseError(ErrWrongHeader, "wrong header", lines)
	}

	answerLine := -1
	for i := 2; i < len(lines); i++ {
		if strings.HasPrefix(trimLeft(lines[i]), answerMarker) {
			answerLine = i
			break
		}
	}

	descStart := -1
	end := len(lines)
	if answerLine >= 0 {
		end = answerLine
	}
	for i := 2; i < end; i++ {
		if !isBlank(lines[i]) {
			descStart = i
			break
		}
	}
	if descStart < 0 {
		return model.Problem{}, newParseError(ErrNoDescription, "no description", lines)
	}
	if answerLine < 0 {
		return model.Problem{}, newParseError(ErrNoAnswer, "no answer statement", lines)
	}

	descEnd := answerLine
	for isBlank(lines[descEnd-1]) {
		descEnd--
	}

	hash := strings.TrimPrefix(trimLeft(lines[answerLine]), answerMarker)
	if hash == "" {
		return model.Problem{}, newParseError(ErrNoAnswer, "empty answer statement", lines)
	}

	return model.Problem{
		Title:       lines[0],
		Description: strings.Join(lines[descStart:descEnd], "\n"),
		AnswerHash:  hash,
	}, nil
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
