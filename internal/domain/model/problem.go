package model

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
)

// UnknownAnswer is stored in place of a digest when the corpus does not record
// the correct answer.
const UnknownAnswer = "?"

var ErrNoKnownAnswer = errors.New("this problem has no known answer")

// Problem is one parsed corpus entry. It is built once by the corpus parser and
// never mutated afterwards.
type Problem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AnswerHash  string `json:"-"` // md5 hex digest or UnknownAnswer
}

// CatalogEntry is a Problem as served: its 1-based position in the corpus and
// a URL slug derived from the title.
type CatalogEntry struct {
	Position int     `json:"position"`
	Slug     string  `json:"slug"`
	Problem  Problem `json:"-"`
}

func (p Problem) HasKnownAnswer() bool {
	return p.AnswerHash != UnknownAnswer
}

// CheckAnswer hashes candidate and compares it with the stored digest.
// The candidate is hashed as given; callers own any trimming or case folding.
// Returns ErrNoKnownAnswer when the problem has no recorded answer.
func (p Problem) CheckAnswer(candidate string) (bool, error) {
	if !p.HasKnownAnswer() {
		return false, ErrNoKnownAnswer
	}
	return HashAnswer(candidate) == p.AnswerHash, nil
}

// HashAnswer returns the lowercase hex md5 digest of answer, the format
// stored after "Answer: " in existing corpora.
func HashAnswer(answer string) string {
	sum := md5.Sum([]byte(answer))
	return hex.EncodeToString(sum[:])
}
