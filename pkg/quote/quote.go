// Package quote defines the quote record and the helpers used to filter,
// pick and serialise lists of quotes.
package quote

import (
	"fmt"
	"strings"
)

// AllCategories is the filter value that selects every quote.
const AllCategories = "all"

// Quote is a single (text, category) record. Text is the identity used when
// merging lists; category is free-form.
type Quote struct {
	Text     string `json:"text" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// New returns a quote with surrounding whitespace trimmed from both fields.
func New(text, category string) Quote {
	return Quote{
		Text:     strings.TrimSpace(text),
		Category: strings.TrimSpace(category),
	}
}

func (q Quote) String() string {
	return fmt.Sprintf("%q — [%s]", q.Text, q.Category)
}

// Defaults returns a fresh copy of the built-in starting list.
func Defaults() []Quote {
	return []Quote{
		{Text: "The only limit to our realization of tomorrow is our doubts of today.", Category: "Motivation"},
		{Text: "Life is what happens when you're busy making other plans.", Category: "Life"},
		{Text: "Imagination is more important than knowledge.", Category: "Inspiration"},
	}
}
