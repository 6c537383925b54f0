package quote

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotArray is returned when serialised data does not hold a JSON array.
var ErrNotArray = errors.New("file must contain an array of quotes")

// Categories returns the unique categories of list in first-seen order.
func Categories(list []Quote) []string {
	seen := make(map[string]struct{}, len(list))
	cats := make([]string, 0, len(list))
	for _, q := range list {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		cats = append(cats, q.Category)
	}
	return cats
}

// Filter returns the quotes in category. An empty category or AllCategories
// returns a copy of the whole list.
func Filter(list []Quote, category string) []Quote {
	out := make([]Quote, 0, len(list))
	for _, q := range list {
		if IsAll(category) || q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// IsAll reports whether category selects every quote.
func IsAll(category string) bool {
	return category == "" || category == AllCategories
}

// Find returns the index of the first quote whose text equals text, or -1.
func Find(list []Quote, text string) int {
	for i, q := range list {
		if q.Text == text {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the first quote equal to q, or -1.
func IndexOf(list []Quote, q Quote) int {
	for i := range list {
		if list[i] == q {
			return i
		}
	}
	return -1
}

// Clone returns a copy of list that shares no backing array with it.
func Clone(list []Quote) []Quote {
	if list == nil {
		return nil
	}
	out := make([]Quote, len(list))
	copy(out, list)
	return out
}

// MarshalList serialises list as an indented JSON array.
func MarshalList(list []Quote) ([]byte, error) {
	if list == nil {
		list = []Quote{}
	}
	return json.MarshalIndent(list, "", "  ")
}

// UnmarshalList decodes a JSON array of quotes. Anything other than an array,
// including null, yields ErrNotArray.
func UnmarshalList(data []byte) ([]Quote, error) {
	trimmed := bytes.TrimSpace(data)
	var probe any
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, err
	}
	if _, ok := probe.([]any); !ok {
		return nil, ErrNotArray
	}
	var list []Quote
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, err
	}
	return list, nil
}
