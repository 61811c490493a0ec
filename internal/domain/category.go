package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the closed set of expense categories. Free-text categories
// are unrepresentable past the parse/unmarshal boundary.
type Category string

const (
	CategoryGroceries Category = "Groceries"
	CategoryTransport Category = "Transport"
	CategoryLeisure   Category = "Leisure"
	CategoryBills     Category = "Bills"
	CategoryOther     Category = "Other"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryTransport,
		CategoryLeisure,
		CategoryBills,
		CategoryOther,
	}
}

// ParseCategory parses user input into a Category. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func (c Category) String() string {
	return string(c)
}

// MarshalJSON serializes the category as its literal string.
func (c Category) MarshalJSON() ([]byte, error) {
	if _, err := ParseCategory(string(c)); err != nil {
		return nil, err
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON rejects categories outside the enumeration.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
