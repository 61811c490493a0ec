package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDraftValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid draft", func(t *testing.T) {
		d := Draft{
			Description: "Weekly shopping",
			Amount:      "42.5",
			Date:        "2025-03-14",
			Category:    "Groceries",
		}

		e, err := d.Validate()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if e.ID != nil {
			t.Fatalf("expected nil ID for new draft, got %d", *e.ID)
		}
		if !e.Amount.Equal(decimal.RequireFromString("42.50")) {
			t.Errorf("expected amount 42.50, got %s", e.Amount)
		}
		if e.Date.String() != "2025-03-14" {
			t.Errorf("expected date 2025-03-14, got %s", e.Date)
		}
		if e.Category != CategoryGroceries {
			t.Errorf("expected Groceries, got %s", e.Category)
		}
	})

	t.Run("description trimmed", func(t *testing.T) {
		d := Draft{Description: "  Bus ticket  ", Amount: "2.90", Date: "2025-03-14", Category: "Transport"}
		e, err := d.Validate()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if e.Description != "Bus ticket" {
			t.Errorf("expected trimmed description, got %q", e.Description)
		}
	})

	t.Run("blank description rejected", func(t *testing.T) {
		d := Draft{Description: "   ", Amount: "10", Date: "2025-03-14", Category: "Bills"}
		if _, err := d.Validate(); !errors.Is(err, ErrEmptyDescription) {
			t.Fatalf("expected ErrEmptyDescription, got %v", err)
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		d := Draft{Description: "x", Amount: "0", Date: "2025-03-14", Category: "Other"}
		if _, err := d.Validate(); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		d := Draft{Description: "x", Amount: "-3.20", Date: "2025-03-14", Category: "Other"}
		if _, err := d.Validate(); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("non-numeric amount rejected", func(t *testing.T) {
		d := Draft{Description: "x", Amount: "ten euros", Date: "2025-03-14", Category: "Other"}
		if _, err := d.Validate(); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("unparseable date rejected", func(t *testing.T) {
		d := Draft{Description: "x", Amount: "5", Date: "14.03.2025", Category: "Other"}
		if _, err := d.Validate(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("category outside enumeration rejected", func(t *testing.T) {
		d := Draft{Description: "x", Amount: "5", Date: "2025-03-14", Category: "Gadgets"}
		if _, err := d.Validate(); !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		if _, err := (Draft{Amount: "5", Date: "2025-03-14", Category: "Other"}).Validate(); err == nil {
			t.Error("expected error for missing description")
		}
		if _, err := (Draft{Description: "x", Amount: "5", Category: "Other"}).Validate(); err == nil {
			t.Error("expected error for missing date")
		}
		if _, err := (Draft{Description: "x", Amount: "5", Date: "2025-03-14"}).Validate(); err == nil {
			t.Error("expected error for missing category")
		}
	})
}

func TestDraftFieldChecks(t *testing.T) {
	t.Parallel()

	// A draft is re-checked field by field on every change; Valid flips to
	// true only when all four fields pass at once.
	d := NewDraft()
	if d.Valid() {
		t.Fatal("empty draft must not be valid")
	}
	if d.CheckDate() != nil {
		t.Fatal("new draft must default to a valid current date")
	}

	d.Description = "Cinema"
	d.Amount = "12"
	if d.Valid() {
		t.Fatal("draft without category must not be valid")
	}

	d.Category = "leisure" // mixed case is accepted
	if !d.Valid() {
		t.Fatal("expected fully populated draft to be valid")
	}
}

func TestDraftOfCarriesID(t *testing.T) {
	t.Parallel()

	id := int64(7)
	original := Expense{
		ID:          &id,
		Description: "Electricity",
		Amount:      decimal.RequireFromString("80.10"),
		Date:        NewDate(2025, 2, 1),
		Category:    CategoryBills,
	}

	d := DraftOf(original)
	if d.ID == nil || *d.ID != 7 {
		t.Fatal("expected draft to carry the original ID")
	}
	if d.Amount != "80.10" {
		t.Errorf("expected seeded amount 80.10, got %q", d.Amount)
	}

	d.Amount = "81.00"
	e, err := d.Validate()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e.ID == nil || *e.ID != 7 {
		t.Fatal("expected validated expense to keep the original ID")
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"Groceries", "groceries", " GROCERIES "} {
		c, err := ParseCategory(s)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", s, err)
		}
		if c != CategoryGroceries {
			t.Errorf("ParseCategory(%q) = %s, want Groceries", s, c)
		}
	}

	if _, err := ParseCategory("Food"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := ParseCategory(""); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory for empty input, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2025-03-14")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.String() != "2025-03-14" {
		t.Errorf("round trip changed the date: %s", d)
	}

	// Full timestamps are truncated to their date part.
	d, err = ParseDate("2025-03-14T22:15:04Z")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.String() != "2025-03-14" {
		t.Errorf("expected timestamp truncated to 2025-03-14, got %s", d)
	}

	if _, err := ParseDate(""); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
