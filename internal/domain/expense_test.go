package domain

import (
	"encoding/json"
	"testing"
)

func TestCategoryJSONClosedSet(t *testing.T) {
	t.Parallel()

	var c Category
	if err := json.Unmarshal([]byte(`"transport"`), &c); err != nil {
		t.Fatalf("expected mixed case to unmarshal, got %v", err)
	}
	if c != CategoryTransport {
		t.Errorf("expected canonical Transport, got %s", c)
	}

	if err := json.Unmarshal([]byte(`"Snacks"`), &c); err == nil {
		t.Fatal("expected error for category outside the enumeration")
	}

	if _, err := json.Marshal(Category("Snacks")); err == nil {
		t.Fatal("expected marshal of invalid category to fail")
	}
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewDate(2025, 3, 14))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(b) != `"2025-03-14"` {
		t.Errorf("expected bare date, got %s", b)
	}

	var d Date
	if err := json.Unmarshal([]byte(`"2025-12-01"`), &d); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.String() != "2025-12-01" {
		t.Errorf("round trip changed the date: %s", d)
	}
}
