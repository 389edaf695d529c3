package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestIsValidExpenseAmount(t *testing.T) {
	tests := []struct {
		amount   string
		expected bool
	}{
		{amount: "0.01", expected: true},
		{amount: "199.50", expected: true},
		{amount: "999999999.99", expected: true},
		{amount: "1000000000.00", expected: false},
		{amount: "0", expected: false},
		{amount: "-5", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := IsValidExpenseAmount(decimal.RequireFromString(tt.amount)); got != tt.expected {
				t.Errorf("expected %v for %s, got %v", tt.expected, tt.amount, got)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		input    string
		expectOK bool
	}{
		{name: "valid id", input: id.String(), expectOK: true},
		{name: "surrounding whitespace", input: "  " + id.String() + " ", expectOK: true},
		{name: "nil id", input: uuid.Nil.String(), expectOK: false},
		{name: "malformed", input: "not-a-uuid", expectOK: false},
		{name: "empty", input: "", expectOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseID(tt.input)
			if ok != tt.expectOK {
				t.Fatalf("expected ok %v, got %v", tt.expectOK, ok)
			}
			if ok && parsed != id {
				t.Errorf("expected %s, got %s", id, parsed)
			}
		})
	}
}

func TestNewDefaultCategories(t *testing.T) {
	ownerID := uuid.New()
	categories := NewDefaultCategories(ownerID)

	if len(categories) != len(DefaultCategories) {
		t.Fatalf("expected %d categories, got %d", len(DefaultCategories), len(categories))
	}

	for i, category := range categories {
		if category.OwnerID != ownerID {
			t.Errorf("category %d has owner %s", i, category.OwnerID)
		}
		if category.Name != DefaultCategories[i].Name {
			t.Errorf("expected name %q at %d, got %q", DefaultCategories[i].Name, i, category.Name)
		}
		if i > 0 && !category.CreatedAt.After(categories[i-1].CreatedAt) {
			t.Errorf("expected strictly increasing creation times at %d", i)
		}
	}
}
