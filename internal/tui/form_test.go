package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

func TestNewForm_Empty(t *testing.T) {
	f := newForm(nil)

	for i := range f.inputs {
		if f.inputs[i].Value() != "" {
			t.Errorf("expected field %s to be empty, got %q", fieldKeys[i], f.inputs[i].Value())
		}
	}
	if f.focus != fieldName {
		t.Errorf("expected focus on name, got %d", f.focus)
	}
}

func TestNewForm_PrefilledFromProduct(t *testing.T) {
	p := models.Product{
		ID:          4,
		Name:        "Desk",
		Description: "Standing desk",
		Price:       399.5,
		Quantity:    5,
		Category:    "Furniture",
	}

	f := newForm(&p)

	want := map[int]string{
		fieldName:        "Desk",
		fieldDescription: "Standing desk",
		fieldPrice:       "399.5",
		fieldQuantity:    "5",
		fieldCategory:    "Furniture",
	}
	for i, expected := range want {
		if got := f.inputs[i].Value(); got != expected {
			t.Errorf("field %s: expected %q, got %q", fieldKeys[i], expected, got)
		}
	}
}

func TestForm_FocusCycles(t *testing.T) {
	f := newForm(nil)

	for i := 0; i < fieldCount; i++ {
		if f.focus != i {
			t.Fatalf("expected focus %d, got %d", i, f.focus)
		}
		f.focusNext()
	}
	if f.focus != fieldName {
		t.Errorf("expected focus to wrap to name, got %d", f.focus)
	}

	f.focusPrev()
	if f.focus != fieldCategory {
		t.Errorf("expected focus to wrap back to category, got %d", f.focus)
	}
}

func TestForm_TypingClearsFieldError(t *testing.T) {
	f := newForm(nil)
	f.errors = map[string]string{
		"name":  "Product name is required",
		"price": "Price must be a positive number",
	}

	f, _ = f.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})

	if _, ok := f.errors["name"]; ok {
		t.Error("expected the focused field's error to be cleared on typing")
	}
	if _, ok := f.errors["price"]; !ok {
		t.Error("expected other field errors to be kept")
	}
	if f.inputs[fieldName].Value() != "L" {
		t.Errorf("expected typed value to reach the input, got %q", f.inputs[fieldName].Value())
	}
}
