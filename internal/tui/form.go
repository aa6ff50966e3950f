package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// Form field indices. Order is the tab order.
const (
	fieldName = iota
	fieldDescription
	fieldPrice
	fieldQuantity
	fieldCategory
	fieldCount
)

var fieldKeys = [fieldCount]string{"name", "description", "price", "quantity", "category"}

var fieldLabels = [fieldCount]string{
	"Product Name *",
	"Description",
	"Price ($) *",
	"Quantity *",
	"Category",
}

var fieldPlaceholders = [fieldCount]string{
	"Enter product name",
	"Enter product description",
	"0.00",
	"0",
	"e.g., Electronics, Furniture",
}

// form holds the raw draft values. Everything stays a string until
// validation passes; coercion happens in draft.toInput.
type form struct {
	inputs [fieldCount]textinput.Model
	focus  int
	errors map[string]string
}

// newForm builds an empty form, prefilled from p when editing.
func newForm(p *models.Product) form {
	f := form{errors: map[string]string{}}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = fieldPlaceholders[i]
		in.Prompt = "> "
		in.CharLimit = 200
		f.inputs[i] = in
	}

	if p != nil {
		f.inputs[fieldName].SetValue(p.Name)
		f.inputs[fieldDescription].SetValue(p.Description)
		f.inputs[fieldPrice].SetValue(strconv.FormatFloat(p.Price, 'f', -1, 64))
		f.inputs[fieldQuantity].SetValue(strconv.Itoa(p.Quantity))
		f.inputs[fieldCategory].SetValue(p.Category)
	}

	f.inputs[fieldName].Focus()
	return f
}

func (f form) draft() draft {
	return draft{
		name:        f.inputs[fieldName].Value(),
		description: f.inputs[fieldDescription].Value(),
		price:       f.inputs[fieldPrice].Value(),
		quantity:    f.inputs[fieldQuantity].Value(),
		category:    f.inputs[fieldCategory].Value(),
	}
}

func (f *form) focusNext() {
	f.setFocus((f.focus + 1) % fieldCount)
}

func (f *form) focusPrev() {
	f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f form) focusCmd() tea.Cmd {
	return textinput.Blink
}

// update routes a key to the focused input and clears that field's error,
// matching the original behavior of dropping a field's message as soon as
// the user edits it.
func (f form) update(msg tea.KeyMsg) (form, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.errors != nil {
		delete(f.errors, fieldKeys[f.focus])
	}
	return f, cmd
}
