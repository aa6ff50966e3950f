package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-console/internal/models"
)

// Messages delivered back to Update when asynchronous work settles.
type (
	// productsLoadedMsg carries the full collection from a successful list.
	productsLoadedMsg struct{ products []models.Product }

	// loadFailedMsg signals that list failed; the collection is unavailable.
	loadFailedMsg struct{ err error }

	// mutationDoneMsg signals a successful create/update/delete.
	// action is the past tense used in the alert.
	mutationDoneMsg struct{ action string }

	// mutationFailedMsg signals a failed create/update/delete.
	// action is the verb used in the alert.
	mutationFailedMsg struct {
		action string
		err    error
	}

	// alertExpiredMsg fires when an alert's 5-second lifetime ends. It only
	// clears the alert whose seq it carries.
	alertExpiredMsg struct{ seq int }
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case productsLoadedMsg:
		m.products = msg.products
		m.loading = false
		m.loadErr = ""
		m.clampCursor()
		return m, nil

	case loadFailedMsg:
		m.logger.Error("failed to fetch products", zap.Error(msg.err))
		m.loading = false
		m.loadErr = "Failed to fetch products. Please try again."
		m.products = nil
		m.cursor = 0
		return m, nil

	case mutationDoneMsg:
		cmds := []tea.Cmd{
			m.showAlert("Product "+msg.action+" successfully!", alertSuccess),
		}
		if msg.action != "deleted" {
			m.mode = modeBrowse
			m.editing = nil
			m.form = form{}
		}
		cmds = append(cmds, m.refresh()...)
		return m, tea.Batch(cmds...)

	case mutationFailedMsg:
		m.logger.Error("failed to "+msg.action+" product", zap.Error(msg.err))
		return m, m.showAlert("Failed to "+msg.action+" product. Please try again.", alertError)

	case alertExpiredMsg:
		if m.alert != nil && m.alert.seq == msg.seq {
			m.alert = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// refresh marks the collection as loading and re-fetches it from the server.
func (m *Model) refresh() []tea.Cmd {
	m.loading = true
	m.loadErr = ""
	return []tea.Cmd{m.loadProducts(), m.spin.Tick}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		target := m.confirm
		m.confirm = nil
		m.mode = modeBrowse
		return m, m.removeProduct(target.ID)
	case "n", "N", "esc":
		// Declined: no call, nothing changes.
		m.confirm = nil
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.clampCursor()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.clampCursor()
		}

	case "r":
		cmds := m.refresh()
		return m, tea.Batch(cmds...)

	case "a":
		m.mode = modeForm
		m.editing = nil
		m.form = newForm(nil)
		return m, m.form.focusCmd()

	case "e":
		if p, ok := m.selected(); ok {
			m.mode = modeForm
			m.editing = &p
			m.form = newForm(&p)
			return m, m.form.focusCmd()
		}

	case "d":
		if p, ok := m.selected(); ok {
			m.confirm = &p
			m.mode = modeConfirmDelete
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Cancel: discard the draft and close.
		m.mode = modeBrowse
		m.editing = nil
		m.form = form{}
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.form.focusNext()
		return m, m.form.focusCmd()

	case tea.KeyShiftTab, tea.KeyUp:
		m.form.focusPrev()
		return m, m.form.focusCmd()

	case tea.KeyEnter:
		d := m.form.draft()
		if errs := validateDraft(d); len(errs) > 0 {
			m.form.errors = errs
			return m, nil
		}
		return m, m.saveProduct(d.toInput())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// loadProducts fetches the full collection.
func (m Model) loadProducts() tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		products, err := repo.List(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return productsLoadedMsg{products: products}
	}
}

// saveProduct creates or updates depending on whether a product is being
// edited. The result is never applied locally; success triggers a refresh.
func (m Model) saveProduct(in models.ProductInput) tea.Cmd {
	repo := m.repo
	if m.editing != nil {
		id := m.editing.ID
		return func() tea.Msg {
			if _, err := repo.Update(context.Background(), id, in); err != nil {
				return mutationFailedMsg{action: "update", err: err}
			}
			return mutationDoneMsg{action: "updated"}
		}
	}
	return func() tea.Msg {
		if _, err := repo.Create(context.Background(), in); err != nil {
			return mutationFailedMsg{action: "create", err: err}
		}
		return mutationDoneMsg{action: "created"}
	}
}

func (m Model) removeProduct(id int) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		if err := repo.Delete(context.Background(), id); err != nil {
			return mutationFailedMsg{action: "delete", err: err}
		}
		return mutationDoneMsg{action: "deleted"}
	}
}
