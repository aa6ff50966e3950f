// Package tui implements the inventory console: a bubbletea model that owns
// the authoritative product collection and all session state, synchronizes
// it with the remote CRUD API, and renders the list, stats, search, and
// product form.
//
// All state lives in the Model and is mutated only inside Update, on the
// bubbletea event loop. Remote calls run as commands; their outcomes come
// back as messages and are applied in the order they resolve. The collection
// is replaced wholesale after every successful mutation rather than patched
// locally, so it can never drift from the server.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-console/internal/client"
	"github.com/rogerio-castellano/inventory-console/internal/models"
	"github.com/rogerio-castellano/inventory-console/internal/view"
)

// alertTTL is how long an alert stays visible unless superseded.
const alertTTL = 5 * time.Second

type mode int

const (
	// modeBrowse shows the product list.
	modeBrowse mode = iota

	// modeForm shows the create/edit form.
	modeForm

	// modeConfirmDelete waits for a y/n answer before deleting.
	modeConfirmDelete
)

type alertLevel int

const (
	alertSuccess alertLevel = iota
	alertError
)

// alert is the single transient notification. seq ties the auto-expiry tick
// to the alert that scheduled it, so an expired timer never clears a newer
// alert.
type alert struct {
	message string
	level   alertLevel
	seq     int
}

// Model is the console state. It is the exclusive owner of the product
// collection; everything rendered is either this state or derived from it
// on the fly.
type Model struct {
	repo   client.Repository
	logger *zap.Logger

	// Authoritative collection, replaced wholesale on every refresh.
	products []models.Product

	loading bool
	loadErr string

	search    textinput.Model
	searching bool
	cursor    int

	mode mode
	form form
	// editing is the product behind the open form; nil means creating.
	editing *models.Product
	// confirm is the product awaiting delete confirmation.
	confirm *models.Product

	alert    *alert
	alertSeq int

	spin   spinner.Model
	width  int
	height int
}

// New creates the console model. The first refresh is issued by Init.
func New(repo client.Repository, logger *zap.Logger) Model {
	search := textinput.New()
	search.Placeholder = "Search products by name, category, or description..."
	search.Prompt = "/ "
	search.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		repo:    repo,
		logger:  logger,
		loading: true,
		search:  search,
		spin:    spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProducts(), m.spin.Tick)
}

// visible is the filtered view of the collection. It is recomputed on
// demand, never stored.
func (m Model) visible() []models.Product {
	return view.Filter(m.products, m.search.Value())
}

// selected returns the product under the cursor in the filtered view.
func (m Model) selected() (models.Product, bool) {
	visible := m.visible()
	if len(visible) == 0 || m.cursor < 0 || m.cursor >= len(visible) {
		return models.Product{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// showAlert replaces any active alert and schedules its expiry. Only one
// alert is active at a time; a newer one wins immediately.
func (m *Model) showAlert(message string, level alertLevel) tea.Cmd {
	m.alertSeq++
	m.alert = &alert{message: message, level: level, seq: m.alertSeq}
	seq := m.alertSeq
	return tea.Tick(alertTTL, func(time.Time) tea.Msg {
		return alertExpiredMsg{seq: seq}
	})
}
