package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rogerio-castellano/inventory-console/internal/view"
)

// View implements tea.Model. Stats and the filtered list are derived from
// the collection here, on every render.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Inventory Console"))
	b.WriteString("\n\n")

	if m.alert != nil {
		style := successAlertStyle
		prefix := "✔ "
		if m.alert.level == alertError {
			style = errorAlertStyle
			prefix = "✘ "
		}
		b.WriteString(style.Render(prefix + m.alert.message))
		b.WriteString("\n\n")
	}

	switch m.mode {
	case modeForm:
		b.WriteString(m.formView())
	case modeConfirmDelete:
		b.WriteString(m.browseView())
		b.WriteString("\n")
		b.WriteString(errorAlertStyle.Render(fmt.Sprintf("Delete %q? (y/n)", m.confirm.Name)))
		b.WriteString("\n")
	default:
		b.WriteString(m.browseView())
	}

	return b.String()
}

func (m Model) browseView() string {
	var b strings.Builder

	b.WriteString(m.statsView())
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View())
		b.WriteString(" Loading products...")
		b.WriteString("\n")
	case m.loadErr != "":
		b.WriteString(errorAlertStyle.Render("⚠ Oops! Something went wrong"))
		b.WriteString("\n")
		b.WriteString(m.loadErr)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("press r to try again"))
		b.WriteString("\n")
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a add • e edit • d delete • / search • r refresh • q quit"))
	return b.String()
}

func (m Model) statsView() string {
	stats := view.ComputeStats(m.products)

	boxes := []string{
		statBox(fmt.Sprintf("%d", stats.Products), "Total Products"),
		statBox(view.FormatUSD(stats.TotalValue), "Total Value"),
		statBox(fmt.Sprintf("%d", stats.TotalStock), "Items in Stock"),
		statBox(fmt.Sprintf("%d", stats.Categories), "Categories"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func statBox(value, label string) string {
	content := statValueStyle.Render(value) + "\n" + statLabelStyle.Render(label)
	return statBoxStyle.Render(content)
}

func (m Model) listView() string {
	visible := m.visible()

	if len(visible) == 0 {
		if m.search.Value() != "" {
			return "No products found\n" + dimStyle.Render("Try adjusting your search query") + "\n"
		}
		return "No products yet\n" + dimStyle.Render("Get started by adding your first product (a)") + "\n"
	}

	var b strings.Builder
	for i, p := range visible {
		line := fmt.Sprintf("%-30s %-16s %12s %8d", truncate(p.Name, 30), truncate(p.Category, 16), view.FormatUSD(p.Price), p.Quantity)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if p, ok := m.selected(); ok {
		b.WriteString("\n")
		description := p.Description
		if description == "" {
			description = "No description available"
		}
		b.WriteString(dimStyle.Render(description))
		b.WriteString("\n")
		if p.Category != "" {
			b.WriteString(categoryStyle.Render(p.Category))
			b.WriteString("  ")
		}
		if p.CreatedAt != "" {
			b.WriteString(dimStyle.Render("Added " + formatDate(p.CreatedAt)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) formView() string {
	var b strings.Builder

	title := "Create New Product"
	if m.editing != nil {
		title = "Edit Product"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for i := range m.form.inputs {
		b.WriteString(formLabelStyle.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := m.form.errors[fieldKeys[i]]; ok {
			b.WriteString(errorTextStyle.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter save • tab next field • esc cancel"))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// formatDate renders an RFC3339 timestamp as e.g. "Jun 1, 2025". Unparseable
// values are shown as-is.
func formatDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("Jan 2, 2006")
}
