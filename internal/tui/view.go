package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := maxInt(10, m.width)

	header := titleStyle.Render(" dotmap ─ dot density map viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	m.mapW = maxInt(8, contentWidth)
	m.mapH = maxInt(4, contentHeight)

	var mapView string
	if m.showCounts {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := minInt(m.mapW, maxInt(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(minInt(m.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(m.mapW, m.mapH, lipgloss.Center, lipgloss.Center, box)
	} else {
		canvas := m.renderMap(m.mapW, m.mapH)
		mapView = lipgloss.NewStyle().Width(m.mapW).Height(m.mapH).Render(canvas)
	}

	popup := ""
	if m.inspectPopup != "" && !m.showCounts {
		maxPopupW := minInt(48, contentWidth/2)
		if maxPopupW < 20 {
			maxPopupW = 20
		}
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	footer := m.renderFooter(contentWidth)

	var body string
	if popup != "" {
		body = popup
	} else {
		body = mapView
	}
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderFooter(contentWidth int) string {
	status := dimStyle.Render(" " + m.status + " ")
	legend := m.renderLegend()
	help := m.renderHelp()

	coords := ""
	if m.hoverHasGeo {
		where := fmt.Sprintf("lon=%.5f lat=%.5f", m.hoverLon, m.hoverLat)
		if m.hoverName != "" {
			where = m.hoverName + "  " + where
		}
		coords = dimStyle.Render("  " + where + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, legend)
	spacerW := maxInt(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	top := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))
	return lipgloss.JoinVertical(lipgloss.Left, top, help)
}

// renderLegend shows each layer's swatch, label and dot count, dimming
// hidden layers.
func (m Model) renderLegend() string {
	parts := make([]string, 0, len(m.layers))
	for _, l := range m.layers {
		item := fmt.Sprintf("⣿ %s (%d)", l.cat.Label, len(l.dots))
		if l.visible {
			parts = append(parts, l.style.Render(item))
		} else {
			parts = append(parts, dimStyle.Render(item))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"1-9 layers",
		"p outlines",
		"a counts",
		"i inspect",
		"r reshuffle",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
