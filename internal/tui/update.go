package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mikeasilva/dot-density-map/internal/dots"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// header is 1 row, footer 2
		m.mapW = maxInt(8, msg.Width)
		m.mapH = maxInt(4, msg.Height-3)
	case tea.MouseMsg:
		m.hovering = true
		m.hoverMicX = msg.X * 2
		m.hoverMicY = msg.Y * 4
		// header occupies row 0
		lon, lat, ok := m.cellToLonLat(msg.X, msg.Y-1, m.mapW, m.mapH)
		m.hoverHasGeo = ok
		if ok {
			m.hoverLon, m.hoverLat = lon, lat
			m.hoverName = ""
			if ft := m.index.At(lon, lat); ft != nil {
				m.hoverName = ft.Name
			}
		}
	case tea.KeyMsg:
		if m.showCounts {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "a", "esc":
				m.showCounts = false
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "up":
			m.offsetY++
		case "down":
			m.offsetY--
		case "left":
			m.offsetX++
		case "right":
			m.offsetX--
		case "p":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("outlines: %v", m.showPolys)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			i, _ := strconv.Atoi(msg.String())
			if i-1 < len(m.layers) {
				m.layers[i-1].visible = !m.layers[i-1].visible
				m.status = fmt.Sprintf("%s: %v", m.layers[i-1].cat.Label, m.layers[i-1].visible)
			}
		case "r":
			if m.method == dots.Random {
				m.seed = time.Now().UnixNano()
				m.regenerate()
			} else {
				m.status = "regular placement is deterministic; nothing to reshuffle"
			}
		case "a":
			m.showCounts = true
			m.refreshCountsTable()
		case "i":
			m.inspectCenter()
		case "esc":
			m.inspectPopup = ""
		case "h":
			m.helpVisible = !m.helpVisible
		}
	}
	return m, nil
}

// regenerate re-runs the batch with the current seed.
func (m *Model) regenerate() {
	categories := make([]string, 0, len(m.layers))
	for _, l := range m.layers {
		categories = append(categories, l.cat.Column)
	}
	results := dots.GenerateAll(m.features, categories, m.method, m.seed, m.workers)
	m.setResults(results)
	m.status = fmt.Sprintf("reshuffled with seed %d", m.seed)
}

// inspectCenter looks up the feature under the viewport center.
func (m *Model) inspectCenter() {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	lon, lat, ok := m.cellToLonLat(w/2, h/2, w, h)
	if !ok {
		return
	}
	ft := m.index.At(lon, lat)
	if ft == nil {
		m.inspectPopup = ""
		m.status = "no feature at viewport center"
		return
	}
	rows := []string{
		fmt.Sprintf("name: %s", ft.Name),
		fmt.Sprintf("id:   %s", ft.ID),
	}
	total := 0
	for _, l := range m.layers {
		n := ft.Counts[l.cat.Column]
		total += n
		rows = append(rows, fmt.Sprintf("%s: %d dots", l.cat.Label, n))
	}
	rows = append(rows, fmt.Sprintf("total: %d dots", total))
	m.inspectPopup = strings.Join(rows, "\n")
}
