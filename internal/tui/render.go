package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMap draws the outlines and the per-category dot layers. Outlines and
// each layer get their own braille buffer; cells composite topmost-wins, and
// runs of same-styled cells are rendered together to keep the ANSI output
// small.
func (m Model) renderMap(w, h int) string {
	outline := newBrailleBuf(w, h)
	if m.showPolys {
		for _, ft := range m.features {
			for _, poly := range ft.Geometry {
				for _, ring := range poly {
					var prev *[2]int
					for _, p := range ring {
						mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
						if !ok {
							continue
						}
						if prev != nil {
							outline.drawLineMicro(prev[0], prev[1], mx, my)
						}
						prev = &[2]int{mx, my}
					}
					// close the ring
					if prev != nil && len(ring) > 0 {
						mx, my, ok := m.screenXYMicro(ring[0][0], ring[0][1], w, h)
						if ok {
							outline.drawLineMicro(prev[0], prev[1], mx, my)
						}
					}
				}
			}
		}
	}

	layerBufs := make([]*brailleBuf, len(m.layers))
	for i, l := range m.layers {
		if !l.visible {
			continue
		}
		buf := newBrailleBuf(w, h)
		for _, p := range l.dots {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			buf.setPixel(mx, my)
		}
		layerBufs[i] = buf
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		runStyle := -2 // -2 plain, -1 outline, >=0 layer index
		var run []rune
		flush := func() {
			if len(run) == 0 {
				return
			}
			s := string(run)
			switch {
			case runStyle >= 0:
				sb.WriteString(m.layers[runStyle].style.Render(s))
			case runStyle == -1:
				sb.WriteString(outlineStyle.Render(s))
			default:
				sb.WriteString(s)
			}
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			style := -2
			r := ' '
			// dot layers sit above outlines; later layers above earlier
			for i := len(layerBufs) - 1; i >= 0; i-- {
				if layerBufs[i] == nil {
					continue
				}
				if g := layerBufs[i].rune(x, y); g != ' ' {
					style, r = i, g
					break
				}
			}
			if style == -2 {
				if g := outline.rune(x, y); g != ' ' {
					style, r = -1, g
				}
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			run = append(run, r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

var outlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563"))
