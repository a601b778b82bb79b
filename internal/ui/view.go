package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/orrery/internal/astro"
	"github.com/litescript/orrery/internal/ephemeris"
)

// Per-body colors, roughly matching the usual NASA palette.
var bodyColors = map[ephemeris.Body]string{
	ephemeris.Mercury: "#B5B5B5",
	ephemeris.Venus:   "#E8CDA2",
	ephemeris.Earth:   "#2E86AB",
	ephemeris.Mars:    "#E27B58",
	ephemeris.Jupiter: "#C88B3A",
	ephemeris.Saturn:  "#E3C98F",
	ephemeris.Uranus:  "#7FDBDB",
	ephemeris.Neptune: "#4A6FDC",
	ephemeris.Moon:    "#AAAAAA",
	ephemeris.Pluto:   "#9CA6B7",
}

const sunColor = "#FDB813"
const starColor = "#3A3A3A"

// ringColor derives a dimmed orbit-ring color from the body color.
func ringColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#303030"
	}
	return c.BlendLab(colorful.Color{}, 0.72).Clamped().Hex()
}

// cell is one canvas character with its color.
type cell struct {
	ch  rune
	hex string
}

// canvas is the drawing surface for one frame.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{ch: ' '}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

// set draws a glyph unless the cell is already occupied by something
// brighter (orbit dots and stars never overwrite bodies).
func (c *canvas) set(x, y int, ch rune, hex string, background bool) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	if background && c.cells[y][x].ch != ' ' {
		return
	}
	c.cells[y][x] = cell{ch: ch, hex: hex}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing orrery..."
	}
	if m.width < 40 || m.height < 10 {
		return "Terminal too small for the orrery view"
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.buildCanvas(), m.renderHUD())
}

// buildCanvas renders the scene through the current camera pose: the look
// target pans the view and the camera height sets the zoom.
func (m Model) buildCanvas() string {
	canvasH := m.height - 4
	if canvasH < 5 {
		canvasH = 5
	}
	canvasW := m.width
	cv := newCanvas(canvasW, canvasH)

	centerX := canvasW / 2
	centerY := canvasH / 2

	// Camera height maps to the visible extent; never divide by a
	// vanishing height.
	height := m.pose.Position.Z
	if height < 0.05 {
		height = 0.05
	}
	maxDisplayR := float64(min(centerX, centerY*2)) * 0.9
	displayScale := maxDisplayR / height

	// The look target is the view center. Screen Y is inverted, and rows
	// are about twice as tall as columns are wide.
	originX := centerX - int(m.pose.Target.X*displayScale)
	originY := centerY + int(m.pose.Target.Y*displayScale*0.5)

	if m.showStars {
		m.drawStarfield(cv, originX, originY, displayScale)
	}
	if m.showOrbits {
		m.drawOrbitRings(cv, originX, originY, displayScale)
	}

	// Bodies
	focused, hasFocus := m.FocusedBody()
	for _, b := range ephemeris.Bodies {
		pos := m.scene.position(b)
		sx := originX + int(pos.X*displayScale)
		sy := originY - int(pos.Y*displayScale*0.5)

		isFocused := hasFocus && b == focused
		cv.set(sx, sy, bodyGlyph(b, isFocused), bodyColors[b], false)

		if isFocused {
			m.drawLabel(cv, sx+2, sy, b.Name())
		}
	}

	// Sun last so it is always visible at the origin
	cv.set(originX, originY, '☉', sunColor, false)
	if !hasFocus {
		m.drawLabel(cv, originX+2, originY, "Sun")
	}

	return cv.render()
}

// drawOrbitRings draws each body's orbit as a circle at its semi-major
// axis, colored with a dimmed version of the body color.
func (m Model) drawOrbitRings(cv *canvas, cx, cy int, displayScale float64) {
	for _, b := range ephemeris.Bodies {
		el, ok := m.engine.ElementsAt(b, m.clock.Now())
		if !ok {
			continue
		}
		r := astro.ScaleDistance(el.A, m.scene.proj) * displayScale
		drawCircle(cv, cx, cy, r, ringColor(bodyColors[b]))
	}
}

func drawCircle(cv *canvas, cx, cy int, r float64, hex string) {
	if r < 1 {
		return
	}

	steps := int(2 * math.Pi * r)
	if steps < 8 {
		steps = 8
	}
	if steps > 720 {
		steps = 720
	}

	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(r*math.Cos(theta))
		y := cy - int(r*math.Sin(theta)*0.5) // aspect ratio correction
		cv.set(x, y, '·', hex, true)
	}
}

// drawStarfield scatters a deterministic pseudo-random shell of stars in
// display space, beyond the outermost ring, so they pan and zoom with the
// scene.
func (m Model) drawStarfield(cv *canvas, cx, cy int, displayScale float64) {
	const starCount = 160

	for i := 0; i < starCount; i++ {
		// Cheap hash, stable across frames
		h := uint64(i)*0x9E3779B97F4A7C15 + 0x632BE59BD9B4E019
		h ^= h >> 29
		h *= 0xBF58476D1CE4E5B9
		h ^= h >> 32

		angle := float64(h%3600) / 3600 * 2 * math.Pi
		radius := 0.3 + float64((h>>16)%1000)/1000*2.7

		x := cx + int(radius*math.Cos(angle)*displayScale)
		y := cy - int(radius*math.Sin(angle)*displayScale*0.5)

		glyph := '·'
		if h%5 == 0 {
			glyph = '˙'
		}
		cv.set(x, y, glyph, starColor, true)
	}
}

func (m Model) drawLabel(cv *canvas, x, y int, label string) {
	for i, ch := range label {
		cv.set(x+i, y, ch, "#C0C0C0", true)
	}
}

// bodyGlyph selects the glyph for a body.
func bodyGlyph(b ephemeris.Body, focused bool) rune {
	if focused {
		return '◆'
	}
	switch ephemeris.Info[b].Class {
	case ephemeris.ClassGiant:
		return '◉'
	case ephemeris.ClassDwarf:
		return '∙'
	case ephemeris.ClassSatellite:
		return '˙'
	default:
		return '●'
	}
}

// render converts the canvas to a styled string.
func (c *canvas) render() string {
	styles := make(map[string]lipgloss.Style)
	styleFor := func(hex string) lipgloss.Style {
		s, ok := styles[hex]
		if !ok {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
			styles[hex] = s
		}
		return s
	}

	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		// Batch runs of identically-colored cells to keep the frame small
		runStart := 0
		runHex := row[0].hex
		flush := func(end int) {
			var run strings.Builder
			for x := runStart; x < end; x++ {
				run.WriteRune(row[x].ch)
			}
			if runHex == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(runHex).Render(run.String()))
			}
		}
		for x := 1; x < len(row); x++ {
			hex := row[x].hex
			if row[x].ch == ' ' {
				hex = runHex // spaces join any run
			}
			if hex != runHex {
				flush(x)
				runStart = x
				runHex = hex
			}
		}
		flush(len(row))
	}
	return sb.String()
}

// renderHUD renders the status and help lines under the canvas.
func (m Model) renderHUD() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	date := m.clock.Now().UTC().Format("2006-01-02 15:04")
	speed := m.clock.Speed().Label
	if m.clock.Paused() {
		speed = "paused"
	}

	camState := "idle"
	switch {
	case m.inFlight:
		camState = "flying"
	case m.locked != nil:
		camState = "locked"
	}

	status := fmt.Sprintf("%s  %s  %s  %s",
		headerStyle.Render("ORRERY"),
		valueStyle.Render(date),
		dimStyle.Render("speed "+speed),
		dimStyle.Render("cam "+camState),
	)

	var focusLine string
	if b, ok := m.FocusedBody(); ok {
		r := m.scene.results[b]
		if m.engine.HasElements(b) {
			lonDeg := r.Angle * 180 / math.Pi
			focusLine = fmt.Sprintf("%s  lon %.1f°  dist %.3f AU  period %.0f d",
				b.Name(), lonDeg, r.Distance, m.engine.OrbitalPeriodDays(b))
		} else {
			focusLine = fmt.Sprintf("%s  (decorative body, no heliocentric orbit)", b.Name())
		}
	} else {
		focusLine = "Sun  heliocentric origin"
	}

	help := "[/] focus  enter fly-to  r reset  esc cancel  space pause  +/- speed  ,/. step  o orbits  t stars  z scale  q quit"

	return status + "\n" +
		valueStyle.Render(focusLine) + "\n" +
		dimStyle.Render(help)
}
