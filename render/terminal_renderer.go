// Package render draws world snapshots as a top-down terminal view
package render

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena-fighter/component"
	"github.com/lixenwraith/arena-fighter/core"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/vmath"
)

const (
	statusBarHeight = 1
	cooldownBarLen  = 10
)

// Arrow glyphs indexed by screen octant, clockwise from +X
var arrowGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Fade ramp for area shot blasts, weakest first
var blastGlyphs = []rune{'·', '░', '▒', '▓'}

// Status carries process state shown next to the snapshot
type Status struct {
	Paused  bool
	Muted   bool
	Peers   int
	Message string
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen    tcell.Screen
	shotRange float64
	viewport  Viewport
	bg        tcell.Style
}

// NewTerminalRenderer creates a renderer; shotRange colors the cursor when out of reach
func NewTerminalRenderer(screen tcell.Screen, shotRange float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		shotRange: shotRange,
		bg:        tcell.StyleDefault.Background(RgbBackground),
	}
}

// Viewport returns the mapping used by the last frame
// Mouse handlers use it to convert clicks to world points
func (r *TerminalRenderer) Viewport() Viewport {
	return r.viewport
}

// RenderFrame renders the entire frame, camera centered on the player
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot, st Status) {
	width, height := r.screen.Size()
	r.screen.Fill(' ', r.bg)
	if snap == nil || width <= 0 || height <= statusBarHeight {
		r.screen.Show()
		return
	}

	vp := NewViewport(0, 0, width, height-statusBarHeight)
	var playerPos mgl64.Vec3
	if pv, ok := snap.Find(snap.Player); ok {
		playerPos = pv.Position
	}
	vp.Center = playerPos
	r.viewport = vp

	r.drawFloor(vp)

	views := slices.Clone(snap.Entities)
	slices.SortStableFunc(views, func(a, b engine.EntityView) int {
		return int(kindPriority(a.Kind)) - int(kindPriority(b.Kind))
	})
	for _, v := range views {
		r.drawEntity(vp, v)
	}

	r.drawCursor(vp, snap.Cursor, playerPos)
	r.drawStatusBar(snap, st, width, height-1)

	r.screen.Show()
}

// drawFloor dots every fifth world unit so motion is visible
func (r *TerminalRenderer) drawFloor(vp Viewport) {
	style := r.bg.Foreground(RgbFloorGrid)
	for row := vp.Y; row < vp.Y+vp.Height; row++ {
		for col := vp.X; col < vp.X+vp.Width; col++ {
			p := vp.ScreenToWorld(col, row)
			if isGridLine(p[0]) && isGridLine(p[2]) {
				r.screen.SetContent(col, row, '·', nil, style)
			}
		}
	}
}

func isGridLine(f float64) bool {
	return math.Mod(math.Abs(f), 5) == 0
}

func (r *TerminalRenderer) drawEntity(vp Viewport, v engine.EntityView) {
	style := r.bg.Foreground(resolveColor(v.Kind, v.Color))

	switch v.Kind {
	case core.KindObstacle:
		r.fillRect(vp, v.Position, v.HalfX, v.HalfZ, '█', style)

	case core.KindSpawner:
		r.fillRect(vp, v.Position, v.HalfX, v.HalfZ, '▓', style)
		if v.Health > 0 && v.Health < 10 {
			r.setCell(vp, v.Position, rune('0'+v.Health), style.Bold(true))
		}

	case core.KindTurret:
		r.fillRect(vp, v.Position, v.HalfX, v.HalfZ, '▪', style)
		r.setCell(vp, v.Position, arrowGlyph(v.Aim), style.Bold(true))

	case core.KindAreaShot:
		r.drawBlast(vp, v)

	case core.KindEnemy:
		glyph := 'e'
		switch v.Color {
		case component.ColorHit:
			glyph = 'x'
		case component.ColorDestroyed:
			glyph = '%'
		}
		r.setCell(vp, v.Position, glyph, style)

	case core.KindProjectile:
		r.setCell(vp, v.Position, '*', style)

	case core.KindPlayer:
		r.setCell(vp, v.Position, '@', style.Bold(true))
		ahead := v.Position.Add(vmath.HeadingDirection(v.Heading).Mul(1 / vp.CellsPerUnitZ))
		r.setCell(vp, ahead, arrowGlyph(v.Heading), style)
	}
}

// drawBlast fills the shot disk with a glyph that thins as the blast fades
func (r *TerminalRenderer) drawBlast(vp Viewport, v engine.EntityView) {
	idx := int(v.Fade * float64(len(blastGlyphs)))
	idx = min(max(idx, 0), len(blastGlyphs)-1)
	glyph := blastGlyphs[idx]
	style := r.bg.Foreground(RgbShotBlast)

	c0, r0, _ := vp.WorldToScreen(v.Position.Sub(mgl64.Vec3{v.Radius, 0, v.Radius}))
	c1, r1, _ := vp.WorldToScreen(v.Position.Add(mgl64.Vec3{v.Radius, 0, v.Radius}))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !vp.Contains(col, row) {
				continue
			}
			if vmath.PlanarDistance(vp.ScreenToWorld(col, row), v.Position) <= v.Radius {
				r.screen.SetContent(col, row, glyph, nil, style)
			}
		}
	}
}

// fillRect covers the axis-aligned box around center
func (r *TerminalRenderer) fillRect(vp Viewport, center mgl64.Vec3, halfX, halfZ float64, glyph rune, style tcell.Style) {
	c0, r0, _ := vp.WorldToScreen(center.Sub(mgl64.Vec3{halfX, 0, halfZ}))
	c1, r1, _ := vp.WorldToScreen(center.Add(mgl64.Vec3{halfX, 0, halfZ}))
	c1 = max(c1, c0+1)
	r1 = max(r1, r0+1)
	for row := max(r0, vp.Y); row < min(r1, vp.Y+vp.Height); row++ {
		for col := max(c0, vp.X); col < min(c1, vp.X+vp.Width); col++ {
			r.screen.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) setCell(vp Viewport, p mgl64.Vec3, glyph rune, style tcell.Style) {
	if col, row, ok := vp.WorldToScreen(p); ok {
		r.screen.SetContent(col, row, glyph, nil, style)
	}
}

func (r *TerminalRenderer) drawCursor(vp Viewport, cursor, player mgl64.Vec3) {
	color := RgbCursor
	if vmath.PlanarDistance(cursor, player) > r.shotRange {
		color = RgbCursorFar
	}
	r.setCell(vp, cursor, '+', r.bg.Foreground(color).Bold(true))
}

// drawStatusBar renders mode, score, cooldown, radius and process flags on one row
func (r *TerminalRenderer) drawStatusBar(snap *engine.Snapshot, st Status, width, row int) {
	bar := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, row, ' ', nil, bar)
	}

	x := 0
	x = r.drawText(x, row, " "+strings.ToUpper(snap.Mode)+" ",
		tcell.StyleDefault.Background(modeBackground(snap.Mode)).Foreground(RgbStatusText).Bold(true))
	x = r.drawText(x, row, fmt.Sprintf(" SCORE %d  CD ", snap.Score), bar)

	filled := int(mgl64.Clamp(snap.Cooldown, 0, 1) * cooldownBarLen)
	for i := 0; i < cooldownBarLen; i++ {
		color := RgbCooldownEmpty
		if i < filled {
			color = RgbCooldownFull
		}
		r.screen.SetContent(x, row, '█', nil, bar.Foreground(color))
		x++
	}
	x = r.drawText(x, row, fmt.Sprintf("  R %.1f  T %.0fs", snap.ShotRadius, snap.Elapsed), bar)

	if st.Peers > 0 {
		x = r.drawText(x, row, fmt.Sprintf("  WS %d", st.Peers), bar)
	}
	if st.Muted {
		x = r.drawText(x, row, "  MUTED", bar)
	}
	if st.Paused {
		x = r.drawText(x+2, row, " PAUSED ", bar.Background(RgbPausedBg).Bold(true))
	}
	if st.Message != "" {
		r.drawText(x+2, row, st.Message, bar)
	}
}

// drawText writes s from x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// arrowGlyph returns the arrow closest to a heading, where heading 0 points down the screen
func arrowGlyph(heading float64) rune {
	dir := vmath.HeadingDirection(heading)
	octant := int(math.Floor(math.Atan2(dir[2], dir[0])/(math.Pi/4) + 0.5))
	return arrowGlyphs[(octant%8+8)%8]
}
