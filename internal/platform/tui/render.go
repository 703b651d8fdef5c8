package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/sim"
	"github.com/vovakirdan/questcv/internal/game/world"
)

// World units covered by one terminal cell. Cells are roughly twice as tall
// as they are wide, so the vertical scale is doubled to keep world shapes
// square on screen.
const (
	cellWorldW = 20.0
	cellWorldH = 40.0
)

// HUD rows around the world viewport: one status line on top, the objective
// and notice lines at the bottom.
const (
	hudTopRows    = 1
	hudBottomRows = 2
)

// Palette for object kinds that carry no explicit color.
const (
	colorPlayer   = "#ffffff"
	colorTarget   = "#f5f542"
	colorNPC      = "#2ecc71"
	colorBuilding = "#7f8c8d"
	colorDoor     = "#e67e22"
	colorObstacle = "#555555"
	colorObject   = "#9b59b6"
	colorHUD      = "#bdc3c7"
	colorNotice   = "#f1c40f"
)

// renderWorld draws the game into the screen buffer: the camera-scrolled
// world view framed by the HUD.
func renderWorld(s *core.Screen, g *sim.Simulation, playerName string, notices []string) {
	s.Clear()

	cols := s.Width()
	rows := s.Height() - hudTopRows - hudBottomRows
	if cols <= 0 || rows <= 0 {
		return
	}

	bounds := g.World.Bounds()
	location := "Overworld"
	if g.InteriorID != "" {
		if in, ok := g.World.Interior(g.InteriorID); ok {
			bounds = in.Bounds()
			location = in.Name
		}
	}

	cam := cameraOrigin(g.Player.Center(), bounds, cols, rows)

	// World objects in declaration order; the player goes on top.
	for _, o := range g.World.Active(g.InteriorID) {
		drawObject(s, o, cam, o.ID == g.Player.Target)
	}
	if g.InteriorID != "" {
		if in, ok := g.World.Interior(g.InteriorID); ok {
			exit := in.ExitObject()
			drawObject(s, exit, cam, g.Player.Target == world.ExitID)
		}
	}
	px, py := worldToCell(g.Player.Center(), cam)
	if px >= 0 && px < cols && py >= hudTopRows && py < hudTopRows+rows {
		s.Set(px, py, '@', colorPlayer)
	}

	drawHUD(s, g, playerName, location, notices)
}

// cameraOrigin centers the viewport on the focus point, clamped so the view
// never scrolls past the location's edge. A location smaller than the
// viewport is pinned to its origin.
func cameraOrigin(focus core.Vec, bounds core.Rect, cols, rows int) core.Vec {
	viewW := float64(cols) * cellWorldW
	viewH := float64(rows) * cellWorldH

	x := focus.X - viewW/2
	y := focus.Y - viewH/2
	x = core.ClampF(x, bounds.X, math.Max(bounds.X, bounds.Right()-viewW))
	y = core.ClampF(y, bounds.Y, math.Max(bounds.Y, bounds.Bottom()-viewH))
	return core.Vec{X: x, Y: y}
}

// worldToCell converts a world position to screen cell coordinates, offset
// below the top HUD row.
func worldToCell(pos core.Vec, cam core.Vec) (int, int) {
	x := int(math.Floor((pos.X - cam.X) / cellWorldW))
	y := int(math.Floor((pos.Y-cam.Y)/cellWorldH)) + hudTopRows
	return x, y
}

func drawObject(s *core.Screen, o *world.Object, cam core.Vec, targeted bool) {
	x0, y0 := worldToCell(core.Vec{X: o.X, Y: o.Y}, cam)
	x1, y1 := worldToCell(core.Vec{X: o.X + o.W, Y: o.Y + o.H}, cam)
	w := x1 - x0
	h := y1 - y0
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	ch, color := objectGlyph(o)
	if targeted {
		color = colorTarget
	}
	s.FillRect(x0, y0, w, h, ch, color)

	if o.Kind == world.KindBuilding {
		if door, ok := o.DoorBounds(); ok {
			dx, dy := worldToCell(core.Vec{X: door.X, Y: door.Y}, cam)
			dc := colorDoor
			if targeted {
				dc = colorTarget
			}
			s.FillRect(dx, dy, maxInt(1, int(door.W/cellWorldW)), maxInt(1, int(door.H/cellWorldH)), '▒', dc)
		}
		// Label wide buildings with their name.
		if w > len(o.Name)+1 && o.Name != "" && h > 1 {
			s.DrawText(x0+(w-len(o.Name))/2, y0, o.Name, colorPlayer)
		}
	}
}

func objectGlyph(o *world.Object) (rune, string) {
	if o.Collect != nil {
		switch o.Collect.Kind {
		case world.CollectCoin:
			return 'o', pick(o.Color, "#f1c40f")
		case world.CollectGem:
			return '◆', pick(o.Color, "#00aaff")
		case world.CollectHeart:
			return '♥', pick(o.Color, "#e74c3c")
		}
	}
	switch o.Kind {
	case world.KindNPC:
		return '☺', pick(o.Color, colorNPC)
	case world.KindBuilding:
		return '█', pick(o.Color, colorBuilding)
	case world.KindObstacle:
		return '▓', pick(o.Color, colorObstacle)
	default:
		if o.ID == world.ExitID {
			return '▒', colorDoor
		}
		return '?', pick(o.Color, colorObject)
	}
}

func pick(color, fallback string) string {
	if color != "" {
		return color
	}
	return fallback
}

func drawHUD(s *core.Screen, g *sim.Simulation, playerName, location string, notices []string) {
	p := g.Player
	gems := 0
	for _, n := range p.Gems {
		gems += n
	}
	top := fmt.Sprintf(" %s  Lv %d  XP %.0f/%.0f  Coins %d  Gems %d  %s",
		playerName, p.Level, p.XP, player.XPToLevelUp(p.Level), p.Coins, gems, location)
	s.DrawText(0, 0, top, colorHUD)

	objective := "All missions complete. Go sightseeing."
	if m := g.Missions.Active(); m != nil {
		if step := m.CurrentStep(); step != nil {
			objective = fmt.Sprintf("%s: %s", m.Title, step.Description)
		} else {
			objective = m.Title
		}
	}
	s.DrawText(0, s.Height()-2, " ▶ "+objective, colorHUD)

	bottom := " [wasd] move  [e] interact  [t] travel  [m] missions  [i] bag  [k] skills  [q] quit"
	if len(notices) > 0 {
		bottom = " " + strings.Join(notices, "  |  ")
	}
	color := colorHUD
	if len(notices) > 0 {
		color = colorNotice
	}
	s.DrawText(0, s.Height()-1, bottom, color)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// styleCache keeps one lipgloss style per hex color so renders reuse styles
// instead of allocating per cell run.
var styleCache = map[string]lipgloss.Style{}

func styleFor(color string) lipgloss.Style {
	if st, ok := styleCache[color]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if color != "" {
		st = st.Foreground(lipgloss.Color(color))
	}
	styleCache[color] = st
	return st
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Ch)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
