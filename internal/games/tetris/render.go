package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield in screen cells.
const (
	cellW   = 2                 // Each board column is two characters wide
	wellW   = Width*cellW + 2   // Well including its border
	wellH   = VisibleHeight + 2 // Well including its border
	hudGap  = 2                 // Space between the well and the HUD
	hudW    = 12                // Widest HUD entry
	layoutW = wellW + hudGap + hudW
)

// Render draws the well, the HUD and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < wellW || dst.Height() < wellH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightWhite)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", wellW, wellH), core.ColorGray)
		return
	}

	ox := max(0, (dst.Width()-layoutW)/2)
	oy := (dst.Height() - wellH) / 2

	s := g.state
	dst.DrawBox(ox, oy, wellW, wellH, core.ColorWhite)
	g.renderBoard(dst, ox+1, oy+1)

	if s.Phase() == PhasePlay {
		if g.showGhost {
			drawPiece(dst, ox+1, oy+1, s.Ghost(), "░░", core.ColorGray)
		}
		p := s.Piece()
		drawPiece(dst, ox+1, oy+1, p, "██", core.PieceColor(p.ID()))
	}

	g.renderHUD(dst, ox+wellW+hudGap, oy+1)

	switch s.Phase() {
	case PhaseStart:
		renderOverlay(dst, ox, oy, "PRESS START", fmt.Sprintf("STARTING LEVEL: %d", s.StartLevel()))
	case PhaseGameOver:
		renderOverlay(dst, ox, oy, "GAME OVER", fmt.Sprintf("POINTS: %d", s.Points()))
	}
}

// renderBoard draws the visible rows of locked cells with (x, y) as the
// well's inner top-left corner.
func (g *Game) renderBoard(dst *core.Screen, x, y int) {
	s := g.state
	b := s.Board()
	marker, marked := s.PendingRows()
	highlight := s.Phase() == PhaseLineClear && marked > 0

	for row := HiddenRows; row < Height; row++ {
		sy := y + row - HiddenRows
		for col := 0; col < Width; col++ {
			v := b.At(row, col)
			if v == 0 {
				continue
			}
			color := core.PieceColor(v)
			if highlight && marker[row] {
				color = core.ColorBrightWhite
			}
			dst.DrawTextColor(x+col*cellW, sy, "██", color)
		}
	}
}

// drawPiece draws the visible cells of a piece.
func drawPiece(dst *core.Screen, x, y int, p Piece, glyph string, color core.Color) {
	p.Cells(func(row, col int, _ uint8) {
		if row < HiddenRows {
			return
		}
		dst.DrawTextColor(x+col*cellW, y+row-HiddenRows, glyph, color)
	})
}

// renderHUD draws the level, line and point counters.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	s := g.state
	entries := []struct {
		label string
		value int
	}{
		{"LEVEL", s.Level()},
		{"LINES", s.Lines()},
		{"POINTS", s.Points()},
	}
	for i, e := range entries {
		dst.DrawTextColor(x, y+i*3, e.label, core.ColorGray)
		dst.DrawTextColor(x, y+i*3+1, fmt.Sprintf("%d", e.value), core.ColorBrightWhite)
	}
}

// renderOverlay draws two centered lines in the middle of the well.
func renderOverlay(dst *core.Screen, ox, oy int, line1, line2 string) {
	mid := oy + wellH/2
	for _, l := range []struct {
		text  string
		y     int
		color core.Color
	}{
		{line1, mid - 1, core.ColorBrightWhite},
		{line2, mid + 1, core.ColorWhite},
	} {
		x := ox + (wellW-len(l.text))/2
		dst.DrawTextColor(x, l.y, l.text, l.color)
	}
}
