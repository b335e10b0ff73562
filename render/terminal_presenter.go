package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/boxpusher/core"
)

// Glyph is the terminal stand-in for one image path
type Glyph struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Style converts the glyph colours to a tcell style
func (g Glyph) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(g.Fg).Background(g.Bg)
}

// GlyphTable maps image paths to glyphs
type GlyphTable map[string]Glyph

// ParseGlyph builds a glyph from config strings; colour names follow tcell.GetColor
func ParseGlyph(symbol, fg, bg string) (Glyph, error) {
	runes := []rune(symbol)
	if len(runes) != 1 {
		return Glyph{}, fmt.Errorf("glyph %q must be a single character", symbol)
	}
	g := Glyph{Rune: runes[0], Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}
	if fg != "" {
		if g.Fg = tcell.GetColor(fg); g.Fg == tcell.ColorDefault {
			return Glyph{}, fmt.Errorf("glyph %q: unknown colour %q", symbol, fg)
		}
	}
	if bg != "" {
		if g.Bg = tcell.GetColor(bg); g.Bg == tcell.ColorDefault {
			return Glyph{}, fmt.Errorf("glyph %q: unknown colour %q", symbol, bg)
		}
	}
	return g, nil
}

const (
	// cellsPerTile is the terminal column count of one grid tile; two keeps tiles roughly square
	cellsPerTile = 2
	boardOffsetX = 1
	boardOffsetY = 2
)

// TerminalPresenter draws batches onto a tcell screen, one glyph per tile.
// Unknown paths fall back to a marker glyph instead of failing the frame
type TerminalPresenter struct {
	screen    tcell.Screen
	glyphs    GlyphTable
	fallback  Glyph
	tileWidth int
	hudStyle  tcell.Style
}

// NewTerminalPresenter creates a presenter; tileWidth converts batch destinations back to grid cells
func NewTerminalPresenter(screen tcell.Screen, glyphs GlyphTable, tileWidth int) *TerminalPresenter {
	if tileWidth <= 0 {
		tileWidth = 1
	}
	return &TerminalPresenter{
		screen:    screen,
		glyphs:    glyphs,
		fallback:  Glyph{Rune: '?', Fg: tcell.ColorFuchsia, Bg: tcell.ColorDefault},
		tileWidth: tileWidth,
		hudStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	}
}

// CellFor maps a batch destination to its terminal column and row
func (p *TerminalPresenter) CellFor(dest core.Point) (col, row int) {
	col = boardOffsetX + dest.X/p.tileWidth*cellsPerTile
	row = boardOffsetY + dest.Y/p.tileWidth
	return col, row
}

// Present clears the screen, draws batches in order, the HUD line, then shows
func (p *TerminalPresenter) Present(frame Frame) error {
	p.screen.Clear()

	for _, batch := range frame.Batches {
		g, ok := p.glyphs[batch.Path]
		if !ok {
			g = p.fallback
		}
		style := g.Style()
		for _, dest := range batch.Dests {
			col, row := p.CellFor(dest)
			p.screen.SetContent(col, row, g.Rune, nil, style)
			p.screen.SetContent(col+1, row, ' ', nil, style)
		}
	}

	hud := fmt.Sprintf("Moves: %d  %s", frame.HUD.Moves, frame.HUD.State)
	p.drawText(boardOffsetX, 0, hud)

	p.screen.Show()
	return nil
}

func (p *TerminalPresenter) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		p.screen.SetContent(x+i, y, r, nil, p.hudStyle)
	}
}
