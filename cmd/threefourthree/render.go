package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/blubits/threefourthree/internal/games/t343"
)

// printer writes games and messages either styled or as plain text.
type printer struct {
	out   io.Writer
	plain bool
	theme Theme
}

// newPrinter styles output only when out is a terminal and plain is unset.
func newPrinter(out io.Writer, plain bool) *printer {
	if !plain {
		f, ok := out.(*os.File)
		plain = !ok || !term.IsTerminal(int(f.Fd()))
	}
	return &printer{out: out, plain: plain, theme: DefaultTheme()}
}

// Game prints the HUD line and the board.
func (p *printer) Game(variant string, g *t343.Game) {
	if p.plain {
		fmt.Fprintf(p.out, "%s  score: %d  status: %s  goal: %d\n",
			variant, g.Score(), g.Status(), g.WinTile())
		fmt.Fprintln(p.out, g.Board().String())
		return
	}

	th := p.theme
	hud := strings.Join([]string{
		th.HUDTitle.Render(variant),
		th.HUDLabel.Render("score ") + th.HUDValue.Render(strconv.Itoa(g.Score())),
		th.HUDLabel.Render("goal ") + th.HUDValue.Render(strconv.Itoa(g.WinTile())),
		th.Status(g.Status()).Render(string(g.Status())),
	}, "  ")
	fmt.Fprintln(p.out, hud)
	fmt.Fprintln(p.out, th.Board.Render(p.styledBoard(g)))
}

func (p *printer) styledBoard(g *t343.Game) string {
	base := g.Board().InitialValue()
	width := len(strconv.Itoa(g.Board().MaxValue()))
	if width < 4 {
		width = 4
	}

	var sb strings.Builder
	for r, row := range g.Peek() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				sb.WriteString(p.theme.EmptyCell.Render(fmt.Sprintf("%*s", width, "·")))
				continue
			}
			sb.WriteString(p.theme.Tile(v, base).Render(fmt.Sprintf("%*d", width, v)))
		}
	}
	return sb.String()
}

// Message prints a line of commentary below the board.
func (p *printer) Message(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !p.plain {
		msg = p.theme.Message.Render(msg)
	}
	fmt.Fprintln(p.out, msg)
}
