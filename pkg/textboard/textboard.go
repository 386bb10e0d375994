// Package textboard renders an Ultimate Tic-Tac-Toe board to a terminal
// with ANSI styling. It is a debug/benchmark-only consumer of pkg/board and
// is never imported by the search core.
package textboard

import (
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/nullmove/uttt-engine/pkg/board"
	"github.com/nullmove/uttt-engine/pkg/tables"
)

var (
	profile = termenv.ColorProfile()

	xHex, oHex = "#E06C75", "#61AFEF"
	xColor     = profile.Color(xHex)
	oColor     = profile.Color(oHex)

	drawnGray   = colorful.Color{R: 0.45, G: 0.45, B: 0.45}
	xDrawnColor = profile.Color(drawnTint(xHex).Hex())
	oDrawnColor = profile.Color(drawnTint(oHex).Hex())
)

// Fprint writes a 9x9 rendering of b to w, coloring X and O stones and
// dimming cells belonging to a local board that is already decided
// (mirrors the reference engine's print_wholeboard_filled, which dims
// finished local boards so the live ones stand out).
func Fprint(w io.Writer, b *board.Board) {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			outer := (row/3)*3 + col/3
			inner := (row%3)*3 + col%3
			mini := b[outer]
			status := tables.StateOf[mini]
			cellDigit := decodeCellDigit(mini, inner)

			fmt.Fprint(w, styledCell(cellDigit, status))

			if col%3 == 2 && col != 8 {
				fmt.Fprint(w, termenv.String("|").Faint())
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprintln(w)
		if row%3 == 2 && row != 8 {
			fmt.Fprintln(w, termenv.String("------+------+------").Faint())
		}
	}
}

// decodeCellDigit extracts the base-3 digit for a single cell (0 empty, 1
// X, 2 O) from a local board's encoding, without needing a full decode of
// every cell.
func decodeCellDigit(mini uint16, cell int) uint8 {
	return uint8((mini / tables.Pow3[cell]) % 3)
}

func styledCell(digit uint8, localStatus board.Status) string {
	switch digit {
	case 1:
		c := xColor
		if localStatus == tables.Drawn {
			c = xDrawnColor
		}
		s := termenv.String("X").Foreground(c)
		if localStatus != tables.Undecided && localStatus != tables.Drawn {
			s = s.Faint()
		}
		return s.String()
	case 2:
		c := oColor
		if localStatus == tables.Drawn {
			c = oDrawnColor
		}
		s := termenv.String("O").Foreground(c)
		if localStatus != tables.Undecided && localStatus != tables.Drawn {
			s = s.Faint()
		}
		return s.String()
	default:
		return termenv.String(".").Faint().String()
	}
}

// drawnTint blends a stone's vivid color halfway toward gray, used for
// stones that sit in a local board that ended in a draw so they read as
// visually distinct from a board decisively won.
func drawnTint(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return drawnGray
	}
	return c.BlendLab(drawnGray, 0.5)
}
