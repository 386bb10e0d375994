// Package protocol implements the line-oriented turn protocol the engine
// speaks over stdin/stdout: read the opponent's last move, read and discard
// the host's legal-action list, run the engine, write our move.
package protocol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/nullmove/uttt-engine/pkg/board"
)

// Mover answers BestMove queries; engine.Engine satisfies this.
type Mover interface {
	BestMove(b *board.Board, lastMove board.Move, side board.Player) (board.Move, error)
}

// Loop owns the board state across turns and drives the protocol against
// r/w until the opponent's stream closes or a fatal error occurs.
type Loop struct {
	mover Mover
	board board.Board
	last  board.Move
	side  board.Player

	r *bufio.Reader
	w io.Writer
}

// New builds a Loop. side is the color this engine plays.
func New(mover Mover, side board.Player, r io.Reader, w io.Writer) *Loop {
	return &Loop{
		mover: mover,
		last:  board.NoMove,
		side:  side,
		r:     bufio.NewReader(r),
		w:     w,
	}
}

// Step runs exactly one turn: reads the opponent's move (or the (-1,-1)
// sentinel on the very first turn), reads and discards the valid-action
// list, applies the opponent's move if any, asks the engine for a reply,
// applies and writes it. Returns io.EOF when the input stream ends cleanly,
// and an error for opponent coordinates outside [0,8] other than (-1,-1).
func (l *Loop) Step() error {
	oppRow, oppCol, err := l.readCoords()
	if err != nil {
		return err
	}

	if oppRow != -1 || oppCol != -1 {
		if oppRow < 0 || oppRow > 8 || oppCol < 0 || oppCol > 8 {
			return errors.Errorf("protocol: opponent move (%d, %d) out of range", oppRow, oppCol)
		}
		oppMove := board.Move(oppRow*9 + oppCol)
		l.board.Apply(oppMove, l.side.Opponent())
		l.last = oppMove
	}

	n, err := l.readInt()
	if err != nil {
		return errors.Wrap(err, "protocol: reading valid-action count")
	}
	for i := 0; i < n; i++ {
		if _, _, err := l.readCoords(); err != nil {
			return errors.Wrap(err, "protocol: discarding valid action")
		}
	}

	mv, err := l.mover.BestMove(&l.board, l.last, l.side)
	if err != nil {
		return errors.Wrap(err, "protocol: engine failed to produce a move")
	}

	l.board.Apply(mv, l.side)
	l.last = mv

	row, col := int(mv)/9, int(mv)%9
	_, err = fmt.Fprintf(l.w, "%d %d\n", row, col)
	return err
}

func (l *Loop) readCoords() (int, int, error) {
	var row, col int
	if _, err := fmt.Fscan(l.r, &row, &col); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func (l *Loop) readInt() (int, error) {
	var n int
	if _, err := fmt.Fscan(l.r, &n); err != nil {
		return 0, err
	}
	return n, nil
}
