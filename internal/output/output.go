// Package output renders snapshots and replayed matches as text diagrams or
// JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// Newline ends the current line.
func (o *OutputWriter) Newline() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Glyph returns the kind letter, uppercase for white and lowercase for black.
func Glyph(kind, colour string) byte {
	k, err := chess.ParseKind(kind)
	if err != nil {
		return '?'
	}
	letter := k.Letter()
	if colour == chess.Black.String() {
		letter += 'a' - 'A'
	}
	return letter
}

// WriteBoardText draws a snapshot as a grid with rank numbers down the left
// and file numbers along the bottom. Empty squares are '.', legal targets of
// the selected piece are '*', and a checked king is followed by '+'.
func WriteBoardText(w io.Writer, snap game.Snapshot) error {
	n := snap.BoardSize
	cells := make([][]string, n)
	for r := range cells {
		cells[r] = make([]string, n)
		for f := range cells[r] {
			cells[r][f] = " . "
		}
	}
	for _, sq := range snap.Highlights {
		if sq.In(n) {
			cells[sq.Rank][sq.File] = " * "
		}
	}
	for _, p := range snap.Pieces {
		if !p.Square.In(n) {
			continue
		}
		left, right := " ", " "
		if p.Selected {
			left, right = "[", "]"
		}
		if p.Checked {
			right = "+"
		}
		cells[p.Square.Rank][p.Square.File] = left + string(Glyph(p.Kind, p.Colour)) + right
	}

	var sb strings.Builder
	for r, row := range cells {
		fmt.Fprintf(&sb, "%2d %s\n", r, strings.Join(row, ""))
	}
	sb.WriteString("   ")
	for f := 0; f < n; f++ {
		fmt.Fprintf(&sb, "%2d ", f)
	}
	sb.WriteString("\n")
	sb.WriteString(statusLine(snap))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func statusLine(snap game.Snapshot) string {
	switch {
	case snap.GameOver:
		return fmt.Sprintf("checkmate, %s wins", snap.Winner)
	case snap.Checked:
		return snap.ToMove + " to move, in check"
	default:
		return snap.ToMove + " to move"
	}
}

// WriteHistory writes the move list wrapped at maxLineLength.
func WriteHistory(w io.Writer, history []game.MoveRecord, maxLineLength int) error {
	ow := NewOutputWriter(w, maxLineLength)
	for _, m := range history {
		ow.Write(m.String() + ";")
	}
	if len(history) > 0 {
		ow.Newline()
	}
	return ow.Err()
}
