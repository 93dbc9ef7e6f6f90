package sim

import (
	"strings"

	"github.com/pkg/errors"
)

// The empty board in notation form
const StartingPosition = "..............."

// Notation returns the board as 15 characters, one per edge in index order:
// '.' for an empty edge, 'R' for red and 'B' for blue.
//
// For example, after red colors 12 and blue colors 56:
//
//	R.............B
func (b *Board) Notation() string {
	builder := strings.Builder{}
	builder.Grow(NumEdges)
	for i := range NumEdges {
		builder.WriteRune(b.edges[i].Rune())
	}
	return builder.String()
}

// Create the board from given notation string, "startpos" is accepted for the empty board
func FromNotation(notation string) (*Board, error) {
	b := NewBoard()
	return b, b.SetNotation(notation)
}

// SetNotation overwrites the board with given notation, on error the board is left untouched
func (b *Board) SetNotation(notation string) error {
	notation = strings.TrimSpace(notation)
	if notation == "startpos" {
		notation = StartingPosition
	}

	if len(notation) != NumEdges {
		return errors.Wrapf(ErrInvalidNotation, "expected %d characters, got %d", NumEdges, len(notation))
	}

	var edges [NumEdges]Color
	for i := range NumEdges {
		switch v := notation[i]; v {
		case '.', '-':
			edges[i] = ColorNone
		case 'R', 'r':
			edges[i] = ColorRed
		case 'B', 'b':
			edges[i] = ColorBlue
		default:
			return errors.Wrapf(ErrInvalidNotation, "%q at index %d (%c)", notation, i, v)
		}
	}

	b.edges = edges
	return nil
}
