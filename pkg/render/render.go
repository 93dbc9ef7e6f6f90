// Package render prints Sim boards to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-sim/pkg/sim"
)

type Renderer struct {
	out *termenv.Output
}

// New renders to w, detecting the color profile from the terminal.
// With color disabled everything is printed as plain ASCII.
func New(w io.Writer, color bool) *Renderer {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) edgeStyle(c sim.Color) termenv.Style {
	s := r.out.String(string(c.Rune()))
	switch c {
	case sim.ColorRed:
		s = s.Foreground(termenv.ANSIBrightRed).Bold()
	case sim.ColorBlue:
		s = s.Foreground(termenv.ANSIBrightBlue).Bold()
	default:
		s = s.Faint()
	}
	return s
}

// Board writes two rows: the edge names and their colors, one column per edge
//
//	12 13 14 15 16 23 24 25 26 34 35 36 45 46 56
//	R  .  .  .  .  .  .  .  .  .  .  .  .  .  B
func (r *Renderer) Board(b *sim.Board) string {
	header := strings.Builder{}
	row := strings.Builder{}

	for i := range sim.NumEdges {
		e := sim.Edge(i)
		header.WriteString(e.String())
		row.WriteString(r.edgeStyle(b.At(e)).String())
		if i != sim.NumEdges-1 {
			header.WriteString(" ")
			row.WriteString("  ")
		}
	}

	return header.String() + "\n" + row.String() + "\n"
}

// Indices writes the edge index of every column, aligned with Board's output
func (r *Renderer) Indices() string {
	builder := strings.Builder{}
	for i := range sim.NumEdges {
		fmt.Fprintf(&builder, "%-2d", i)
		if i != sim.NumEdges-1 {
			builder.WriteString(" ")
		}
	}
	return r.out.String(builder.String()).Faint().String() + "\n"
}

// PrintBoard writes the current board with an index ruler
func (r *Renderer) PrintBoard(b *sim.Board) {
	fmt.Fprint(r.out, "\nCurrent board:\n")
	fmt.Fprint(r.out, r.Indices())
	fmt.Fprint(r.out, r.Board(b))
}

// Result announces the outcome from the point of view of 'human'
func (r *Renderer) Result(t sim.Termination, human sim.Color) string {
	switch t.Winner() {
	case sim.ColorNone:
		if t == sim.TerminationDraw {
			return "The game is a draw."
		}
		return ""
	case human:
		return r.out.String("Congratulations! You have won!").Bold().String()
	}
	return r.out.String("Computer wins! Better luck next time.").Bold().String()
}

// Printf writes formatted text to the output
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
