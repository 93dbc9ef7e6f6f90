package sim

import "github.com/pkg/errors"

var (
	ErrInvalidEdge     = errors.New("invalid edge")
	ErrInvalidColor    = errors.New("invalid player color")
	ErrEdgeTaken       = errors.New("edge already colored")
	ErrEdgeEmpty       = errors.New("edge is not colored")
	ErrInvalidNotation = errors.New("invalid board notation")
)

func invalidEdgeError(s string) error {
	return errors.Wrapf(ErrInvalidEdge, "%q is neither an index in [0, %d] nor a vertex pair 12..56", s, NumEdges-1)
}

func invalidColorError(s string) error {
	return errors.Wrapf(ErrInvalidColor, "%q, expected red or blue", s)
}
