package blokus

import "errors"

// Reason tells why a placement was rejected. The zero value means the move is legal.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonOutOfBounds
	ReasonOverlap
	ReasonMissingCornerStart
	ReasonEdgeAdjacency
	ReasonNoCornerAdjacency
	ReasonEmptyPiece
	ReasonInvalidPlayer
)

var (
	ErrOutOfBounds        = errors.New("out of bounds")
	ErrOverlap            = errors.New("overlaps an owned cell")
	ErrMissingCornerStart = errors.New("first move must occupy corner")
	ErrEdgeAdjacency      = errors.New("touches own color edge-to-edge")
	ErrNoCornerAdjacency  = errors.New("must touch own color at a corner")
	ErrEmptyPiece         = errors.New("piece has no occupied cells")
	ErrInvalidPlayer      = errors.New("unknown player")
)

var reasonErrors = map[Reason]error{
	ReasonOutOfBounds:        ErrOutOfBounds,
	ReasonOverlap:            ErrOverlap,
	ReasonMissingCornerStart: ErrMissingCornerStart,
	ReasonEdgeAdjacency:      ErrEdgeAdjacency,
	ReasonNoCornerAdjacency:  ErrNoCornerAdjacency,
	ReasonEmptyPiece:         ErrEmptyPiece,
	ReasonInvalidPlayer:      ErrInvalidPlayer,
}

func (that Reason) String() string {
	if err, ok := reasonErrors[that]; ok {
		return err.Error()
	}
	return "legal"
}

// Verdict is the result of evaluating a candidate placement.
// The message is for humans only; branch on Reason or Err.
type Verdict struct {
	Reason Reason
}

func Legal() Verdict {
	return Verdict{Reason: ReasonNone}
}

func Illegal(reason Reason) Verdict {
	return Verdict{Reason: reason}
}

func (that Verdict) Legal() bool {
	return that.Reason == ReasonNone
}

// Err - nil for legal moves, otherwise the sentinel matching the reason.
func (that Verdict) Err() error {
	return reasonErrors[that.Reason]
}

func (that Verdict) String() string {
	return that.Reason.String()
}
