package flight

import (
	"math"
	"strconv"
	"strings"
)

// Score bounds applied after every bonus.
const (
	ScoreMin = 0.0
	ScoreMax = 99.0
)

// OpKind enumerates the arithmetic a bonus applies to the score.
type OpKind uint8

const (
	OpAdd OpKind = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the operator symbol.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

// Operation is an operator paired with its magnitude.
type Operation struct {
	Kind  OpKind
	Value float64
}

var (
	goodOps = []Operation{
		{OpAdd, 0.5},
		{OpAdd, 1},
		{OpAdd, 2},
		{OpMultiply, 1.15},
		{OpMultiply, 1.25},
	}
	badOps = []Operation{
		{OpSubtract, 0.5},
		{OpSubtract, 1},
		{OpSubtract, 2},
		{OpDivide, 1.15},
		{OpDivide, 1.25},
	}
	allOps = []Operation{
		{OpAdd, 0.5},
		{OpAdd, 1},
		{OpAdd, 2},
		{OpSubtract, 0.5},
		{OpSubtract, 1},
		{OpSubtract, 2},
		{OpMultiply, 1.15},
		{OpMultiply, 1.25},
		{OpDivide, 1.15},
		{OpDivide, 1.25},
	}
)

// ClampScore bounds v to [ScoreMin, ScoreMax].
func ClampScore(v float64) float64 {
	return clampF(v, ScoreMin, ScoreMax)
}

// Raw applies the operation without clamping.
func (o Operation) Raw(score float64) float64 {
	switch o.Kind {
	case OpAdd:
		return score + o.Value
	case OpSubtract:
		return score - o.Value
	case OpMultiply:
		return score * o.Value
	case OpDivide:
		return score / o.Value
	default:
		return score
	}
}

// Apply returns the clamped score after the operation.
func (o Operation) Apply(score float64) float64 {
	return ClampScore(o.Raw(score))
}

// Good reports whether the operation can only raise a positive score.
func (o Operation) Good() bool {
	return o.Kind == OpAdd || o.Kind == OpMultiply
}

// Label formats the operation for pickup badges, e.g. "⭐+1" or "⭐×1.15".
func (o Operation) Label() string {
	return "⭐" + o.Short()
}

// Short formats the operation without the star glyph.
func (o Operation) Short() string {
	switch o.Kind {
	case OpAdd, OpSubtract:
		if o.Value == math.Trunc(o.Value) {
			return o.Kind.String() + strconv.FormatFloat(o.Value, 'f', -1, 64)
		}
		return o.Kind.String() + strconv.FormatFloat(o.Value, 'f', 1, 64)
	default:
		v := strconv.FormatFloat(o.Value, 'f', 2, 64)
		v = strings.TrimRight(v, "0")
		v = strings.TrimSuffix(v, ".")
		return o.Kind.String() + v
	}
}

// ASCII formats the operation using only ASCII operators, for bitmap fonts.
func (o Operation) ASCII() string {
	s := o.Short()
	s = strings.Replace(s, "×", "x", 1)
	return strings.Replace(s, "÷", "/", 1)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
