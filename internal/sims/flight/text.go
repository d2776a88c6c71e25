package flight

import (
	"strconv"
	"time"
)

const textLift = 26.0

// PickupText is the floating label shown where a bonus was collected.
type PickupText struct {
	X, Y float64
	Text string
	Good bool
	T0   time.Duration
	Life time.Duration
}

// progress returns the normalised age of the label at now.
func (p PickupText) progress(now time.Duration) float64 {
	if p.Life <= 0 {
		return 1
	}
	return clampF(float64(now-p.T0)/float64(p.Life), 0, 1)
}

// Lift is the upward offset at now. It eases out to textLift pixels.
func (p PickupText) Lift(now time.Duration) float64 {
	k := 1 - p.progress(now)
	return textLift * (1 - k*k)
}

// Alpha fades the label linearly over its life.
func (p PickupText) Alpha(now time.Duration) float64 {
	return 1 - p.progress(now)
}

// Visible reports whether the label should still be drawn at now.
func (p PickupText) Visible(now time.Duration) bool {
	age := now - p.T0
	return age >= 0 && age <= p.Life
}

func prunePickupTexts(texts []PickupText, now time.Duration) []PickupText {
	out := texts[:0]
	for _, t := range texts {
		if now-t.T0 < t.Life {
			out = append(out, t)
		}
	}
	return out
}

// ResultText formats a final score for the result menu. The display is
// capped to [0, 1] with two decimals.
func ResultText(score float64) string {
	return "⭐ " + strconv.FormatFloat(clampF(score, 0, 1), 'f', 2, 64)
}

// ResultASCII is ResultText for frontends without the star glyph.
func ResultASCII(score float64) string {
	return "* " + strconv.FormatFloat(clampF(score, 0, 1), 'f', 2, 64)
}
