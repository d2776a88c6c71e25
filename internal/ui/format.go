package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"seaplane/internal/core"
	"seaplane/internal/sims/flight"
)

var glyphs = strings.NewReplacer("⭐", "*", "×", "x", "÷", "/")

// ASCII rewrites the glyphs basicfont cannot draw.
func ASCII(s string) string { return glyphs.Replace(s) }

// ScoreLabel is the in-flight score readout.
func ScoreLabel(score float64) string {
	return fmt.Sprintf("* %.2f", math.Max(0, score))
}

// PanelLine is one row of the parameter panel.
type PanelLine struct {
	Header bool
	Label  string
	Value  string
}

// PanelLines flattens a snapshot into panel rows, one header per group.
func PanelLines(s core.ParameterSnapshot) []PanelLine {
	var lines []PanelLine
	for _, g := range s.Groups {
		lines = append(lines, PanelLine{Header: true, Label: g.Name})
		for _, p := range g.Params {
			lines = append(lines, PanelLine{Label: p.Label, Value: p.Value})
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil {
		return "Run"
	}
	name := sim.Name()
	if name == "" {
		return "Run"
	}
	return fmt.Sprintf("%s Run", strings.Title(name))
}

// PickupColor is the tint of a floating pickup label at the given alpha.
func PickupColor(good bool, alpha float64) color.RGBA {
	a := uint8(math.Round(255 * clamp01(alpha)))
	if good {
		return color.RGBA{R: 74, G: 222, B: 128, A: a}
	}
	return color.RGBA{R: 248, G: 113, B: 113, A: a}
}

// VisiblePickups filters texts to those still on screen at now.
func VisiblePickups(texts []flight.PickupText, now time.Duration) []flight.PickupText {
	out := texts[:0:0]
	for _, t := range texts {
		if t.Visible(now) {
			out = append(out, t)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
