package gpa

import (
	"fmt"
	"math"
)

// Letter is a letter grade on the 4.0 scale
type Letter string

const (
	LetterA      Letter = "A"
	LetterAMinus Letter = "A-"
	LetterBPlus  Letter = "B+"
	LetterB      Letter = "B"
	LetterBMinus Letter = "B-"
	LetterCPlus  Letter = "C+"
	LetterC      Letter = "C"
)

// MaxPoints is the top of the grade-point scale
const MaxPoints = 4.0

// letterTolerance is how close a grade-point value must be to a table entry to resolve to it
const letterTolerance = 0.01

// GradePoint pairs a letter grade with its grade-point value
type GradePoint struct {
	Letter Letter  `json:"letter"`
	Points float64 `json:"points"`
}

// scale is ordered from highest to lowest; LetterFor returns the first hit.
var scale = []GradePoint{
	{LetterA, 4.0},
	{LetterAMinus, 3.7},
	{LetterBPlus, 3.3},
	{LetterB, 3.0},
	{LetterBMinus, 2.7},
	{LetterCPlus, 2.3},
	{LetterC, 2.0},
}

// Scale returns a copy of the grade table, highest grade first
func Scale() []GradePoint {
	out := make([]GradePoint, len(scale))
	copy(out, scale)
	return out
}

// PointsFor looks up the grade-point value of a letter grade
func PointsFor(letter Letter) (float64, bool) {
	for _, g := range scale {
		if g.Letter == letter {
			return g.Points, true
		}
	}
	return 0, false
}

// LetterFor resolves a grade-point value to the closest letter within 0.01.
// Values that match no letter resolve to B.
func LetterFor(value float64) Letter {
	for _, g := range scale {
		if math.Abs(g.Points-value) < letterTolerance {
			return g.Letter
		}
	}
	return LetterB
}

// IsValid reports whether the letter is part of the scale
func (l Letter) IsValid() bool {
	_, ok := PointsFor(l)
	return ok
}

// Clamp bounds a GPA to [0, 4] for display
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > MaxPoints {
		return MaxPoints
	}
	return v
}

// Format renders a GPA clamped to the scale with two decimals
func Format(v float64) string {
	return fmt.Sprintf("%.2f", Clamp(v))
}
