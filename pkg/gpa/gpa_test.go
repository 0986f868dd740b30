package gpa_test

import (
	"testing"

	"study-planner-backend/pkg/gpa"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		student float64
		minReq  float64
		want    gpa.Tier
	}{
		{"well below minimum is reach", 3.0, 3.7, gpa.TierReach},
		{"just past lower band is reach", 3.39, 3.6, gpa.TierReach},
		{"exact lower boundary is match", 3.4, 3.6, gpa.TierMatch},
		{"equal is match", 3.4, 3.4, gpa.TierMatch},
		{"exact upper boundary is match", 3.3, 3.1, gpa.TierMatch},
		{"just past upper band is safety", 3.31, 3.1, gpa.TierSafety},
		{"well above minimum is safety", 3.9, 3.0, gpa.TierSafety},
		{"overshoot below 1e-9 stays match", 3.6000000002, 3.4, gpa.TierMatch},
		{"overshoot above 1e-9 is safety", 3.600000002, 3.4, gpa.TierSafety},
		{"out of range gpa is accepted", 5.0, 3.7, gpa.TierSafety},
		{"negative gpa is accepted", -1.0, 3.0, gpa.TierReach},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gpa.Classify(tt.student, tt.minReq))
		})
	}
}

func TestClassifyIsStable(t *testing.T) {
	for _, minReq := range []float64{3.0, 3.1, 3.3, 3.4, 3.6, 3.7} {
		first := gpa.Classify(3.4, minReq)
		assert.Equal(t, first, gpa.Classify(3.4, minReq))
		assert.True(t, first.IsValid())
	}
}

func TestSimulate(t *testing.T) {
	t.Run("Empty plan returns current GPA", func(t *testing.T) {
		assert.Equal(t, 3.4, gpa.Simulate(3.4, 90, nil))
		assert.Equal(t, 2.75, gpa.Simulate(2.75, 0, []gpa.CourseLoad{}))
	})

	t.Run("Single course is weighted by credits", func(t *testing.T) {
		got := gpa.Simulate(3.4, 90, []gpa.CourseLoad{{Credits: 4, GradePoint: 4.0}})
		assert.InDelta(t, 322.0/94.0, got, 1e-9)
		assert.Equal(t, "3.43", gpa.Format(got))
	})

	t.Run("Default roadmap targets", func(t *testing.T) {
		courses := []gpa.CourseLoad{
			{Credits: 4, GradePoint: 3.3},
			{Credits: 3, GradePoint: 3.7},
			{Credits: 4, GradePoint: 3.0},
			{Credits: 3, GradePoint: 4.0},
		}
		want := (3.4*90 + 3.3*4 + 3.7*3 + 3.0*4 + 4.0*3) / 104
		assert.InDelta(t, want, gpa.Simulate(3.4, 90, courses), 1e-9)
		assert.Equal(t, 14, gpa.TotalCredits(courses))
	})

	t.Run("Zero total credits returns current GPA", func(t *testing.T) {
		assert.Equal(t, 3.1, gpa.Simulate(3.1, 0, []gpa.CourseLoad{{Credits: 0, GradePoint: 4.0}}))
	})

	t.Run("No past credits averages the plan only", func(t *testing.T) {
		got := gpa.Simulate(0, 0, []gpa.CourseLoad{{Credits: 3, GradePoint: 4.0}, {Credits: 3, GradePoint: 2.0}})
		assert.InDelta(t, 3.0, got, 1e-9)
	})
}

func TestLetterFor(t *testing.T) {
	assert.Equal(t, gpa.LetterAMinus, gpa.LetterFor(3.7))
	assert.Equal(t, gpa.LetterA, gpa.LetterFor(4.0))
	assert.Equal(t, gpa.LetterC, gpa.LetterFor(2.005))
	assert.Equal(t, gpa.LetterB, gpa.LetterFor(3.05), "no letter near 3.05 falls back to B")
	assert.Equal(t, gpa.LetterB, gpa.LetterFor(1.0))

	for _, g := range gpa.Scale() {
		assert.Equal(t, g.Letter, gpa.LetterFor(g.Points))
		points, ok := gpa.PointsFor(g.Letter)
		assert.True(t, ok)
		assert.Equal(t, g.Points, points)
	}
}

func TestPointsForUnknownLetter(t *testing.T) {
	_, ok := gpa.PointsFor("D")
	assert.False(t, ok)
	assert.False(t, gpa.Letter("A+").IsValid())
}

func TestScaleReturnsCopy(t *testing.T) {
	s := gpa.Scale()
	s[0].Points = 0
	points, _ := gpa.PointsFor(gpa.LetterA)
	assert.Equal(t, 4.0, points)
}

func TestFormatClamps(t *testing.T) {
	assert.Equal(t, "4.00", gpa.Format(4.4))
	assert.Equal(t, "0.00", gpa.Format(-0.3))
	assert.Equal(t, "3.40", gpa.Format(3.4))
}
