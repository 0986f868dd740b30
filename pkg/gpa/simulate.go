package gpa

// CourseLoad is one planned course: its credit weight and the grade points aimed for
type CourseLoad struct {
	Credits    int
	GradePoint float64
}

// Simulate projects the cumulative GPA after the planned courses are completed.
//
// The result is the credit-weighted average of past and planned grade points. When no
// courses are planned, or the combined credits are zero, currentGPA is returned as is.
// The value is not rounded.
func Simulate(currentGPA float64, pastCredits int, courses []CourseLoad) float64 {
	if len(courses) == 0 {
		return currentGPA
	}

	pastPoints := currentGPA * float64(pastCredits)
	newPoints := 0.0
	newCredits := 0
	for _, c := range courses {
		newPoints += c.GradePoint * float64(c.Credits)
		newCredits += c.Credits
	}

	totalCredits := pastCredits + newCredits
	if totalCredits == 0 {
		return currentGPA
	}
	return (pastPoints + newPoints) / float64(totalCredits)
}

// TotalCredits sums the credits of the planned courses
func TotalCredits(courses []CourseLoad) int {
	total := 0
	for _, c := range courses {
		total += c.Credits
	}
	return total
}
