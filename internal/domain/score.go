package domain

import "fmt"

// Grade is the letter form of a readiness score
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Score bounds and grade thresholds (inclusive).
const (
	MinScore        = 0
	MaxScore        = 100
	GradeAThreshold = 85
	GradeBThreshold = 70
	GradeCThreshold = 50
)

// SafeDepletionLabel is the depletion description used when assets last until death age.
const SafeDepletionLabel = "Safe"

// GradeForScore maps a score to its grade.
func GradeForScore(score int) Grade {
	switch {
	case score >= GradeAThreshold:
		return GradeA
	case score >= GradeBThreshold:
		return GradeB
	case score >= GradeCThreshold:
		return GradeC
	default:
		return GradeD
	}
}

// ScoreResult is the readiness score of one projection.
type ScoreResult struct {
	Score        int   `json:"score"`
	Grade        Grade `json:"grade"`
	DepletionAge *int  `json:"depletion_age,omitempty"`
}

// DescribeDepletion formats a depletion age as "<age>세", or SafeDepletionLabel when nil.
func DescribeDepletion(age *int) string {
	if age == nil {
		return SafeDepletionLabel
	}
	return fmt.Sprintf("%d세", *age)
}
