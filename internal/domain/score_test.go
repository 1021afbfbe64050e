package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeForScore_InclusiveThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  Grade
	}{
		{100, GradeA},
		{85, GradeA},
		{84, GradeB},
		{70, GradeB},
		{69, GradeC},
		{50, GradeC},
		{49, GradeD},
		{0, GradeD},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeForScore(tt.score), "score %d", tt.score)
	}
}

func TestDescribeDepletion(t *testing.T) {
	assert.Equal(t, SafeDepletionLabel, DescribeDepletion(nil))

	age := 78
	assert.Equal(t, "78세", DescribeDepletion(&age))
}
