package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseType(t *testing.T) {
	got, err := ExerciseType("  Breathing ")
	require.NoError(t, err)
	assert.Equal(t, "breathing", got)

	got, err = ExerciseType("chair_squats-2")
	require.NoError(t, err)
	assert.Equal(t, "chair_squats-2", got)

	for _, bad := range []string{"", "   ", strings.Repeat("a", 65), "rm -rf /", "<script>"} {
		_, err := ExerciseType(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("u1@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@example.com"))
}
