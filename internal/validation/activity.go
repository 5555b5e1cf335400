package validation

import (
	"errors"
	"strings"
	"unicode"
)

const maxExerciseTypeLength = 64

// ExerciseType normalizes an exercise type label and validates it.
func ExerciseType(exerciseType string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(exerciseType))

	if trimmed == "" {
		return "", errors.New("exercise type is required")
	}

	if len(trimmed) > maxExerciseTypeLength {
		return "", errors.New("exercise type is too long (max 64 characters)")
	}

	for _, r := range trimmed {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != ' ' {
			return "", errors.New("exercise type may only contain letters, digits, spaces, '-' and '_'")
		}
	}

	return trimmed, nil
}
