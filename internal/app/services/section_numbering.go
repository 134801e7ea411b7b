package services

import (
	"fmt"
	"strconv"

	"github.com/aksoyb/schedly/internal/pkg/apperrors"
)

const maxSectionNumber = 999

// NormalizeSectionNumber turns a requested section number into its canonical
// zero-padded three digit form, so "7" and "007" name the same section.
func NormalizeSectionNumber(requested string) (string, error) {
	n, err := strconv.Atoi(requested)
	if err != nil || n < 1 || n > maxSectionNumber {
		return "", apperrors.NewValidationError(fmt.Sprintf("section number must be between 1 and %d, got %q", maxSectionNumber, requested))
	}
	return fmt.Sprintf("%03d", n), nil
}

// NextSectionNumber picks the lowest unused number between 001 and 999 given
// the numbers already taken for a course in a semester. When every number is
// taken it returns "999"; the unique constraint on persist catches the reuse.
func NextSectionNumber(taken []string) string {
	used := make(map[int]bool, len(taken))
	for _, t := range taken {
		if n, err := strconv.Atoi(t); err == nil {
			used[n] = true
		}
	}
	for n := 1; n <= maxSectionNumber; n++ {
		if !used[n] {
			return fmt.Sprintf("%03d", n)
		}
	}
	return fmt.Sprintf("%03d", maxSectionNumber)
}
