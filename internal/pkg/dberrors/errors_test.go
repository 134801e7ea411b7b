package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "courses_code_key"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("error creating course: %w", unique)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "sections_semester_course_number_key"}

	assert.True(t, IsDuplicateConstraintError(unique, "sections_semester_course_number_key"))
	assert.False(t, IsDuplicateConstraintError(unique, "courses_code_key"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "sections_semester_course_number_key"}, "sections_semester_course_number_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("connection refused"), "courses_code_key"))
}
