// Package model defines the student record types.
package model

import "fmt"

// GradeMin and GradeMax bound the grade scale. Grades outside this range
// are rejected at construction time and never stored.
const (
	GradeMin = 0
	GradeMax = 5
)

// RoleStudent is the role reported by every Student value.
const RoleStudent = "Student"

// ValidationError reports a field value that violates a record invariant.
// Check for it with errors.As.
type ValidationError struct {
	Field string
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

// CheckGrade returns a ValidationError if g is outside the grade scale.
// This is the single point of grade-range enforcement; both the constructor
// and SetGrade go through it, as does the persistence layer when it
// re-validates a loaded snapshot.
func CheckGrade(g int) error {
	if g < GradeMin || g > GradeMax {
		return &ValidationError{Field: "grade", Value: g}
	}
	return nil
}

// Person holds the attributes shared by every person-shaped record.
// It is never used standalone; concrete kinds embed it.
type Person struct {
	Name string `json:"name"`
}

// Student is a single student record. Values are plain data carriers;
// construct them with NewStudent and mutate the grade through SetGrade so
// the grade invariant holds.
type Student struct {
	Person
	RollNumber string `json:"rollNumber"`
	Course     string `json:"course"`
	Grade      int    `json:"grade"`
}

// NewStudent builds a fully populated Student. It fails with a
// ValidationError when grade is outside [GradeMin, GradeMax]. Textual field
// checks are the caller's job (see the validator package); this constructor
// only guards the entity-level grade invariant.
func NewStudent(name, rollNumber, course string, grade int) (*Student, error) {
	if err := CheckGrade(grade); err != nil {
		return nil, err
	}
	return &Student{
		Person:     Person{Name: name},
		RollNumber: rollNumber,
		Course:     course,
		Grade:      grade,
	}, nil
}

// SetGrade replaces the grade, failing with a ValidationError when g is out
// of range. The stored value is unchanged on failure.
func (s *Student) SetGrade(g int) error {
	if err := CheckGrade(g); err != nil {
		return err
	}
	s.Grade = g
	return nil
}

// Role identifies the record kind.
func (s Student) Role() string {
	return RoleStudent
}

func (s Student) String() string {
	return fmt.Sprintf("Student{name: %s, rollNumber: %s, course: %s, grade: %d}",
		s.Name, s.RollNumber, s.Course, s.Grade)
}
