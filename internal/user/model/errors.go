package model

import "errors"

var (
	// ErrUserNotFound indicates that no user matches the given student_id.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateStudentID indicates that a user with the given student_id already exists.
	ErrDuplicateStudentID = errors.New("student_id already exists")
	// ErrInvalidIsTeacher indicates that the is_teacher flag is neither 0 nor 1.
	ErrInvalidIsTeacher = errors.New("is_teacher must be 0 or 1")
)
