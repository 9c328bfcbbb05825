package model

import "errors"

var (
	// ErrCourseNotFound indicates that the requested course does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrDuplicateCourse indicates that a course with the same
	// (teacher_id, name, course_time) triple already exists.
	ErrDuplicateCourse = errors.New("course already exists")
)
