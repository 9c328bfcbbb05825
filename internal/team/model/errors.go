package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrDuplicateTeamLeader indicates that a team with the same
	// (course_id, leader_id) pair already exists.
	ErrDuplicateTeamLeader = errors.New("team with this leader already exists in the course")
)
