package roster

import "errors"

var (
	ErrInvalidID        = errors.New("roster: invalid id")
	ErrInvalidName      = errors.New("roster: invalid name")
	ErrInvalidOrdering  = errors.New("roster: display orders must be a dense 1..N permutation")
	ErrEmployeeNotFound = errors.New("roster: employee not found")
)
