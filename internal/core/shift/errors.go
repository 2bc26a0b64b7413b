package shift

import "errors"

var (
	ErrUnencodableKind       = errors.New("shift: kind cannot be encoded")
	ErrUnexpectedAssignments = errors.New("shift: assignments are only valid for help shifts")
)
