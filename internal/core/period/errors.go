package period

import "errors"

var (
	ErrInvalidPeriod = errors.New("period: invalid year or month")
	ErrOutOfPeriod   = errors.New("period: date is outside the period")
)
