package schedule

import "errors"

var (
	ErrDateOutOfPeriod = errors.New("schedule: date is outside the period")
	ErrInvalidQuota    = errors.New("schedule: quota must be between 0 and 31")
	ErrNoDates         = errors.New("schedule: no dates given")
)
