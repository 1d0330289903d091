package workrecord

import "errors"

// Work record domain errors
var (
	ErrWorkRecordNotFound = errors.New("work record not found")
	ErrShiftAlreadyOpen   = errors.New("an open shift already exists")
	ErrNoOpenShift        = errors.New("no open shift to clock out of")
	ErrInvalidDateRange   = errors.New("range start must not be after range end")
)
