package schedule

import (
	"errors"
	"interview-scheduler/internal/pkg/constvars"
)

var (
	ErrNotLoaded          = errors.New("schedule not loaded")
	ErrUnknownDay         = errors.New("unknown day")
	ErrUnknownSlot        = errors.New("unknown appointment slot")
	ErrUnknownInterviewer = errors.New("unknown interviewer")
	ErrBlankStudent       = errors.New("student name is blank")
	ErrStudentTooLong     = errors.New("student name is too long")
	ErrSlotEmpty          = errors.New("appointment slot has no interview")
	// ErrSlotPending rejects a second action on a slot whose call is still in flight.
	ErrSlotPending = errors.New("appointment slot has a call in flight")
	ErrNotPending  = errors.New("appointment slot has no matching call in flight")
	ErrEmptyAction = errors.New("action carries no schedule")
)

type FailureKind int

const (
	SaveFailed FailureKind = iota + 1
	DeleteFailed
)

// Message is the text shown on the slot after a failure of this kind.
func (k FailureKind) Message() string {
	switch k {
	case SaveFailed:
		return constvars.ErrClientCouldNotBookAppointment
	case DeleteFailed:
		return constvars.ErrClientCouldNotCancelAppointment
	default:
		return constvars.ResponseUnknown
	}
}

// SettleError reports a remote call that failed. The slot has already been
// rolled back when a caller sees it.
type SettleError struct {
	Kind   FailureKind
	SlotID int
	Cause  error
}

func (e *SettleError) Error() string {
	if e.Cause == nil {
		return e.Kind.Message()
	}
	return e.Kind.Message() + " " + e.Cause.Error()
}

func (e *SettleError) Unwrap() error {
	return e.Cause
}
