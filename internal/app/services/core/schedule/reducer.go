package schedule

import (
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/pkg/constvars"
	"strings"
	"unicode/utf8"
)

// Action is a state transition understood by Reduce.
type Action interface {
	action()
}

type (
	// SetApplicationData installs a freshly loaded schedule.
	SetApplicationData struct {
		Schedule *models.Schedule
	}
	SetDay struct {
		Day string
	}
	// BeginSave stores the interview on the slot before the remote save answers.
	BeginSave struct {
		SlotID    int
		Interview models.Interview
	}
	// BeginDelete marks the slot as deleting; the interview stays until the
	// remote delete succeeds.
	BeginDelete struct {
		SlotID int
	}
	CommitSave struct {
		SlotID int
	}
	CommitDelete struct {
		SlotID int
	}
	FailSave struct {
		SlotID int
	}
	FailDelete struct {
		SlotID int
	}
	DismissError struct {
		SlotID int
	}
)

func (SetApplicationData) action() {}
func (SetDay) action()             {}
func (BeginSave) action()          {}
func (BeginDelete) action()        {}
func (CommitSave) action()         {}
func (CommitDelete) action()       {}
func (FailSave) action()           {}
func (FailDelete) action()         {}
func (DismissError) action()       {}

// Reduce applies action to state and returns the next state. On error the
// returned state is the input state, unchanged.
func Reduce(state State, action Action) (State, error) {
	if load, ok := action.(SetApplicationData); ok {
		return reduceSetApplicationData(state, load)
	}
	if !state.Loaded() {
		return state, ErrNotLoaded
	}

	switch a := action.(type) {
	case SetDay:
		if _, ok := state.findDay(a.Day); !ok {
			return state, ErrUnknownDay
		}
		state.Day = a.Day
		return state, nil

	case BeginSave:
		slot, err := lookupSlot(state, a.SlotID)
		if err != nil {
			return state, err
		}
		if slot.Status.IsPending() {
			return state, ErrSlotPending
		}
		if strings.TrimSpace(a.Interview.Student) == "" {
			return state, ErrBlankStudent
		}
		if utf8.RuneCountInString(a.Interview.Student) > constvars.MaxStudentNameLength {
			return state, ErrStudentTooLong
		}
		if _, ok := state.Interviewers[a.Interview.Interviewer]; !ok {
			return state, ErrUnknownInterviewer
		}
		slot.Prior = slot.Interview
		slot.Interview = a.Interview.Clone()
		slot.Status = StatusSaving
		slot.ErrorMessage = ""
		return withSlot(state, slot), nil

	case BeginDelete:
		slot, err := lookupSlot(state, a.SlotID)
		if err != nil {
			return state, err
		}
		if slot.Status.IsPending() {
			return state, ErrSlotPending
		}
		if slot.Interview == nil {
			return state, ErrSlotEmpty
		}
		slot.Prior = slot.Interview
		slot.Status = StatusDeleting
		slot.ErrorMessage = ""
		return withSlot(state, slot), nil

	case CommitSave:
		return settle(state, a.SlotID, StatusSaving, func(slot *Slot) {
			slot.Status = StatusIdle
		})

	case CommitDelete:
		return settle(state, a.SlotID, StatusDeleting, func(slot *Slot) {
			slot.Interview = nil
			slot.Status = StatusIdle
		})

	case FailSave:
		return settle(state, a.SlotID, StatusSaving, func(slot *Slot) {
			slot.Interview = slot.Prior
			slot.Status = StatusError
			slot.ErrorMessage = constvars.ErrClientCouldNotBookAppointment
		})

	case FailDelete:
		return settle(state, a.SlotID, StatusDeleting, func(slot *Slot) {
			slot.Interview = slot.Prior
			slot.Status = StatusError
			slot.ErrorMessage = constvars.ErrClientCouldNotCancelAppointment
		})

	case DismissError:
		slot, err := lookupSlot(state, a.SlotID)
		if err != nil {
			return state, err
		}
		if slot.Status != StatusError {
			return state, nil
		}
		slot.Status = StatusIdle
		slot.ErrorMessage = ""
		return withSlot(state, slot), nil
	}

	return state, nil
}

func reduceSetApplicationData(state State, a SetApplicationData) (State, error) {
	if a.Schedule == nil {
		return state, ErrEmptyAction
	}
	for _, slot := range state.Slots {
		if slot.Status.IsPending() {
			return state, ErrSlotPending
		}
	}

	next := State{
		Days:         make([]models.Day, len(a.Schedule.Days)),
		Slots:        make(map[int]Slot, len(a.Schedule.Appointments)),
		Interviewers: make(map[int]models.Interviewer, len(a.Schedule.Interviewers)),
	}
	copy(next.Days, a.Schedule.Days)
	for id, appointment := range a.Schedule.Appointments {
		next.Slots[id] = Slot{
			ID:        id,
			Time:      appointment.Time,
			Interview: appointment.Interview.Clone(),
			Status:    StatusIdle,
		}
	}
	for id, interviewer := range a.Schedule.Interviewers {
		next.Interviewers[id] = interviewer
	}

	switch {
	case state.Day != "" && hasDay(next, state.Day):
		next.Day = state.Day
	case hasDay(next, constvars.AppDefaultDay):
		next.Day = constvars.AppDefaultDay
	case len(next.Days) > 0:
		next.Day = next.Days[0].Name
	}
	return next, nil
}

func hasDay(state State, name string) bool {
	_, ok := state.findDay(name)
	return ok
}

func lookupSlot(state State, slotID int) (Slot, error) {
	slot, ok := state.Slots[slotID]
	if !ok {
		return Slot{}, ErrUnknownSlot
	}
	return slot, nil
}

// settle resolves the pending change of a slot whose status is expected.
func settle(state State, slotID int, expected SlotStatus, apply func(*Slot)) (State, error) {
	slot, err := lookupSlot(state, slotID)
	if err != nil {
		return state, err
	}
	if slot.Status != expected {
		return state, ErrNotPending
	}
	apply(&slot)
	slot.Prior = nil
	return withSlot(state, slot), nil
}

// withSlot returns state with slot replaced, leaving the input map untouched.
func withSlot(state State, slot Slot) State {
	slots := make(map[int]Slot, len(state.Slots))
	for id, each := range state.Slots {
		slots[id] = each
	}
	slots[slot.ID] = slot
	state.Slots = slots
	return state
}
