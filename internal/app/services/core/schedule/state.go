package schedule

import (
	"interview-scheduler/internal/app/models"
)

type SlotStatus string

const (
	StatusIdle     SlotStatus = "idle"
	StatusSaving   SlotStatus = "saving"
	StatusDeleting SlotStatus = "deleting"
	StatusError    SlotStatus = "error"
)

func (s SlotStatus) IsPending() bool {
	return s == StatusSaving || s == StatusDeleting
}

// Slot is one appointment as the controller sees it.
type Slot struct {
	ID           int
	Time         string
	Interview    *models.Interview
	Status       SlotStatus
	ErrorMessage string
	// Prior is the interview held before the pending change. It is only
	// meaningful while Status is saving or deleting.
	Prior *models.Interview
}

// State is the whole client-side schedule. Reduce never mutates a State it
// receives, so a State can be shared freely once built.
type State struct {
	Day          string
	Days         []models.Day
	Slots        map[int]Slot
	Interviewers map[int]models.Interviewer
}

func (s State) Loaded() bool {
	return s.Slots != nil
}

func (s State) findDay(name string) (models.Day, bool) {
	for _, day := range s.Days {
		if day.Name == name {
			return day, true
		}
	}
	return models.Day{}, false
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	clone := State{Day: s.Day}
	if s.Days != nil {
		clone.Days = make([]models.Day, len(s.Days))
		for i, day := range s.Days {
			day.Appointments = append([]int(nil), day.Appointments...)
			day.Interviewers = append([]int(nil), day.Interviewers...)
			clone.Days[i] = day
		}
	}
	if s.Slots != nil {
		clone.Slots = make(map[int]Slot, len(s.Slots))
		for id, slot := range s.Slots {
			slot.Interview = slot.Interview.Clone()
			slot.Prior = slot.Prior.Clone()
			clone.Slots[id] = slot
		}
	}
	if s.Interviewers != nil {
		clone.Interviewers = make(map[int]models.Interviewer, len(s.Interviewers))
		for id, interviewer := range s.Interviewers {
			clone.Interviewers[id] = interviewer
		}
	}
	return clone
}

// SpotsRemaining counts the slots of the named day that hold no interview.
func (s State) SpotsRemaining(dayName string) (int, error) {
	if !s.Loaded() {
		return 0, ErrNotLoaded
	}
	day, ok := s.findDay(dayName)
	if !ok {
		return 0, ErrUnknownDay
	}
	spots := 0
	for _, id := range day.Appointments {
		slot, ok := s.Slots[id]
		if ok && slot.Interview == nil {
			spots++
		}
	}
	return spots, nil
}
