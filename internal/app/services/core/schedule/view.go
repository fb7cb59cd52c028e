package schedule

import (
	"fmt"
	"interview-scheduler/internal/app/models"
)

type DayView struct {
	ID       int
	Name     string
	Spots    int
	Selected bool
}

// SpotsLabel renders the remaining spots the way the day list shows them.
func (d DayView) SpotsLabel() string {
	switch d.Spots {
	case 0:
		return "no spots remaining"
	case 1:
		return "1 spot remaining"
	default:
		return fmt.Sprintf("%d spots remaining", d.Spots)
	}
}

type SlotView struct {
	ID           int
	Time         string
	Status       SlotStatus
	Interview    *models.Interview
	Interviewer  *models.Interviewer
	ErrorMessage string
}

// StatusLabel is the transient indicator shown while a call is in flight.
func (s SlotView) StatusLabel() string {
	switch s.Status {
	case StatusSaving:
		return "Saving"
	case StatusDeleting:
		return "Deleting"
	case StatusError:
		return s.ErrorMessage
	default:
		return ""
	}
}

// View is what the rendering surface receives: the day list with derived
// spots plus the slots and interviewers of the selected day.
type View struct {
	Day          string
	Days         []DayView
	Slots        []SlotView
	Interviewers []models.Interviewer
}

func BuildView(state State) View {
	view := View{Day: state.Day}
	if !state.Loaded() {
		return view
	}

	for _, day := range state.Days {
		spots, _ := state.SpotsRemaining(day.Name)
		view.Days = append(view.Days, DayView{
			ID:       day.ID,
			Name:     day.Name,
			Spots:    spots,
			Selected: day.Name == state.Day,
		})
	}

	selected, ok := state.findDay(state.Day)
	if !ok {
		return view
	}
	for _, id := range selected.Appointments {
		slot, ok := state.Slots[id]
		if !ok {
			continue
		}
		slotView := SlotView{
			ID:           slot.ID,
			Time:         slot.Time,
			Status:       slot.Status,
			Interview:    slot.Interview.Clone(),
			ErrorMessage: slot.ErrorMessage,
		}
		if slot.Interview != nil {
			if interviewer, ok := state.Interviewers[slot.Interview.Interviewer]; ok {
				slotView.Interviewer = &interviewer
			}
		}
		view.Slots = append(view.Slots, slotView)
	}
	for _, id := range selected.Interviewers {
		if interviewer, ok := state.Interviewers[id]; ok {
			view.Interviewers = append(view.Interviewers, interviewer)
		}
	}
	return view
}
