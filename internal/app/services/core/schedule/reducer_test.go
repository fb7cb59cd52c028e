package schedule

import (
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedState(t *testing.T) State {
	t.Helper()
	state, err := Reduce(State{}, SetApplicationData{Schedule: newFixtureSchedule()})
	require.NoError(t, err)
	return state
}

func mustReduce(t *testing.T, state State, actions ...Action) State {
	t.Helper()
	for _, action := range actions {
		var err error
		state, err = Reduce(state, action)
		require.NoError(t, err, "%T", action)
	}
	return state
}

func assertSpotsDerived(t *testing.T, state State) {
	t.Helper()
	for _, day := range state.Days {
		expected := 0
		for _, id := range day.Appointments {
			if state.Slots[id].Interview == nil {
				expected++
			}
		}
		spots, err := state.SpotsRemaining(day.Name)
		require.NoError(t, err)
		assert.Equal(t, expected, spots, day.Name)
	}
}

func TestReduceSetApplicationData(t *testing.T) {
	state := loadedState(t)

	assert.Equal(t, "Monday", state.Day)
	assert.Len(t, state.Slots, 4)
	for _, slot := range state.Slots {
		assert.Equal(t, StatusIdle, slot.Status)
	}
	assertSpotsDerived(t, state)

	t.Run("Falls back to the first day without a Monday", func(t *testing.T) {
		schedule := newFixtureSchedule()
		schedule.Days = schedule.Days[1:]

		state, err := Reduce(State{}, SetApplicationData{Schedule: schedule})
		require.NoError(t, err)
		assert.Equal(t, "Tuesday", state.Day)
	})

	t.Run("Keeps the selected day on reload", func(t *testing.T) {
		tuesday := mustReduce(t, state, SetDay{Day: "Tuesday"})

		reloaded, err := Reduce(tuesday, SetApplicationData{Schedule: newFixtureSchedule()})
		require.NoError(t, err)
		assert.Equal(t, "Tuesday", reloaded.Day)
	})

	t.Run("Refuses a reload while a call is in flight", func(t *testing.T) {
		saving := mustReduce(t, state, BeginSave{SlotID: 1, Interview: models.Interview{Student: "Lydia", Interviewer: 1}})

		_, err := Reduce(saving, SetApplicationData{Schedule: newFixtureSchedule()})
		assert.ErrorIs(t, err, ErrSlotPending)
	})

	t.Run("Does not share interviews with the schedule", func(t *testing.T) {
		schedule := newFixtureSchedule()
		state, err := Reduce(State{}, SetApplicationData{Schedule: schedule})
		require.NoError(t, err)

		schedule.Appointments[2].Interview.Student = "Changed"
		assert.Equal(t, "Archie Cohen", state.Slots[2].Interview.Student)
	})
}

func TestReduceRequiresLoad(t *testing.T) {
	_, err := Reduce(State{}, BeginSave{SlotID: 1, Interview: models.Interview{Student: "Lydia", Interviewer: 1}})
	assert.ErrorIs(t, err, ErrNotLoaded)

	_, err = State{}.SpotsRemaining("Monday")
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestReduceSetDay(t *testing.T) {
	state := loadedState(t)

	next := mustReduce(t, state, SetDay{Day: "Tuesday"})
	assert.Equal(t, "Tuesday", next.Day)
	assert.Equal(t, "Monday", state.Day)

	_, err := Reduce(state, SetDay{Day: "Sunday"})
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestReduceSave(t *testing.T) {
	interview := models.Interview{Student: "Lydia Miller-Jones", Interviewer: 1}

	t.Run("Stores the interview optimistically", func(t *testing.T) {
		state := loadedState(t)
		saving := mustReduce(t, state, BeginSave{SlotID: 1, Interview: interview})

		slot := saving.Slots[1]
		assert.Equal(t, StatusSaving, slot.Status)
		assert.Equal(t, &interview, slot.Interview)
		assert.Nil(t, slot.Prior)
		spots, _ := saving.SpotsRemaining("Monday")
		assert.Equal(t, 0, spots)
		assertSpotsDerived(t, saving)
	})

	t.Run("Commit keeps the interview", func(t *testing.T) {
		state := loadedState(t)
		committed := mustReduce(t, state, BeginSave{SlotID: 1, Interview: interview}, CommitSave{SlotID: 1})

		expected := Slot{ID: 1, Time: "12pm", Interview: &interview, Status: StatusIdle}
		if diff := cmp.Diff(expected, committed.Slots[1]); diff != "" {
			t.Errorf("committed slot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Failure restores an empty slot", func(t *testing.T) {
		state := loadedState(t)
		failed := mustReduce(t, state, BeginSave{SlotID: 1, Interview: interview}, FailSave{SlotID: 1})

		expected := Slot{ID: 1, Time: "12pm", Status: StatusError, ErrorMessage: "Could not book appointment."}
		if diff := cmp.Diff(expected, failed.Slots[1]); diff != "" {
			t.Errorf("failed slot mismatch (-want +got):\n%s", diff)
		}
		assertSpotsDerived(t, failed)
	})

	t.Run("Failure restores the previous interview of an edit", func(t *testing.T) {
		state := loadedState(t)
		edit := models.Interview{Student: "Archie Andrews", Interviewer: 1}
		failed := mustReduce(t, state, BeginSave{SlotID: 2, Interview: edit}, FailSave{SlotID: 2})

		assert.Equal(t, &models.Interview{Student: "Archie Cohen", Interviewer: 2}, failed.Slots[2].Interview)
		assert.Equal(t, StatusError, failed.Slots[2].Status)
	})

	t.Run("Rejects invalid input without changing state", func(t *testing.T) {
		state := loadedState(t)
		before := state.Clone()

		_, err := Reduce(state, BeginSave{SlotID: 1, Interview: models.Interview{Student: "  ", Interviewer: 1}})
		assert.ErrorIs(t, err, ErrBlankStudent)
		_, err = Reduce(state, BeginSave{SlotID: 1, Interview: models.Interview{Student: strings.Repeat("é", constvars.MaxStudentNameLength+1), Interviewer: 1}})
		assert.ErrorIs(t, err, ErrStudentTooLong)
		_, err = Reduce(state, BeginSave{SlotID: 1, Interview: models.Interview{Student: "Lydia", Interviewer: 9}})
		assert.ErrorIs(t, err, ErrUnknownInterviewer)
		_, err = Reduce(state, BeginSave{SlotID: 99, Interview: interview})
		assert.ErrorIs(t, err, ErrUnknownSlot)

		if diff := cmp.Diff(before, state); diff != "" {
			t.Errorf("state changed (-want +got):\n%s", diff)
		}
	})

	t.Run("Accepts a name at the length limit", func(t *testing.T) {
		state := loadedState(t)
		name := strings.Repeat("é", constvars.MaxStudentNameLength)

		saving := mustReduce(t, state, BeginSave{SlotID: 1, Interview: models.Interview{Student: name, Interviewer: 1}})
		assert.Equal(t, StatusSaving, saving.Slots[1].Status)
	})

	t.Run("Rejects a second action on a pending slot", func(t *testing.T) {
		state := loadedState(t)
		saving := mustReduce(t, state, BeginSave{SlotID: 2, Interview: interview})

		_, err := Reduce(saving, BeginSave{SlotID: 2, Interview: interview})
		assert.ErrorIs(t, err, ErrSlotPending)
		_, err = Reduce(saving, BeginDelete{SlotID: 2})
		assert.ErrorIs(t, err, ErrSlotPending)
	})

	t.Run("Does not mutate the input state", func(t *testing.T) {
		state := loadedState(t)
		before := state.Clone()

		mustReduce(t, state, BeginSave{SlotID: 1, Interview: interview}, CommitSave{SlotID: 1})

		if diff := cmp.Diff(before, state); diff != "" {
			t.Errorf("input state mutated (-want +got):\n%s", diff)
		}
	})
}

func TestReduceDelete(t *testing.T) {
	archie := &models.Interview{Student: "Archie Cohen", Interviewer: 2}

	t.Run("Keeps the interview while deleting", func(t *testing.T) {
		state := loadedState(t)
		deleting := mustReduce(t, state, BeginDelete{SlotID: 2})

		assert.Equal(t, StatusDeleting, deleting.Slots[2].Status)
		assert.Equal(t, archie, deleting.Slots[2].Interview)
		assert.Equal(t, archie, deleting.Slots[2].Prior)
	})

	t.Run("Commit frees one spot", func(t *testing.T) {
		state := loadedState(t)
		before, _ := state.SpotsRemaining("Monday")
		deleted := mustReduce(t, state, BeginDelete{SlotID: 2}, CommitDelete{SlotID: 2})

		after, _ := deleted.SpotsRemaining("Monday")
		assert.Equal(t, before+1, after)
		assert.Nil(t, deleted.Slots[2].Interview)
		assert.Equal(t, StatusIdle, deleted.Slots[2].Status)
	})

	t.Run("Failure restores the interview", func(t *testing.T) {
		state := loadedState(t)
		failed := mustReduce(t, state, BeginDelete{SlotID: 2}, FailDelete{SlotID: 2})

		expected := Slot{ID: 2, Time: "1pm", Interview: archie, Status: StatusError, ErrorMessage: "Could not cancel appointment."}
		if diff := cmp.Diff(expected, failed.Slots[2]); diff != "" {
			t.Errorf("failed slot mismatch (-want +got):\n%s", diff)
		}
		spots, _ := failed.SpotsRemaining("Monday")
		assert.Equal(t, 1, spots)
	})

	t.Run("Rejects an empty slot", func(t *testing.T) {
		_, err := Reduce(loadedState(t), BeginDelete{SlotID: 1})
		assert.ErrorIs(t, err, ErrSlotEmpty)
	})

	t.Run("Rejects a settle without a matching call", func(t *testing.T) {
		state := loadedState(t)
		_, err := Reduce(state, CommitDelete{SlotID: 2})
		assert.ErrorIs(t, err, ErrNotPending)

		saving := mustReduce(t, state, BeginSave{SlotID: 1, Interview: models.Interview{Student: "Lydia", Interviewer: 1}})
		_, err = Reduce(saving, FailDelete{SlotID: 1})
		assert.ErrorIs(t, err, ErrNotPending)
	})
}

func TestReduceDismissError(t *testing.T) {
	state := loadedState(t)
	failed := mustReduce(t, state, BeginDelete{SlotID: 2}, FailDelete{SlotID: 2})

	dismissed := mustReduce(t, failed, DismissError{SlotID: 2})
	assert.Equal(t, StatusIdle, dismissed.Slots[2].Status)
	assert.Empty(t, dismissed.Slots[2].ErrorMessage)

	unchanged := mustReduce(t, state, DismissError{SlotID: 1})
	assert.Equal(t, StatusIdle, unchanged.Slots[1].Status)
}

func TestReduceEditKeepsSpots(t *testing.T) {
	state := loadedState(t)
	before, _ := state.SpotsRemaining("Monday")

	edited := mustReduce(t, state,
		BeginSave{SlotID: 2, Interview: models.Interview{Student: "Archie Andrews", Interviewer: 1}},
		CommitSave{SlotID: 2},
	)

	after, _ := edited.SpotsRemaining("Monday")
	assert.Equal(t, before, after)
	assert.Equal(t, "Archie Andrews", edited.Slots[2].Interview.Student)
}

func TestBuildView(t *testing.T) {
	state := loadedState(t)
	state = mustReduce(t, state, BeginSave{SlotID: 1, Interview: models.Interview{Student: "Lydia Miller-Jones", Interviewer: 1}})

	view := BuildView(state)
	require.Len(t, view.Days, 2)
	assert.True(t, view.Days[0].Selected)
	assert.Equal(t, "no spots remaining", view.Days[0].SpotsLabel())
	assert.Equal(t, "1 spot remaining", view.Days[1].SpotsLabel())

	require.Len(t, view.Slots, 2)
	assert.Equal(t, "Saving", view.Slots[0].StatusLabel())
	assert.Equal(t, "Sylvia Palmer", view.Slots[0].Interviewer.Name)
	assert.Equal(t, "Tori Malcolm", view.Slots[1].Interviewer.Name)
	assert.Equal(t, []models.Interviewer{state.Interviewers[1], state.Interviewers[2]}, view.Interviewers)

	tuesday := BuildView(mustReduce(t, state, SetDay{Day: "Tuesday"}))
	require.Len(t, tuesday.Slots, 2)
	assert.Equal(t, "Leopold Silvers", tuesday.Slots[1].Interview.Student)

	assert.Equal(t, "3 spots remaining", DayView{Spots: 3}.SpotsLabel())
}
