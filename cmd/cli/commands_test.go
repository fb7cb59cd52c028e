package main

import (
	"bytes"
	"context"
	"errors"
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/app/services/core/schedule"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDataService struct {
	mu       sync.Mutex
	loadErr  error
	saveErr  error
	saved    map[int]models.Interview
	deleted  []int
	schedule func() *models.Schedule
}

func newFakeDataService() *fakeDataService {
	return &fakeDataService{
		saved: map[int]models.Interview{},
		schedule: func() *models.Schedule {
			return &models.Schedule{
				Days: []models.Day{
					{ID: 1, Name: "Monday", Appointments: []int{1, 2}, Interviewers: []int{1, 2}},
					{ID: 2, Name: "Tuesday", Appointments: []int{3, 4}, Interviewers: []int{1}},
				},
				Appointments: map[int]models.Appointment{
					1: {ID: 1, Time: "12pm"},
					2: {ID: 2, Time: "1pm", Interview: &models.Interview{Student: "Archie Cohen", Interviewer: 2}},
					3: {ID: 3, Time: "12pm"},
					4: {ID: 4, Time: "1pm"},
				},
				Interviewers: map[int]models.Interviewer{
					1: {ID: 1, Name: "Sylvia Palmer", Avatar: "https://i.imgur.com/LpaY82x.png"},
					2: {ID: 2, Name: "Tori Malcolm", Avatar: "https://i.imgur.com/Nmx0Qxo.png"},
				},
			}
		},
	}
}

func (f *fakeDataService) LoadSchedule(ctx context.Context) (*models.Schedule, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.schedule(), nil
}

func (f *fakeDataService) SaveInterview(ctx context.Context, appointmentID int, interview models.Interview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved[appointmentID] = interview
	return nil
}

func (f *fakeDataService) DeleteInterview(ctx context.Context, appointmentID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, appointmentID)
	return nil
}

func execute(t *testing.T, dataService *fakeDataService, args ...string) (string, error) {
	t.Helper()

	previous := newController
	newController = func(baseURL string, callTimeout time.Duration, log *zap.Logger) *schedule.Controller {
		return schedule.NewController(dataService, callTimeout, log)
	}
	t.Cleanup(func() { newController = previous })

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestDaysCommand(t *testing.T) {
	out, err := execute(t, newFakeDataService(), "days")
	require.NoError(t, err)

	assert.Contains(t, out, "* Monday")
	assert.Contains(t, out, "1 spot remaining")
	assert.Contains(t, out, "Tuesday")
	assert.Contains(t, out, "2 spots remaining")
}

func TestDaysCommand_LoadFailure(t *testing.T) {
	dataService := newFakeDataService()
	dataService.loadErr = errors.New("connection refused")

	_, err := execute(t, dataService, "days")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load schedule")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestShowCommand(t *testing.T) {
	t.Run("Default day", func(t *testing.T) {
		out, err := execute(t, newFakeDataService(), "show")
		require.NoError(t, err)

		assert.Contains(t, out, "Monday: 1 spot remaining")
		assert.Contains(t, out, "#1")
		assert.Contains(t, out, "(empty)")
		assert.Contains(t, out, "Archie Cohen with Tori Malcolm")
	})

	t.Run("Named day", func(t *testing.T) {
		out, err := execute(t, newFakeDataService(), "show", "Tuesday")
		require.NoError(t, err)

		assert.Contains(t, out, "Tuesday: 2 spots remaining")
		assert.Contains(t, out, "#3")
		assert.NotContains(t, out, "Archie Cohen")
	})

	t.Run("Unknown day", func(t *testing.T) {
		_, err := execute(t, newFakeDataService(), "show", "Sunday")
		require.Error(t, err)
		assert.ErrorIs(t, err, schedule.ErrUnknownDay)
	})
}

func TestBookCommand(t *testing.T) {
	t.Run("Books an empty slot", func(t *testing.T) {
		dataService := newFakeDataService()

		out, err := execute(t, dataService, "book", "1", "Lydia Miller-Jones", "1")
		require.NoError(t, err)

		assert.Contains(t, out, "Saving...")
		assert.Contains(t, out, "Lydia Miller-Jones with Sylvia Palmer")
		assert.Contains(t, out, "Monday: no spots remaining")
		assert.Equal(t, models.Interview{Student: "Lydia Miller-Jones", Interviewer: 1}, dataService.saved[1])
	})

	t.Run("Edits a booked slot without changing spots", func(t *testing.T) {
		out, err := execute(t, newFakeDataService(), "book", "2", "Archie Cohen", "1")
		require.NoError(t, err)

		assert.Contains(t, out, "Archie Cohen with Sylvia Palmer")
		assert.Contains(t, out, "Monday: 1 spot remaining")
	})

	t.Run("Slot on another day", func(t *testing.T) {
		out, err := execute(t, newFakeDataService(), "book", "3", "Jamal Jordan", "1")
		require.NoError(t, err)

		assert.Contains(t, out, "Tuesday: 1 spot remaining")
	})

	t.Run("Save failure rolls back", func(t *testing.T) {
		dataService := newFakeDataService()
		dataService.saveErr = errors.New("status 500")

		out, err := execute(t, dataService, "book", "1", "Lydia Miller-Jones", "1")
		require.Error(t, err)

		var settleErr *schedule.SettleError
		require.ErrorAs(t, err, &settleErr)
		assert.Equal(t, schedule.SaveFailed, settleErr.Kind)
		assert.Contains(t, out, "Saving...")
		assert.Contains(t, out, "Could not book appointment.")
		assert.Empty(t, dataService.saved)
	})

	t.Run("Invalid slot id", func(t *testing.T) {
		_, err := execute(t, newFakeDataService(), "book", "abc", "Lydia", "1")
		assert.EqualError(t, err, `invalid slot id "abc"`)
	})

	t.Run("Unknown slot", func(t *testing.T) {
		_, err := execute(t, newFakeDataService(), "book", "99", "Lydia", "1")
		assert.ErrorIs(t, err, schedule.ErrUnknownSlot)
	})

	t.Run("Blank student", func(t *testing.T) {
		dataService := newFakeDataService()

		_, err := execute(t, dataService, "book", "1", "   ", "1")
		assert.ErrorIs(t, err, schedule.ErrBlankStudent)
		assert.Empty(t, dataService.saved)
	})
}

func TestCancelCommand(t *testing.T) {
	t.Run("Cancels a booked slot", func(t *testing.T) {
		dataService := newFakeDataService()

		out, err := execute(t, dataService, "cancel", "2")
		require.NoError(t, err)

		assert.Contains(t, out, "Deleting...")
		assert.Contains(t, out, "(empty)")
		assert.Contains(t, out, "Monday: 2 spots remaining")
		assert.Equal(t, []int{2}, dataService.deleted)
	})

	t.Run("Empty slot", func(t *testing.T) {
		dataService := newFakeDataService()

		_, err := execute(t, dataService, "cancel", "1")
		assert.ErrorIs(t, err, schedule.ErrSlotEmpty)
		assert.Empty(t, dataService.deleted)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, newFakeDataService(), "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Version: develop")
	assert.Contains(t, out, "Tag: 0.0.1-rc")
}
