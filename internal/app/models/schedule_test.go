package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayCountSpots(t *testing.T) {
	appointments := map[int]Appointment{
		1: {ID: 1, Time: "12pm"},
		2: {ID: 2, Time: "1pm", Interview: &Interview{Student: "Archie Cohen", Interviewer: 2}},
		3: {ID: 3, Time: "2pm"},
	}

	t.Run("Counts Empty Appointments", func(t *testing.T) {
		day := Day{ID: 1, Name: "Monday", Appointments: []int{1, 2, 3}}
		assert.Equal(t, 2, day.CountSpots(appointments))
	})

	t.Run("Ignores Unknown Appointment IDs", func(t *testing.T) {
		day := Day{ID: 1, Name: "Monday", Appointments: []int{1, 99}}
		assert.Equal(t, 1, day.CountSpots(appointments))
	})

	t.Run("Response Carries Derived Spots", func(t *testing.T) {
		day := Day{ID: 1, Name: "Monday", Appointments: []int{1, 2, 3}, Interviewers: []int{2}}
		response := day.ConvertIntoResponse(appointments)
		assert.Equal(t, 2, response.Spots)
		assert.Equal(t, []int{1, 2, 3}, response.Appointments)
	})
}

func TestInterviewClone(t *testing.T) {
	var empty *Interview
	assert.Nil(t, empty.Clone())

	original := &Interview{Student: "Lydia Miller-Jones", Interviewer: 1}
	clone := original.Clone()
	clone.Student = "changed"
	assert.Equal(t, "Lydia Miller-Jones", original.Student, "clone must not alias the original")
}
