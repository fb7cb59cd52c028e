package seed

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFS(days, appointments, interviewers string) fstest.MapFS {
	return fstest.MapFS{
		DaysFileName:         {Data: []byte(days)},
		AppointmentsFileName: {Data: []byte(appointments)},
		InterviewersFileName: {Data: []byte(interviewers)},
	}
}

const (
	validDays = `id,name,appointments,interviewers
2,Tuesday,3 4,3 4
1,Monday,1 2,1 2
`
	validAppointments = `id,time,student,interviewer
1,12pm,,
2,1pm,Archie Cohen,2
3,2pm,,
4,3pm,Leopold Silvers,4
`
	validInterviewers = `id,name,avatar
1,Sylvia Palmer,https://i.imgur.com/LpaY82x.png
2,Tori Malcolm,https://i.imgur.com/Nmx0Qxo.png
3,Mildred Nazir,https://i.imgur.com/T2WwVfS.png
4,Cohana Roy,https://i.imgur.com/FK8V841.jpg
`
)

func TestCSVSeedSource_LoadSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads a consistent schedule", func(t *testing.T) {
		source := NewCSVSeedSourceFS(seedFS(validDays, validAppointments, validInterviewers))

		schedule, err := source.LoadSeed(ctx)
		require.NoError(t, err)

		require.Len(t, schedule.Days, 2)
		assert.Equal(t, "Monday", schedule.Days[0].Name)
		assert.Equal(t, []int{1, 2}, schedule.Days[0].Appointments)
		assert.Equal(t, []int{3, 4}, schedule.Days[1].Interviewers)
		assert.Nil(t, schedule.Appointments[1].Interview)
		assert.Equal(t, "Archie Cohen", schedule.Appointments[2].Interview.Student)
		assert.Equal(t, 4, schedule.Appointments[4].Interview.Interviewer)
		assert.Len(t, schedule.Interviewers, 4)
		assert.Equal(t, 1, schedule.Days[0].CountSpots(schedule.Appointments))
	})

	t.Run("Rejects a day pointing at an unknown appointment", func(t *testing.T) {
		days := "id,name,appointments,interviewers\n1,Monday,1 9,1\n"
		source := NewCSVSeedSourceFS(seedFS(days, validAppointments, validInterviewers))

		_, err := source.LoadSeed(ctx)
		assert.ErrorContains(t, err, "unknown appointment 9")
	})

	t.Run("Rejects an appointment shared by two days", func(t *testing.T) {
		days := "id,name,appointments,interviewers\n1,Monday,1 2,1\n2,Tuesday,2 3,1\n"
		source := NewCSVSeedSourceFS(seedFS(days, validAppointments, validInterviewers))

		_, err := source.LoadSeed(ctx)
		assert.ErrorContains(t, err, "appointment 2 belongs to both")
	})

	t.Run("Rejects a booking with an unknown interviewer", func(t *testing.T) {
		appointments := "id,time,student,interviewer\n1,12pm,Archie Cohen,42\n"
		source := NewCSVSeedSourceFS(seedFS(validDays, appointments, validInterviewers))

		_, err := source.LoadSeed(ctx)
		assert.ErrorContains(t, err, "unknown interviewer 42")
	})

	t.Run("Fails when a file is missing", func(t *testing.T) {
		fsys := seedFS(validDays, validAppointments, validInterviewers)
		delete(fsys, InterviewersFileName)

		_, err := NewCSVSeedSourceFS(fsys).LoadSeed(ctx)
		assert.ErrorContains(t, err, InterviewersFileName)
	})
}
