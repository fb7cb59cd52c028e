package schedule

import (
	"interview-scheduler/internal/app/models"
)

// newFixtureSchedule mirrors a two day week: Monday has one free slot and
// Tuesday has one free slot.
func newFixtureSchedule() *models.Schedule {
	return &models.Schedule{
		Days: []models.Day{
			{ID: 1, Name: "Monday", Appointments: []int{1, 2}, Interviewers: []int{1, 2}},
			{ID: 2, Name: "Tuesday", Appointments: []int{3, 4}, Interviewers: []int{3, 4}},
		},
		Appointments: map[int]models.Appointment{
			1: {ID: 1, Time: "12pm"},
			2: {ID: 2, Time: "1pm", Interview: &models.Interview{Student: "Archie Cohen", Interviewer: 2}},
			3: {ID: 3, Time: "2pm"},
			4: {ID: 4, Time: "3pm", Interview: &models.Interview{Student: "Leopold Silvers", Interviewer: 4}},
		},
		Interviewers: map[int]models.Interviewer{
			1: {ID: 1, Name: "Sylvia Palmer", Avatar: "https://i.imgur.com/LpaY82x.png"},
			2: {ID: 2, Name: "Tori Malcolm", Avatar: "https://i.imgur.com/Nmx0Qxo.png"},
			3: {ID: 3, Name: "Mildred Nazir", Avatar: "https://i.imgur.com/T2WwVfS.png"},
			4: {ID: 4, Name: "Cohana Roy", Avatar: "https://i.imgur.com/FK8V841.jpg"},
		},
	}
}
