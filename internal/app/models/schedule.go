package models

import "interview-scheduler/internal/pkg/dto/responses"

type Day struct {
	ID           int    `bson:"_id"`
	Name         string `bson:"name"`
	Appointments []int  `bson:"appointments"`
	Interviewers []int  `bson:"interviewers"`
}

type Appointment struct {
	ID        int        `bson:"_id"`
	Time      string     `bson:"time"`
	Interview *Interview `bson:"interview"`
}

type Interview struct {
	Student     string `bson:"student" validate:"required,not_blank"`
	Interviewer int    `bson:"interviewer" validate:"required,gt=0"`
}

type Interviewer struct {
	ID     int    `bson:"_id"`
	Name   string `bson:"name"`
	Avatar string `bson:"avatar"`
}

// Schedule is the full set of days, appointments and interviewers loaded at
// the start of a session.
type Schedule struct {
	Days         []Day
	Appointments map[int]Appointment
	Interviewers map[int]Interviewer
}

func (i *Interview) Clone() *Interview {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

func (a Appointment) IsBooked() bool {
	return a.Interview != nil
}

// CountSpots returns how many of the day's appointments hold no interview.
// Appointment ids unknown to the map are not counted.
func (d Day) CountSpots(appointments map[int]Appointment) int {
	spots := 0
	for _, id := range d.Appointments {
		appointment, ok := appointments[id]
		if ok && !appointment.IsBooked() {
			spots++
		}
	}
	return spots
}

func (d Day) ConvertIntoResponse(appointments map[int]Appointment) responses.Day {
	return responses.Day{
		ID:           d.ID,
		Name:         d.Name,
		Appointments: append([]int{}, d.Appointments...),
		Interviewers: append([]int{}, d.Interviewers...),
		Spots:        d.CountSpots(appointments),
	}
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	response := responses.Appointment{
		ID:   a.ID,
		Time: a.Time,
	}
	if a.Interview != nil {
		response.Interview = &responses.Interview{
			Student:     a.Interview.Student,
			Interviewer: a.Interview.Interviewer,
		}
	}
	return response
}

func (i Interviewer) ConvertIntoResponse(avatarURL string) responses.Interviewer {
	return responses.Interviewer{
		ID:     i.ID,
		Name:   i.Name,
		Avatar: avatarURL,
	}
}
