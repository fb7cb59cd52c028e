package seed

import (
	"context"
	"fmt"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/pkg/exceptions"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

const (
	DaysFileName         = "days.csv"
	AppointmentsFileName = "appointments.csv"
	InterviewersFileName = "interviewers.csv"
)

type dayRow struct {
	ID           int    `csv:"id"`
	Name         string `csv:"name"`
	Appointments string `csv:"appointments"`
	Interviewers string `csv:"interviewers"`
}

type appointmentRow struct {
	ID          int    `csv:"id"`
	Time        string `csv:"time"`
	Student     string `csv:"student"`
	Interviewer string `csv:"interviewer"`
}

type interviewerRow struct {
	ID     int    `csv:"id"`
	Name   string `csv:"name"`
	Avatar string `csv:"avatar"`
}

type csvSeedSource struct {
	FS fs.FS
}

// NewCSVSeedSource reads the seed schedule from days.csv, appointments.csv
// and interviewers.csv inside directory.
func NewCSVSeedSource(directory string) contracts.SeedSource {
	return &csvSeedSource{FS: os.DirFS(directory)}
}

func NewCSVSeedSourceFS(fsys fs.FS) contracts.SeedSource {
	return &csvSeedSource{FS: fsys}
}

func (s *csvSeedSource) LoadSeed(ctx context.Context) (*models.Schedule, error) {
	var (
		days         []*dayRow
		appointments []*appointmentRow
		interviewers []*interviewerRow
	)
	if err := s.unmarshal(DaysFileName, &days); err != nil {
		return nil, err
	}
	if err := s.unmarshal(AppointmentsFileName, &appointments); err != nil {
		return nil, err
	}
	if err := s.unmarshal(InterviewersFileName, &interviewers); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		Days:         make([]models.Day, 0, len(days)),
		Appointments: make(map[int]models.Appointment, len(appointments)),
		Interviewers: make(map[int]models.Interviewer, len(interviewers)),
	}

	for _, row := range interviewers {
		schedule.Interviewers[row.ID] = models.Interviewer{ID: row.ID, Name: row.Name, Avatar: row.Avatar}
	}

	for _, row := range appointments {
		appointment := models.Appointment{ID: row.ID, Time: row.Time}
		student := strings.TrimSpace(row.Student)
		if student != "" {
			interviewerID, err := strconv.Atoi(strings.TrimSpace(row.Interviewer))
			if err != nil {
				return nil, exceptions.ErrSeedParse(err, AppointmentsFileName)
			}
			if _, ok := schedule.Interviewers[interviewerID]; !ok {
				return nil, exceptions.ErrSeedInvalid(fmt.Errorf("appointment %d references unknown interviewer %d", row.ID, interviewerID))
			}
			appointment.Interview = &models.Interview{Student: student, Interviewer: interviewerID}
		}
		schedule.Appointments[row.ID] = appointment
	}

	owner := make(map[int]string)
	for _, row := range days {
		appointmentIDs, err := parseIDList(row.Appointments)
		if err != nil {
			return nil, exceptions.ErrSeedParse(err, DaysFileName)
		}
		interviewerIDs, err := parseIDList(row.Interviewers)
		if err != nil {
			return nil, exceptions.ErrSeedParse(err, DaysFileName)
		}

		for _, id := range appointmentIDs {
			if _, ok := schedule.Appointments[id]; !ok {
				return nil, exceptions.ErrSeedInvalid(fmt.Errorf("day %s references unknown appointment %d", row.Name, id))
			}
			if previous, taken := owner[id]; taken {
				return nil, exceptions.ErrSeedInvalid(fmt.Errorf("appointment %d belongs to both %s and %s", id, previous, row.Name))
			}
			owner[id] = row.Name
		}
		for _, id := range interviewerIDs {
			if _, ok := schedule.Interviewers[id]; !ok {
				return nil, exceptions.ErrSeedInvalid(fmt.Errorf("day %s references unknown interviewer %d", row.Name, id))
			}
		}

		schedule.Days = append(schedule.Days, models.Day{
			ID:           row.ID,
			Name:         row.Name,
			Appointments: appointmentIDs,
			Interviewers: interviewerIDs,
		})
	}

	sort.Slice(schedule.Days, func(i, j int) bool {
		return schedule.Days[i].ID < schedule.Days[j].ID
	})
	return schedule, nil
}

func (s *csvSeedSource) unmarshal(fileName string, out interface{}) error {
	file, err := s.FS.Open(fileName)
	if err != nil {
		return exceptions.ErrSeedRead(err, fileName)
	}
	defer file.Close()

	err = gocsv.Unmarshal(file, out)
	if err != nil {
		return exceptions.ErrSeedParse(err, fileName)
	}
	return nil
}

// parseIDList parses a space separated id list such as "1 2 3".
func parseIDList(raw string) ([]int, error) {
	fields := strings.Fields(raw)
	ids := make([]int, 0, len(fields))
	for _, field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
