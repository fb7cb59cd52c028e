package schedulerapi

import (
	"bytes"
	"context"
	"fmt"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/pkg/constvars"
	"interview-scheduler/internal/pkg/dto/requests"
	"interview-scheduler/internal/pkg/dto/responses"
	"interview-scheduler/internal/pkg/exceptions"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type schedulerAPIClient struct {
	BaseUrl string
	Client  *http.Client
	Log     *zap.Logger
}

// NewSchedulerAPIClient returns the HTTP data service used by the appointment
// state controller. baseUrl includes the endpoint prefix and version, e.g.
// http://localhost:8001/api/v1.
func NewSchedulerAPIClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.ScheduleDataService {
	return &schedulerAPIClient{
		BaseUrl: strings.TrimRight(baseUrl, "/"),
		Client:  &http.Client{Timeout: timeout},
		Log:     logger,
	}
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// LoadSchedule fetches days, appointments and interviewers concurrently and
// fails as a whole if any of the three requests fails.
func (c *schedulerAPIClient) LoadSchedule(ctx context.Context) (*models.Schedule, error) {
	var (
		days         []responses.Day
		appointments map[int]responses.Appointment
		interviewers map[int]responses.Interviewer
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		days, err = getData[[]responses.Day](groupCtx, c, constvars.ResourceDays)
		return err
	})
	group.Go(func() (err error) {
		appointments, err = getData[map[int]responses.Appointment](groupCtx, c, constvars.ResourceAppointments)
		return err
	})
	group.Go(func() (err error) {
		interviewers, err = getData[map[int]responses.Interviewer](groupCtx, c, constvars.ResourceInterviewers)
		return err
	})
	err := group.Wait()
	if err != nil {
		c.Log.Error("schedulerAPIClient.LoadSchedule failed", zap.Error(err))
		return nil, err
	}

	schedule := &models.Schedule{
		Days:         make([]models.Day, 0, len(days)),
		Appointments: make(map[int]models.Appointment, len(appointments)),
		Interviewers: make(map[int]models.Interviewer, len(interviewers)),
	}
	for _, day := range days {
		schedule.Days = append(schedule.Days, models.Day{
			ID:           day.ID,
			Name:         day.Name,
			Appointments: day.Appointments,
			Interviewers: day.Interviewers,
		})
	}
	for id, appointment := range appointments {
		converted := models.Appointment{ID: id, Time: appointment.Time}
		if appointment.Interview != nil {
			converted.Interview = &models.Interview{
				Student:     appointment.Interview.Student,
				Interviewer: appointment.Interview.Interviewer,
			}
		}
		schedule.Appointments[id] = converted
	}
	for id, interviewer := range interviewers {
		schedule.Interviewers[id] = models.Interviewer{ID: id, Name: interviewer.Name, Avatar: interviewer.Avatar}
	}

	c.Log.Info("schedulerAPIClient.LoadSchedule succeeded",
		zap.Int("days", len(schedule.Days)),
		zap.Int("appointments", len(schedule.Appointments)),
		zap.Int("interviewers", len(schedule.Interviewers)))
	return schedule, nil
}

func (c *schedulerAPIClient) SaveInterview(ctx context.Context, appointmentID int, interview models.Interview) error {
	request := requests.BookInterview{
		Interview: &requests.Interview{
			Student:     interview.Student,
			Interviewer: interview.Interviewer,
		},
	}
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	return c.send(ctx, constvars.MethodPut, appointmentID, bytes.NewReader(requestJSON))
}

func (c *schedulerAPIClient) DeleteInterview(ctx context.Context, appointmentID int) error {
	return c.send(ctx, constvars.MethodDelete, appointmentID, nil)
}

func (c *schedulerAPIClient) send(ctx context.Context, method string, appointmentID int, body io.Reader) error {
	url := fmt.Sprintf("%s/%s/%d", c.BaseUrl, constvars.ResourceAppointments, appointmentID)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != constvars.StatusNoContent && resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrUnexpectedHTTPStatus(nil, resp.StatusCode, constvars.ResourceAppointments)
	}
	return nil
}

func getData[T any](ctx context.Context, c *schedulerAPIClient, resource string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, resource), nil)
	if err != nil {
		return zero, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return zero, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return zero, exceptions.ErrUnexpectedHTTPStatus(nil, resp.StatusCode, resource)
	}

	var result envelope[T]
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return zero, exceptions.ErrDecodeResponse(err, resource)
	}
	return result.Data, nil
}
