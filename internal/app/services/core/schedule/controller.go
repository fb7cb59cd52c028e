package schedule

import (
	"context"
	"fmt"
	"interview-scheduler/internal/app/contracts"
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Outcome is delivered once per BookOrUpdate or Cancel when the remote call
// has settled and the slot has been committed or rolled back.
type Outcome struct {
	SlotID int
	Status SlotStatus
	// Err is a *SettleError when the call failed.
	Err error
}

// Controller owns the in-memory schedule of one session. Intents run through
// Reduce under a mutex; remote calls run outside it and settle on their own
// goroutine.
type Controller struct {
	DataService contracts.ScheduleDataService
	CallTimeout time.Duration
	Log         *zap.Logger

	mu    sync.Mutex
	state State

	// notifyMu keeps subscriber deliveries in transition order.
	notifyMu    sync.Mutex
	subscribers map[int]func(View)
	nextSubID   int

	inFlight sync.WaitGroup
}

func NewController(dataService contracts.ScheduleDataService, callTimeout time.Duration, logger *zap.Logger) *Controller {
	return &Controller{
		DataService: dataService,
		CallTimeout: callTimeout,
		Log:         logger,
		subscribers: make(map[int]func(View)),
	}
}

// Load fetches the schedule once and selects Monday, or the first day when
// there is no Monday.
func (c *Controller) Load(ctx context.Context) error {
	c.Log.Info("Controller.Load called")

	schedule, err := c.DataService.LoadSchedule(ctx)
	if err != nil {
		c.Log.Error("Controller.Load error loading schedule", zap.Error(err))
		return fmt.Errorf("load schedule: %w", err)
	}

	err = c.dispatch(SetApplicationData{Schedule: schedule})
	if err != nil {
		c.Log.Error("Controller.Load error applying schedule", zap.Error(err))
		return err
	}

	c.Log.Info("Controller.Load succeeded",
		zap.Int("day_count", len(schedule.Days)),
		zap.Int("appointment_count", len(schedule.Appointments)),
	)
	return nil
}

func (c *Controller) SelectDay(day string) error {
	err := c.dispatch(SetDay{Day: day})
	if err != nil {
		c.Log.Debug("Controller.SelectDay rejected",
			zap.String(constvars.LoggingDayKey, day),
			zap.Error(err),
		)
	}
	return err
}

// BookOrUpdate books an empty slot or replaces the interview of a booked one.
// The interview is visible on the slot as soon as this returns; the channel
// yields the settled outcome.
func (c *Controller) BookOrUpdate(ctx context.Context, slotID int, interview models.Interview) (<-chan Outcome, error) {
	c.Log.Info("Controller.BookOrUpdate called",
		zap.Int(constvars.LoggingAppointmentIDKey, slotID),
		zap.Int(constvars.LoggingInterviewerIDKey, interview.Interviewer),
	)

	err := c.dispatch(BeginSave{SlotID: slotID, Interview: interview})
	if err != nil {
		c.Log.Warn("Controller.BookOrUpdate rejected",
			zap.Int(constvars.LoggingAppointmentIDKey, slotID),
			zap.Error(err),
		)
		return nil, err
	}

	return c.run(ctx, slotID, SaveFailed, func(callCtx context.Context) error {
		return c.DataService.SaveInterview(callCtx, slotID, interview)
	}), nil
}

// Cancel removes the interview of a booked slot once the remote delete
// succeeds.
func (c *Controller) Cancel(ctx context.Context, slotID int) (<-chan Outcome, error) {
	c.Log.Info("Controller.Cancel called",
		zap.Int(constvars.LoggingAppointmentIDKey, slotID),
	)

	err := c.dispatch(BeginDelete{SlotID: slotID})
	if err != nil {
		c.Log.Warn("Controller.Cancel rejected",
			zap.Int(constvars.LoggingAppointmentIDKey, slotID),
			zap.Error(err),
		)
		return nil, err
	}

	return c.run(ctx, slotID, DeleteFailed, func(callCtx context.Context) error {
		return c.DataService.DeleteInterview(callCtx, slotID)
	}), nil
}

func (c *Controller) Dismiss(slotID int) error {
	return c.dispatch(DismissError{SlotID: slotID})
}

func (c *Controller) SpotsRemaining(day string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.SpotsRemaining(day)
}

// Snapshot returns a deep copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return BuildView(c.state)
}

// Subscribe registers fn to receive the view after every transition. fn runs
// on the goroutine that made the transition. It may call the read methods but
// must not call intent methods synchronously.
func (c *Controller) Subscribe(fn func(View)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Wait blocks until every in-flight call has settled.
func (c *Controller) Wait() {
	c.inFlight.Wait()
}

func (c *Controller) run(ctx context.Context, slotID int, kind FailureKind, call func(context.Context) error) <-chan Outcome {
	done := make(chan Outcome, 1)
	c.inFlight.Add(1)

	go func() {
		defer c.inFlight.Done()
		defer close(done)

		// The caller giving up does not abandon the call; only the timeout does.
		callCtx, cancel := c.callContext(ctx)
		defer cancel()

		start := time.Now()
		err := call(callCtx)
		if err == nil {
			c.apply(commitFor(kind, slotID))
			c.Log.Info("Controller.run call settled",
				zap.Int(constvars.LoggingAppointmentIDKey, slotID),
				zap.String(constvars.LoggingSlotStatusKey, string(StatusIdle)),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			)
			done <- Outcome{SlotID: slotID, Status: StatusIdle}
			return
		}

		c.apply(failFor(kind, slotID))
		c.Log.Error("Controller.run call failed",
			zap.Int(constvars.LoggingAppointmentIDKey, slotID),
			zap.String(constvars.LoggingSlotStatusKey, string(StatusError)),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		done <- Outcome{
			SlotID: slotID,
			Status: StatusError,
			Err:    &SettleError{Kind: kind, SlotID: slotID, Cause: err},
		}
	}()

	return done
}

func (c *Controller) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if c.CallTimeout > 0 {
		return context.WithTimeout(detached, c.CallTimeout)
	}
	return context.WithCancel(detached)
}

// apply dispatches a settling action. The slot is pending and only this
// goroutine may settle it, so a failure here means the state was replaced.
func (c *Controller) apply(action Action) {
	err := c.dispatch(action)
	if err != nil {
		c.Log.Error("Controller.apply error settling slot",
			zap.String("action", fmt.Sprintf("%T", action)),
			zap.Error(err),
		)
	}
}

// dispatch takes notifyMu before mu so a delivery never waits on mu. A
// subscriber may read through View, Snapshot or SpotsRemaining while the
// next transition queues behind it.
func (c *Controller) dispatch(action Action) error {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	next, err := Reduce(c.state, action)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.state = next

	if len(c.subscribers) == 0 {
		c.mu.Unlock()
		return nil
	}
	view := BuildView(next)
	subscribers := make([]func(View), 0, len(c.subscribers))
	for id := 0; id < c.nextSubID; id++ {
		if fn, ok := c.subscribers[id]; ok {
			subscribers = append(subscribers, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(view)
	}
	return nil
}

func commitFor(kind FailureKind, slotID int) Action {
	if kind == DeleteFailed {
		return CommitDelete{SlotID: slotID}
	}
	return CommitSave{SlotID: slotID}
}

func failFor(kind FailureKind, slotID int) Action {
	if kind == DeleteFailed {
		return FailDelete{SlotID: slotID}
	}
	return FailSave{SlotID: slotID}
}
