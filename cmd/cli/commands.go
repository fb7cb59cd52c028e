package main

import (
	"context"
	"errors"
	"fmt"
	"interview-scheduler/internal/app/models"
	"interview-scheduler/internal/app/services/core/schedule"
	"io"
	"strconv"
	"sync"

	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the days with their remaining spots",
	Args:  cobra.NoArgs,
	RunE:  runDays,
}

var showCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show the appointment slots of a day",
	Long: `Show the appointment slots of a day.

Without an argument the default day is shown, which is Monday when the
schedule has one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var bookCmd = &cobra.Command{
	Use:   "book <slot> <student> <interviewer>",
	Short: "Book or update the interview of a slot",
	Long: `Book an interview into an empty slot, or replace the interview of a booked
slot. The interviewer must be available on the slot's day.`,
	Args: cobra.ExactArgs(3),
	RunE: runBook,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <slot>",
	Short: "Cancel the interview of a slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runCancel,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Tag: %s\n", Tag)
	},
}

func runDays(cmd *cobra.Command, args []string) error {
	controller, err := loadController(cmd.Context())
	if err != nil {
		return err
	}

	renderDays(cmd.OutOrStdout(), controller.View())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	controller, err := loadController(cmd.Context())
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if err := controller.SelectDay(args[0]); err != nil {
			return fmt.Errorf("select %q: %w", args[0], err)
		}
	}

	renderSlots(cmd.OutOrStdout(), controller.View())
	return nil
}

func runBook(cmd *cobra.Command, args []string) error {
	slotID, err := parseID("slot", args[0])
	if err != nil {
		return err
	}
	interviewerID, err := parseID("interviewer", args[2])
	if err != nil {
		return err
	}

	controller, err := loadController(cmd.Context())
	if err != nil {
		return err
	}
	if err := selectDayOf(controller, slotID); err != nil {
		return err
	}

	unsubscribe := watchSlot(cmd.OutOrStdout(), controller, slotID)
	defer unsubscribe()

	outcome, err := controller.BookOrUpdate(cmd.Context(), slotID, models.Interview{
		Student:     args[1],
		Interviewer: interviewerID,
	})
	if err != nil {
		return fmt.Errorf("book slot %d: %w", slotID, err)
	}

	return settle(cmd.OutOrStdout(), controller, <-outcome)
}

func runCancel(cmd *cobra.Command, args []string) error {
	slotID, err := parseID("slot", args[0])
	if err != nil {
		return err
	}

	controller, err := loadController(cmd.Context())
	if err != nil {
		return err
	}
	if err := selectDayOf(controller, slotID); err != nil {
		return err
	}

	unsubscribe := watchSlot(cmd.OutOrStdout(), controller, slotID)
	defer unsubscribe()

	outcome, err := controller.Cancel(cmd.Context(), slotID)
	if err != nil {
		return fmt.Errorf("cancel slot %d: %w", slotID, err)
	}

	return settle(cmd.OutOrStdout(), controller, <-outcome)
}

func loadController(ctx context.Context) (*schedule.Controller, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	controller := newController(apiBaseURL, timeout, logger)
	if err := controller.Load(ctx); err != nil {
		return nil, err
	}
	return controller, nil
}

// selectDayOf makes the slot's day current so the view carries the slot.
func selectDayOf(controller *schedule.Controller, slotID int) error {
	for _, day := range controller.Snapshot().Days {
		for _, id := range day.Appointments {
			if id == slotID {
				return controller.SelectDay(day.Name)
			}
		}
	}
	return fmt.Errorf("slot %d: %w", slotID, schedule.ErrUnknownSlot)
}

// watchSlot prints the slot's status label each time it changes.
func watchSlot(w io.Writer, controller *schedule.Controller, slotID int) func() {
	var (
		mu   sync.Mutex
		last string
	)

	return controller.Subscribe(func(view schedule.View) {
		slot, ok := findSlot(view, slotID)
		if !ok {
			return
		}

		mu.Lock()
		defer mu.Unlock()

		label := slot.StatusLabel()
		if label == "" || label == last {
			last = label
			return
		}
		last = label
		if slot.Status.IsPending() {
			fmt.Fprintf(w, "%s...\n", label)
			return
		}
		fmt.Fprintln(w, label)
	})
}

func settle(w io.Writer, controller *schedule.Controller, outcome schedule.Outcome) error {
	if outcome.Err != nil {
		var settleErr *schedule.SettleError
		if errors.As(outcome.Err, &settleErr) {
			// The slot keeps its prior interview; clear the indicator before leaving.
			_ = controller.Dismiss(outcome.SlotID)
		}
		return outcome.Err
	}

	view := controller.View()
	slot, _ := findSlot(view, outcome.SlotID)
	renderSlot(w, slot)
	renderDayLine(w, view)
	return nil
}

func findSlot(view schedule.View, slotID int) (schedule.SlotView, bool) {
	for _, slot := range view.Slots {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return schedule.SlotView{}, false
}

func parseID(name, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", name, raw)
	}
	return id, nil
}
