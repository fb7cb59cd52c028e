package main

import (
	"fmt"
	"interview-scheduler/internal/app/services/core/schedule"
	"io"
	"text/tabwriter"
)

func renderDays(w io.Writer, view schedule.View) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, day := range view.Days {
		marker := " "
		if day.Selected {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s %s\t%s\n", marker, day.Name, day.SpotsLabel())
	}
	tw.Flush()
}

func renderSlots(w io.Writer, view schedule.View) {
	renderDayLine(w, view)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, slot := range view.Slots {
		writeSlotRow(tw, slot)
	}
	tw.Flush()
}

func renderSlot(w io.Writer, slot schedule.SlotView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	writeSlotRow(tw, slot)
	tw.Flush()
}

func renderDayLine(w io.Writer, view schedule.View) {
	for _, day := range view.Days {
		if day.Selected {
			fmt.Fprintf(w, "%s: %s\n", day.Name, day.SpotsLabel())
			return
		}
	}
}

func writeSlotRow(w io.Writer, slot schedule.SlotView) {
	booking := "(empty)"
	if slot.Interview != nil {
		interviewer := "unknown interviewer"
		if slot.Interviewer != nil {
			interviewer = slot.Interviewer.Name
		}
		booking = fmt.Sprintf("%s with %s", slot.Interview.Student, interviewer)
	}

	fmt.Fprintf(w, "#%d\t%s\t%s", slot.ID, slot.Time, booking)
	if label := slot.StatusLabel(); label != "" {
		fmt.Fprintf(w, "\t[%s]", label)
	}
	fmt.Fprintln(w)
}
