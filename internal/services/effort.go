package services

import (
	"fmt"
	"time"
)

// ComputeEffort derives the advisory time-at-sea metric from the fishing
// start/end timestamps: whole hours plus remaining minutes, e.g.
// "26 horas e 30 minutos". Returns nil when either timestamp is missing or
// the interval is not positive. Effort is advisory data and never blocks a
// submission.
func ComputeEffort(start, end *time.Time) *string {
	if start == nil || end == nil || !end.After(*start) {
		return nil
	}

	elapsed := end.Sub(*start)
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60

	s := fmt.Sprintf("%d horas e %d minutos", hours, minutes)
	return &s
}
