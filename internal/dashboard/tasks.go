// Package dashboard implements the read-side aggregation behind the
// portal's landing page: task categorization and payment bucketing.
// Everything here is a pure function of its inputs plus a reference
// "now"; nothing is persisted and recomputation is free.
package dashboard

import (
	"github.com/2k1998/bwc-portal/internal/core"
)

// TaskBuckets holds the two independent partitions of a task list.
//
// The status buckets are mutually exclusive and cover every task: they
// drive the workflow columns. The priority quadrants re-partition the
// same tasks by (urgency, important) for the prioritization matrix and
// exclude anything already completed. A task can therefore appear in one
// status bucket and one priority bucket at the same time.
type TaskBuckets struct {
	// Workflow partition, disjoint, union equals the input.
	New        []core.Task
	InProgress []core.Task // received + on_process
	Pending    []core.Task
	Completed  []core.Task
	LooseEnd   []core.Task

	// Priority matrix, excludes completed tasks.
	UrgentImportant []core.Task
	UrgentOnly      []core.Task
	ImportantOnly   []core.Task
	Normal          []core.Task

	// All-day deadline reminders, excludes completed tasks.
	AllDayDeadline []core.Task
}

// CategorizeTasks partitions tasks in a single pass. Empty input yields
// empty buckets, never an error.
func CategorizeTasks(tasks []core.Task) TaskBuckets {
	var b TaskBuckets
	for _, t := range tasks {
		switch {
		case t.Status == core.TaskNew:
			b.New = append(b.New, t)
		case t.Status.InProgress():
			b.InProgress = append(b.InProgress, t)
		case t.Status == core.TaskPending:
			b.Pending = append(b.Pending, t)
		case t.Status == core.TaskCompleted:
			b.Completed = append(b.Completed, t)
		default:
			// loose_end is the workflow catch-all; anything the shape
			// check let through lands here rather than vanishing.
			b.LooseEnd = append(b.LooseEnd, t)
		}

		if t.Completed {
			continue
		}
		switch {
		case t.Urgency && t.Important:
			b.UrgentImportant = append(b.UrgentImportant, t)
		case t.Urgency:
			b.UrgentOnly = append(b.UrgentOnly, t)
		case t.Important:
			b.ImportantOnly = append(b.ImportantOnly, t)
		default:
			b.Normal = append(b.Normal, t)
		}
		if t.DeadlineAllDay {
			b.AllDayDeadline = append(b.AllDayDeadline, t)
		}
	}
	return b
}
