package form

import (
	"strings"

	"github.com/2k1998/bwc-portal/internal/core"
)

// StatusUpdateDraft is the draft for a project status-update note:
// new status, fresh progress figure and an optional comment.
type StatusUpdateDraft struct {
	ProjectID          int64
	Status             string
	ProgressPercentage int
	Notes              string
}

// StatusUpdateFor initializes the draft from the project's current state
// so the form opens pre-filled.
func StatusUpdateFor(p core.Project) StatusUpdateDraft {
	return StatusUpdateDraft{
		ProjectID:          p.ID,
		Status:             string(p.Status),
		ProgressPercentage: p.ProgressPercentage,
	}
}

// Validate reports every violation keyed by field.
func (d StatusUpdateDraft) Validate() Errors {
	errs := Errors{}
	if !core.ProjectStatus(strings.TrimSpace(d.Status)).Valid() {
		errs["status"] = "status is required"
	}
	if !core.ValidProgress(d.ProgressPercentage) {
		errs["progress_percentage"] = "progress must be between 0 and 100"
	}
	return errs
}

// Payload builds the submission body. Notes are dropped when empty, like
// every non-date optional field.
func (d StatusUpdateDraft) Payload() map[string]any {
	payload := map[string]any{
		"status":              strings.TrimSpace(d.Status),
		"progress_percentage": d.ProgressPercentage,
	}
	setOptional(payload, "notes", d.Notes)
	return payload
}
