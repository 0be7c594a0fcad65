// Package form manages draft records for the portal's create/edit
// dialogs: field-keyed validation and transformation into the exact
// payload shape the backend expects.
package form

import (
	"sort"
	"strconv"
	"strings"

	"github.com/2k1998/bwc-portal/internal/core"
)

// Errors maps field names to validation messages. Every violated rule is
// reported, not just the first encountered.
type Errors map[string]string

// OK reports whether validation passed.
func (e Errors) OK() bool {
	return len(e) == 0
}

// Join renders all messages as one line, sorted by field so the output
// is stable.
func (e Errors) Join() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// ProjectDraft is the in-memory, not-yet-submitted version of a project.
// Text inputs stay raw strings until submission; dates are parsed at
// load so the form can render and edit them as date values.
type ProjectDraft struct {
	ID int64 // 0 in create mode

	Name             string
	Description      string
	Type             string
	Status           string
	CompanyID        string
	ProjectManagerID string
	StoreLocation    string
	StoreAddress     string

	StartDate              core.Date
	ExpectedCompletionDate core.Date
	ActualCompletionDate   core.Date

	EstimatedBudget string
	ActualCost      string

	ProgressPercentage int
	Notes              string
}

// NewProjectDraft returns an empty draft for create mode.
func NewProjectDraft() ProjectDraft {
	return ProjectDraft{Status: string(core.StatusPlanning)}
}

// DraftFromProject pre-populates a draft from an existing record for
// edit mode, converting stored dates into date values.
func DraftFromProject(p core.Project) ProjectDraft {
	d := ProjectDraft{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Type:               string(p.Type),
		Status:             string(p.Status),
		CompanyID:          strconv.FormatInt(p.CompanyID, 10),
		StoreLocation:      p.StoreLocation,
		StoreAddress:       p.StoreAddress,
		ProgressPercentage: p.ProgressPercentage,
		Notes:              p.Notes,
	}
	if p.ProjectManagerID != nil {
		d.ProjectManagerID = strconv.FormatInt(*p.ProjectManagerID, 10)
	}
	if p.StartDate != nil {
		d.StartDate = *p.StartDate
	}
	if p.ExpectedCompletionDate != nil {
		d.ExpectedCompletionDate = *p.ExpectedCompletionDate
	}
	if p.ActualCompletionDate != nil {
		d.ActualCompletionDate = *p.ActualCompletionDate
	}
	if p.EstimatedBudget != nil {
		d.EstimatedBudget = p.EstimatedBudget.Decimal()
	}
	if p.ActualCost != nil {
		d.ActualCost = p.ActualCost.Decimal()
	}
	return d
}

// Validate checks every rule and returns all violations keyed by field.
// A non-empty result blocks submission.
func (d ProjectDraft) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "name is required"
	}

	if company := strings.TrimSpace(d.CompanyID); company == "" {
		errs["company_id"] = "company is required"
	} else if id, err := strconv.ParseInt(company, 10, 64); err != nil || id < 1 {
		errs["company_id"] = "company must be a valid selection"
	}

	if !core.ProjectType(strings.TrimSpace(d.Type)).Valid() {
		errs["project_type"] = "project type is required"
	}

	if d.Status != "" && !core.ProjectStatus(d.Status).Valid() {
		errs["status"] = "unknown project status"
	}

	if mgr := strings.TrimSpace(d.ProjectManagerID); mgr != "" {
		if id, err := strconv.ParseInt(mgr, 10, 64); err != nil || id < 1 {
			errs["project_manager_id"] = "project manager must be a valid selection"
		}
	}

	if !core.ValidProgress(d.ProgressPercentage) {
		errs["progress_percentage"] = "progress must be between 0 and 100"
	}

	validateAmount(errs, "estimated_budget", d.EstimatedBudget)
	validateAmount(errs, "actual_cost", d.ActualCost)

	return errs
}

func validateAmount(errs Errors, field, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	if _, err := core.ParseAmountToCents(raw); err != nil {
		errs[field] = "must be a non-negative amount"
	}
}

// Payload builds the submission body. The wire contract is asymmetric on
// purpose: date fields are always present, null when unset, while every
// other empty optional field is removed entirely. Callers must have run
// Validate first; Payload assumes a valid draft.
func (d ProjectDraft) Payload() map[string]any {
	payload := map[string]any{
		"name":                strings.TrimSpace(d.Name),
		"progress_percentage": d.ProgressPercentage,
	}

	companyID, _ := strconv.ParseInt(strings.TrimSpace(d.CompanyID), 10, 64)
	payload["company_id"] = companyID
	payload["project_type"] = strings.TrimSpace(d.Type)

	setOptional(payload, "status", d.Status)
	setOptional(payload, "description", d.Description)
	setOptional(payload, "store_location", d.StoreLocation)
	setOptional(payload, "store_address", d.StoreAddress)
	setOptional(payload, "notes", d.Notes)

	if mgr := strings.TrimSpace(d.ProjectManagerID); mgr != "" {
		id, _ := strconv.ParseInt(mgr, 10, 64)
		payload["project_manager_id"] = id
	}

	payload["start_date"] = dateOrNull(d.StartDate)
	payload["expected_completion_date"] = dateOrNull(d.ExpectedCompletionDate)
	payload["actual_completion_date"] = dateOrNull(d.ActualCompletionDate)

	if raw := strings.TrimSpace(d.EstimatedBudget); raw != "" {
		cents, _ := core.ParseAmountToCents(raw)
		payload["estimated_budget"] = core.Money{Cents: cents}
	}
	if raw := strings.TrimSpace(d.ActualCost); raw != "" {
		cents, _ := core.ParseAmountToCents(raw)
		payload["actual_cost"] = core.Money{Cents: cents}
	}

	return payload
}

func setOptional(payload map[string]any, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		payload[key] = v
	}
}

// dateOrNull keeps absent dates as explicit nulls rather than dropping
// the key; the backend distinguishes "clear this date" from "unchanged".
func dateOrNull(d core.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.ISO()
}
