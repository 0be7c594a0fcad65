package form

import (
	"testing"

	"github.com/2k1998/bwc-portal/internal/core"
)

func validDraft() ProjectDraft {
	d := NewProjectDraft()
	d.Name = "Store A"
	d.CompanyID = "5"
	d.Type = "new_store"
	d.ProgressPercentage = 50
	return d
}

func TestValidateMissingNameOnly(t *testing.T) {
	d := validDraft()
	d.Name = ""

	errs := d.Validate()

	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one error", errs)
	}
	if _, ok := errs["name"]; !ok {
		t.Errorf("Validate() = %v, want error on name", errs)
	}
	if errs.OK() {
		t.Error("submission must be blocked on validation failure")
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	d := ProjectDraft{
		Name:               "Store A",
		CompanyID:          "",
		Type:               "",
		ProgressPercentage: 150,
	}

	errs := d.Validate()

	if len(errs) != 3 {
		t.Fatalf("Validate() = %v, want exactly three errors", errs)
	}
	for _, field := range []string{"company_id", "project_type", "progress_percentage"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("Validate() missing error on %s: %v", field, errs)
		}
	}
}

func TestValidateAmounts(t *testing.T) {
	tests := []struct {
		name      string
		budget    string
		wantError bool
	}{
		{name: "empty is fine", budget: "", wantError: false},
		{name: "positive is fine", budget: "1500.00", wantError: false},
		{name: "zero is fine", budget: "0", wantError: false},
		{name: "negative rejected", budget: "-10", wantError: true},
		{name: "garbage rejected", budget: "lots", wantError: true},
		{name: "bare separator rejected", budget: ".", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			d.EstimatedBudget = tt.budget
			_, got := d.Validate()["estimated_budget"]
			if got != tt.wantError {
				t.Errorf("estimated_budget %q: error = %v, want %v", tt.budget, got, tt.wantError)
			}
		})
	}
}

func TestPayloadDateNullAsymmetry(t *testing.T) {
	d := validDraft()
	d.StartDate = core.NewDate(2025, 2, 1)
	// Expected/actual completion left unset, description left empty.

	payload := d.Payload()

	if got := payload["start_date"]; got != "2025-02-01" {
		t.Errorf("start_date = %v, want \"2025-02-01\"", got)
	}
	// Unset dates stay present as explicit nulls.
	for _, key := range []string{"expected_completion_date", "actual_completion_date"} {
		v, present := payload[key]
		if !present {
			t.Errorf("%s must be present even when unset", key)
		}
		if v != nil {
			t.Errorf("%s = %v, want nil", key, v)
		}
	}
	// Every other empty optional field is removed entirely.
	for _, key := range []string{"description", "notes", "store_location", "store_address", "project_manager_id", "estimated_budget", "actual_cost"} {
		if _, present := payload[key]; present {
			t.Errorf("empty optional %s must be dropped from the payload", key)
		}
	}
}

func TestPayloadIncludesSetOptionals(t *testing.T) {
	d := validDraft()
	d.Description = "flagship rebuild"
	d.ProjectManagerID = "9"
	d.EstimatedBudget = "2500,50"

	payload := d.Payload()

	if payload["description"] != "flagship rebuild" {
		t.Errorf("description = %v", payload["description"])
	}
	if payload["project_manager_id"] != int64(9) {
		t.Errorf("project_manager_id = %v, want 9", payload["project_manager_id"])
	}
	if m, ok := payload["estimated_budget"].(core.Money); !ok || m.Cents != 250050 {
		t.Errorf("estimated_budget = %v, want 250050 cents", payload["estimated_budget"])
	}
	if payload["company_id"] != int64(5) {
		t.Errorf("company_id = %v, want 5", payload["company_id"])
	}
}

func TestDraftFromProjectRoundTrip(t *testing.T) {
	mgr := int64(4)
	start := core.NewDate(2024, 11, 3)
	budget := core.Money{Cents: 990000}
	p := core.Project{
		ID:                 12,
		Name:               "Mall kiosk",
		Type:               core.ProjectRenovation,
		Status:             core.StatusInProgress,
		CompanyID:          3,
		ProjectManagerID:   &mgr,
		StartDate:          &start,
		EstimatedBudget:    &budget,
		ProgressPercentage: 40,
	}

	d := DraftFromProject(p)

	if d.ID != 12 || d.Name != "Mall kiosk" || d.CompanyID != "3" {
		t.Errorf("draft = %+v", d)
	}
	if d.ProjectManagerID != "4" {
		t.Errorf("ProjectManagerID = %q, want 4", d.ProjectManagerID)
	}
	if d.StartDate.ISO() != "2024-11-03" {
		t.Errorf("StartDate = %s", d.StartDate.ISO())
	}
	if d.EstimatedBudget != "9900.00" {
		t.Errorf("EstimatedBudget = %q, want 9900.00", d.EstimatedBudget)
	}
	if errs := d.Validate(); !errs.OK() {
		t.Errorf("draft from a stored project should validate, got %v", errs)
	}
}

func TestStatusUpdateDraft(t *testing.T) {
	d := StatusUpdateDraft{ProjectID: 1, Status: "bogus", ProgressPercentage: -5}
	errs := d.Validate()
	if len(errs) != 2 {
		t.Fatalf("Validate() = %v, want two errors", errs)
	}

	d = StatusUpdateFor(core.Project{ID: 7, Status: core.StatusOnHold, ProgressPercentage: 60})
	if errs := d.Validate(); !errs.OK() {
		t.Fatalf("pre-filled draft should validate, got %v", errs)
	}
	d.Notes = "waiting on permits"
	payload := d.Payload()
	if payload["status"] != "on_hold" || payload["progress_percentage"] != 60 {
		t.Errorf("payload = %v", payload)
	}
	if payload["notes"] != "waiting on permits" {
		t.Errorf("notes = %v", payload["notes"])
	}
}
