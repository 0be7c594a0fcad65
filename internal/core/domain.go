package core

import (
	"errors"
	"time"
)

// Task workflow statuses as delivered by the backend.
const (
	TaskNew       TaskStatus = "new"
	TaskReceived  TaskStatus = "received"
	TaskOnProcess TaskStatus = "on_process"
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
	TaskLooseEnd  TaskStatus = "loose_end"
)

// Payment statuses. Only pending payments feed dashboard totals.
const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Project types.
const (
	ProjectNewStore    ProjectType = "new_store"
	ProjectRenovation  ProjectType = "renovation"
	ProjectMaintenance ProjectType = "maintenance"
	ProjectExpansion   ProjectType = "expansion"
	ProjectOther       ProjectType = "other"
)

// Project statuses.
const (
	StatusPlanning   ProjectStatus = "planning"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusOnHold     ProjectStatus = "on_hold"
	StatusCancelled  ProjectStatus = "cancelled"
)

// User roles. Casing follows the backend verbatim.
const (
	RoleAgent   Role = "Agent"
	RolePillar  Role = "Pillar"
	RoleManager Role = "Manager"
	RoleHead    Role = "Head"
	RoleAdmin   Role = "admin"
)

type (
	TaskStatus    string
	PaymentStatus string
	ProjectType   string
	ProjectStatus string
	Role          string

	// Task is a work item assigned through the portal. Categorization is a
	// read-side derivation and is never written back.
	Task struct {
		ID             int64      `json:"id"`
		Title          string     `json:"title"`
		Status         TaskStatus `json:"status"`
		Urgency        bool       `json:"urgency"`
		Important      bool       `json:"important"`
		Deadline       *time.Time `json:"deadline,omitempty"`
		DeadlineAllDay bool       `json:"deadline_all_day"`
		Completed      bool       `json:"completed"`
	}

	// Payment is an amount owed to or by the company. Upcoming/overdue is
	// recomputed against "now" on every fetch, never stored.
	Payment struct {
		ID          int64         `json:"id"`
		Title       string        `json:"title"`
		Description string        `json:"description"`
		Amount      Money         `json:"amount"`
		Status      PaymentStatus `json:"status"`
		DueDate     time.Time     `json:"due_date"`
	}

	// Project is a store construction/renovation engagement.
	Project struct {
		ID                     int64         `json:"id"`
		Name                   string        `json:"name"`
		Description            string        `json:"description"`
		Type                   ProjectType   `json:"project_type"`
		Status                 ProjectStatus `json:"status"`
		CompanyID              int64         `json:"company_id"`
		ProjectManagerID       *int64        `json:"project_manager_id,omitempty"`
		StoreLocation          string        `json:"store_location"`
		StoreAddress           string        `json:"store_address"`
		StartDate              *Date         `json:"start_date"`
		ExpectedCompletionDate *Date         `json:"expected_completion_date"`
		ActualCompletionDate   *Date         `json:"actual_completion_date"`
		EstimatedBudget        *Money        `json:"estimated_budget,omitempty"`
		ActualCost             *Money        `json:"actual_cost,omitempty"`
		ProgressPercentage     int           `json:"progress_percentage"`
		Notes                  string        `json:"notes"`
		LastUpdate             *time.Time    `json:"last_update,omitempty"`
	}

	// User is a portal account. Role and active state change only through
	// admin actions gated by the policy package.
	User struct {
		ID        int64  `json:"id"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		Surname   string `json:"surname"`
		Role      Role   `json:"role"`
		IsActive  bool   `json:"is_active"`
	}

	// Company is a client organization projects belong to.
	Company struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidProgress = errors.New("progress out of range")
)

// Valid reports whether the status is one the backend understands.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNew, TaskReceived, TaskOnProcess, TaskPending, TaskCompleted, TaskLooseEnd:
		return true
	}
	return false
}

// InProgress reports whether the status counts toward the in-progress
// dashboard bucket (received and on_process fold together).
func (s TaskStatus) InProgress() bool {
	return s == TaskReceived || s == TaskOnProcess
}

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectNewStore, ProjectRenovation, ProjectMaintenance, ProjectExpansion, ProjectOther:
		return true
	}
	return false
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold, StatusCancelled:
		return true
	}
	return false
}

func (r Role) Valid() bool {
	switch r {
	case RoleAgent, RolePillar, RoleManager, RoleHead, RoleAdmin:
		return true
	}
	return false
}

// DisplayName renders "First Surname" for lists and assignment pickers.
func (u User) DisplayName() string {
	if u.FirstName == "" {
		return u.Surname
	}
	if u.Surname == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.Surname
}

// ValidProgress reports whether p is a legal progress percentage.
func ValidProgress(p int) bool {
	return p >= 0 && p <= 100
}
