package api

import (
	"github.com/2k1998/bwc-portal/internal/core"
)

// Shape checks reject responses with absent required fields at the
// client boundary (a decoded zero value for a required field means the
// backend omitted it).

func checkTask(endpoint string, t core.Task) error {
	switch {
	case t.ID == 0:
		return &ShapeError{Endpoint: endpoint, Field: "id"}
	case t.Title == "":
		return &ShapeError{Endpoint: endpoint, Field: "title"}
	case !t.Status.Valid():
		return &ShapeError{Endpoint: endpoint, Field: "status"}
	}
	return nil
}

func checkPayment(endpoint string, p core.Payment) error {
	switch {
	case p.ID == 0:
		return &ShapeError{Endpoint: endpoint, Field: "id"}
	case p.Title == "":
		return &ShapeError{Endpoint: endpoint, Field: "title"}
	case p.Status == "":
		return &ShapeError{Endpoint: endpoint, Field: "status"}
	case p.DueDate.IsZero():
		return &ShapeError{Endpoint: endpoint, Field: "due_date"}
	}
	return nil
}

func checkProject(endpoint string, p core.Project) error {
	switch {
	case p.ID == 0:
		return &ShapeError{Endpoint: endpoint, Field: "id"}
	case p.Name == "":
		return &ShapeError{Endpoint: endpoint, Field: "name"}
	case !p.Type.Valid():
		return &ShapeError{Endpoint: endpoint, Field: "project_type"}
	case !p.Status.Valid():
		return &ShapeError{Endpoint: endpoint, Field: "status"}
	case p.CompanyID == 0:
		return &ShapeError{Endpoint: endpoint, Field: "company_id"}
	case !core.ValidProgress(p.ProgressPercentage):
		return &ShapeError{Endpoint: endpoint, Field: "progress_percentage"}
	}
	return nil
}

func checkUser(endpoint string, u core.User) error {
	switch {
	case u.ID == 0:
		return &ShapeError{Endpoint: endpoint, Field: "id"}
	case u.Email == "":
		return &ShapeError{Endpoint: endpoint, Field: "email"}
	case !u.Role.Valid():
		return &ShapeError{Endpoint: endpoint, Field: "role"}
	}
	return nil
}

func checkCompany(endpoint string, c core.Company) error {
	switch {
	case c.ID == 0:
		return &ShapeError{Endpoint: endpoint, Field: "id"}
	case c.Name == "":
		return &ShapeError{Endpoint: endpoint, Field: "name"}
	}
	return nil
}
