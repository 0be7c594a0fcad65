package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2k1998/bwc-portal/internal/core"
	applog "github.com/2k1998/bwc-portal/internal/log"
	"github.com/2k1998/bwc-portal/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.New("en", token)
	logger := applog.New(slog.LevelError, applog.ComponentAPI)
	return New(srv.URL, 5*time.Second, sess, logger), srv
}

func TestDoSetsHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`[]`))
	})
	client, _ := newTestClient(t, handler, "tok123")

	if _, err := client.ListTasks(context.Background()); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want \"Bearer tok123\"", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestDoOmitsAuthorizationWithoutToken(t *testing.T) {
	var sawAuth bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	})
	client, _ := newTestClient(t, handler, "")

	if _, err := client.ListTasks(context.Background()); err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if sawAuth {
		t.Error("Authorization header should be absent without a token")
	}
}

func TestDoNoContent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	client, _ := newTestClient(t, handler, "tok")

	if err := client.DeletePayment(context.Background(), 7); err != nil {
		t.Fatalf("DeletePayment on 204: %v", err)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
	}{
		{name: "detail field", status: 404, body: `{"detail":"Not found"}`, want: "Not found"},
		{name: "message field", status: 400, body: `{"message":"Bad input"}`, want: "Bad input"},
		{name: "unparseable body falls back", status: 404, body: `<html>nope</html>`, want: "HTTP 404: Not Found"},
		{name: "empty body falls back", status: 500, body: ``, want: "HTTP 500: Internal Server Error"},
		{name: "json without known fields falls back", status: 403, body: `{"error":"x"}`, want: "HTTP 403: Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			client, _ := newTestClient(t, handler, "tok")

			_, err := client.ListTasks(context.Background())
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *api.Error", err)
			}
			if apiErr.Message != tt.want {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.want)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
		})
	}
}

func TestShapeErrorOnMissingField(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// id present but title missing
		_, _ = w.Write([]byte(`[{"id": 3, "status": "new"}]`))
	})
	client, _ := newTestClient(t, handler, "tok")

	_, err := client.ListTasks(context.Background())
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("error = %v, want *api.ShapeError", err)
	}
	if shapeErr.Field != "title" {
		t.Errorf("Field = %q, want title", shapeErr.Field)
	}
}

func TestMalformedAmountSurfacesError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"title":"Rent","amount":"oops","status":"pending","due_date":"2025-05-01T00:00:00Z"}]`))
	})
	client, _ := newTestClient(t, handler, "tok")

	if _, err := client.ListPayments(context.Background(), 0, ""); err == nil {
		t.Fatal("a malformed amount must be an error, not coerced to zero")
	}
}

func TestListPaymentsQueryParams(t *testing.T) {
	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})
	client, _ := newTestClient(t, handler, "tok")

	if _, err := client.ListPayments(context.Background(), 5, "pending"); err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if gotQuery != "limit=5&status_filter=pending" {
		t.Errorf("query = %q, want limit=5&status_filter=pending", gotQuery)
	}
}

func TestFetchReferenceJoinFailsAsWhole(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/companies":
			_, _ = w.Write([]byte(`[{"id":1,"name":"BWC"}]`))
		case "/users":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"detail":"users down"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	client, _ := newTestClient(t, handler, "tok")

	_, err := client.FetchReference(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *api.Error from the failing half", err)
	}
	if apiErr.Message != "users down" {
		t.Errorf("Message = %q, want \"users down\"", apiErr.Message)
	}
}

func TestFetchDashboardData(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tasks":
			_, _ = w.Write([]byte(`[{"id":1,"title":"Call supplier","status":"new"}]`))
		case "/payments":
			_, _ = w.Write([]byte(`[{"id":2,"title":"Rent","amount":120.5,"status":"pending","due_date":"2025-05-01T00:00:00Z"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	client, _ := newTestClient(t, handler, "tok")

	data, err := client.FetchDashboardData(context.Background())
	if err != nil {
		t.Fatalf("FetchDashboardData: %v", err)
	}
	if len(data.Tasks) != 1 || data.Tasks[0].Status != core.TaskNew {
		t.Errorf("Tasks = %+v", data.Tasks)
	}
	if len(data.Payments) != 1 || data.Payments[0].Amount.Cents != 12050 {
		t.Errorf("Payments = %+v", data.Payments)
	}
}
