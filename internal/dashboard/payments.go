package dashboard

import (
	"time"

	"github.com/2k1998/bwc-portal/internal/core"
)

// DisplayCap limits how many payments each dashboard list shows. The cap
// is render-side only: counts and totals always cover every pending
// payment.
const DisplayCap = 5

// PaymentSummary is the pending-payment view of the dashboard.
type PaymentSummary struct {
	Upcoming []core.Payment // at most DisplayCap entries
	Overdue  []core.Payment // at most DisplayCap entries

	UpcomingCount int
	OverdueCount  int

	TotalPending core.Money
}

// SummarizePayments splits pending payments into upcoming and overdue
// relative to now. Payments in any other status are ignored entirely by
// this aggregation. due_date before now means overdue, everything else
// upcoming. The computation is idempotent: identical inputs always yield
// identical output.
func SummarizePayments(payments []core.Payment, now time.Time) PaymentSummary {
	var s PaymentSummary
	for _, p := range payments {
		if p.Status != core.PaymentPending {
			continue
		}
		s.TotalPending = s.TotalPending.Add(p.Amount)
		if p.DueDate.Before(now) {
			s.OverdueCount++
			if len(s.Overdue) < DisplayCap {
				s.Overdue = append(s.Overdue, p)
			}
		} else {
			s.UpcomingCount++
			if len(s.Upcoming) < DisplayCap {
				s.Upcoming = append(s.Upcoming, p)
			}
		}
	}
	return s
}
