package report_test

import (
	"testing"
	"time"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_mock"
	"github.com/Keerthana-tech-26/business-automation-dashboard/pkg/moretest"
	"github.com/Keerthana-tech-26/business-automation-dashboard/report"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMonthlySeries(t *testing.T) {
	var db gorm.DB

	// January window must reach back across the year boundary
	at := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	moretest.Suite(t, "testing monthly series",
		moretest.SetupListFunc{
			dashboard_mock.MockSqliteDatabase(&db),
			dashboard_mock.Migrate(&db),
			dashboard_mock.PopulateUsers(&db, 2),
		},
		func(t *testing.T) {
			srv := report.NewReportService(&db)

			seedExpense(t, &db, 1, "40.00", dashboard_core.CategoryOffice,
				time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC))
			seedExpense(t, &db, 1, "15.00", dashboard_core.CategoryTravel,
				time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))
			// outside the window
			seedExpense(t, &db, 1, "99.00", dashboard_core.CategoryOther,
				time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC))
			// another owner must not leak in
			seedExpense(t, &db, 2, "77.00", dashboard_core.CategoryOther,
				time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC))

			seedInvoice(t, &db, 1, "M-1", "100.00", dashboard_core.StatusSent,
				time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
			seedInvoice(t, &db, 1, "M-2", "200.00", dashboard_core.StatusDraft,
				time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC))

			points, err := srv.MonthlySeriesAt(t.Context(), 1, at)
			assert.Nil(t, err)
			assert.Equal(t, 6, len(points))

			labels := make([]string, 0, len(points))
			for _, p := range points {
				labels = append(labels, p.Month)
			}
			assert.Equal(t, []string{
				"Aug 2025", "Sep 2025", "Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026",
			}, labels)

			assert.Equal(t, "40.00", points[0].Expenses.StringFixed(2))
			assert.Equal(t, "0.00", points[0].Invoices.StringFixed(2))

			assert.Equal(t, "200.00", points[2].Invoices.StringFixed(2))

			assert.Equal(t, "0.00", points[4].Expenses.StringFixed(2))

			assert.Equal(t, "15.00", points[5].Expenses.StringFixed(2))
			assert.Equal(t, "100.00", points[5].Invoices.StringFixed(2))
		})
}

func TestMonthlySeriesEmpty(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing empty monthly series",
		moretest.SetupListFunc{
			dashboard_mock.MockSqliteDatabase(&db),
			dashboard_mock.Migrate(&db),
		},
		func(t *testing.T) {
			srv := report.NewReportService(&db)

			points, err := srv.MonthlySeries(t.Context(), 1)
			assert.Nil(t, err)
			assert.Equal(t, 6, len(points))
			for _, p := range points {
				assert.Equal(t, "0.00", p.Expenses.StringFixed(2))
				assert.Equal(t, "0.00", p.Invoices.StringFixed(2))
			}
		})
}
