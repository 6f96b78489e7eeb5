package report_test

import (
	"testing"
	"time"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_mock"
	"github.com/Keerthana-tech-26/business-automation-dashboard/pkg/moretest"
	"github.com/Keerthana-tech-26/business-automation-dashboard/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedExpense(t *testing.T, db *gorm.DB, userID uint, amount string, category dashboard_core.ExpenseCategory, date time.Time) {
	value, err := decimal.NewFromString(amount)
	assert.Nil(t, err)

	err = db.Create(&dashboard_core.Expense{
		UserID:   userID,
		Title:    string(category),
		Amount:   value,
		Category: category,
		Date:     date,
	}).Error
	assert.Nil(t, err)
}

func seedInvoice(t *testing.T, db *gorm.DB, userID uint, number, amount string, status dashboard_core.InvoiceStatus, issued time.Time) {
	value, err := decimal.NewFromString(amount)
	assert.Nil(t, err)

	err = db.Create(&dashboard_core.Invoice{
		InvoiceNumber: number,
		ClientName:    "client",
		ClientEmail:   "client@example.com",
		Amount:        value,
		Status:        status,
		IssueDate:     issued,
		DueDate:       issued.AddDate(0, 1, 0),
		Description:   "seeded",
		CreatedByID:   userID,
	}).Error
	assert.Nil(t, err)
}

func TestSummary(t *testing.T) {
	var db gorm.DB

	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	moretest.Suite(t, "testing summary aggregation",
		moretest.SetupListFunc{
			dashboard_mock.MockSqliteDatabase(&db),
			dashboard_mock.Migrate(&db),
			dashboard_mock.PopulateUsers(&db, 2),
		},
		func(t *testing.T) {
			srv := report.NewReportService(&db)

			seedExpense(t, &db, 1, "100.00", dashboard_core.CategoryOffice, day)
			seedExpense(t, &db, 1, "50.00", dashboard_core.CategoryOffice, day)
			seedExpense(t, &db, 1, "30.00", dashboard_core.CategoryTravel, day)
			seedExpense(t, &db, 2, "20.00", dashboard_core.CategoryOther, day)

			seedInvoice(t, &db, 1, "R-1", "500.00", dashboard_core.StatusSent, day)
			seedInvoice(t, &db, 1, "R-2", "250.00", dashboard_core.StatusPaid, day)
			seedInvoice(t, &db, 2, "R-3", "75.00", dashboard_core.StatusDraft, day)

			t.Run("user summary groups and orders by total", func(t *testing.T) {
				summary, err := srv.UserSummary(t.Context(), 1)
				assert.Nil(t, err)

				assert.Equal(t, "180.00", summary.TotalExpenses.StringFixed(2))
				assert.Equal(t, "750.00", summary.TotalInvoices.StringFixed(2))

				assert.Equal(t, 2, len(summary.ExpenseByCategory))
				assert.Equal(t, "OFFICE", summary.ExpenseByCategory[0].Category)
				assert.Equal(t, "150.00", summary.ExpenseByCategory[0].Total.StringFixed(2))
				assert.Equal(t, int64(2), summary.ExpenseByCategory[0].Count)
				assert.Equal(t, "TRAVEL", summary.ExpenseByCategory[1].Category)
				assert.Equal(t, "30.00", summary.ExpenseByCategory[1].Total.StringFixed(2))
				assert.Equal(t, int64(1), summary.ExpenseByCategory[1].Count)

				assert.Equal(t, 2, len(summary.InvoiceByStatus))
				assert.Equal(t, "SENT", summary.InvoiceByStatus[0].Status)
				assert.Equal(t, int64(1), summary.InvoiceByStatus[0].Count)
			})

			t.Run("global summary crosses users", func(t *testing.T) {
				summary, err := srv.GlobalSummary(t.Context())
				assert.Nil(t, err)

				assert.Equal(t, "200.00", summary.TotalExpenses.StringFixed(2))
				assert.Equal(t, "825.00", summary.TotalInvoices.StringFixed(2))
				assert.Equal(t, 3, len(summary.ExpenseByCategory))
				assert.Equal(t, 3, len(summary.InvoiceByStatus))
			})

			t.Run("empty owner yields zero totals", func(t *testing.T) {
				summary, err := srv.UserSummary(t.Context(), 42)
				assert.Nil(t, err)

				assert.Equal(t, "0.00", summary.TotalExpenses.StringFixed(2))
				assert.Equal(t, "0.00", summary.TotalInvoices.StringFixed(2))
				assert.Equal(t, 0, len(summary.ExpenseByCategory))
				assert.Equal(t, 0, len(summary.InvoiceByStatus))
			})
		})
}

func TestDashboardOverview(t *testing.T) {
	var db gorm.DB

	at := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)

	moretest.Suite(t, "testing dashboard overview",
		moretest.SetupListFunc{
			dashboard_mock.MockSqliteDatabase(&db),
			dashboard_mock.Migrate(&db),
			dashboard_mock.PopulateUsers(&db, 1),
		},
		func(t *testing.T) {
			srv := report.NewReportService(&db)

			seedExpense(t, &db, 1, "40.00", dashboard_core.CategoryOffice, at.AddDate(0, 0, -5))
			seedExpense(t, &db, 1, "60.00", dashboard_core.CategoryTravel, at.AddDate(0, -2, 0))
			for i := 0; i < 6; i++ {
				seedExpense(t, &db, 1, "1.00", dashboard_core.CategoryOther, at.AddDate(0, 0, -i-1))
			}

			seedInvoice(t, &db, 1, "O-1", "10.00", dashboard_core.StatusSent, at)
			seedInvoice(t, &db, 1, "O-2", "10.00", dashboard_core.StatusPaid, at)

			overview, err := srv.DashboardOverviewAt(t.Context(), 1, at)
			assert.Nil(t, err)

			assert.Equal(t, "106.00", overview.TotalExpenses.StringFixed(2))
			assert.Equal(t, "46.00", overview.MonthlyExpenses.StringFixed(2))
			assert.Equal(t, int64(2), overview.TotalInvoices)
			assert.Equal(t, int64(1), overview.PendingInvoices)
			assert.Equal(t, 5, len(overview.RecentExpenses))
			assert.Equal(t, 2, len(overview.RecentInvoices))
		})
}
