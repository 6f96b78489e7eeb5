package report

import (
	"context"
	"time"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/shopspring/decimal"
)

type Overview struct {
	TotalExpenses   decimal.Decimal           `json:"total_expenses"`
	MonthlyExpenses decimal.Decimal           `json:"monthly_expenses"`
	TotalInvoices   int64                     `json:"total_invoices"`
	PendingInvoices int64                     `json:"pending_invoices"`
	RecentExpenses  []*dashboard_core.Expense `json:"recent_expenses"`
	RecentInvoices  []*dashboard_core.Invoice `json:"recent_invoices"`
}

// DashboardOverview collects the home-screen figures for one user: overall
// and month-to-date expense totals, invoice counts and the five most
// recent records of each kind.
func (r *reportServiceImpl) DashboardOverview(ctx context.Context, userID uint) (*Overview, error) {
	return r.DashboardOverviewAt(ctx, userID, time.Now())
}

func (r *reportServiceImpl) DashboardOverviewAt(ctx context.Context, userID uint, at time.Time) (*Overview, error) {
	var err error
	result := &Overview{
		RecentExpenses: []*dashboard_core.Expense{},
		RecentInvoices: []*dashboard_core.Invoice{},
	}

	db := r.db.WithContext(ctx)
	startOfMonth := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)

	result.TotalExpenses, err = r.sumAmount(db.Table("expenses"), "user_id", userID)
	if err != nil {
		return result, err
	}

	result.MonthlyExpenses, err = r.sumAmount(
		db.Table("expenses").Where("date >= ?", startOfMonth),
		"user_id", userID)
	if err != nil {
		return result, err
	}

	err = db.
		Model(&dashboard_core.Invoice{}).
		Where("created_by_id = ?", userID).
		Count(&result.TotalInvoices).
		Error
	if err != nil {
		return result, err
	}

	err = db.
		Model(&dashboard_core.Invoice{}).
		Where("created_by_id = ?", userID).
		Where("status = ?", dashboard_core.StatusSent).
		Count(&result.PendingInvoices).
		Error
	if err != nil {
		return result, err
	}

	err = db.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(5).
		Find(&result.RecentExpenses).
		Error
	if err != nil {
		return result, err
	}

	err = db.
		Where("created_by_id = ?", userID).
		Order("created_at desc").
		Limit(5).
		Find(&result.RecentInvoices).
		Error
	if err != nil {
		return result, err
	}

	return result, nil
}
