package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type MonthlyPoint struct {
	Month    string          `json:"month"`
	Expenses decimal.Decimal `json:"expenses"`
	Invoices decimal.Decimal `json:"invoices"`
}

// MonthlySeries returns per-month totals for the 6 calendar months ending
// at the current month, oldest first.
func (r *reportServiceImpl) MonthlySeries(ctx context.Context, userID uint) ([]*MonthlyPoint, error) {
	return r.MonthlySeriesAt(ctx, userID, time.Now())
}

func (r *reportServiceImpl) MonthlySeriesAt(ctx context.Context, userID uint, at time.Time) ([]*MonthlyPoint, error) {
	db := r.db.WithContext(ctx)
	points := make([]*MonthlyPoint, 0, 6)

	for i := 5; i >= 0; i-- {
		// time.Date normalizes out-of-range months, rolling the year back
		start := time.Date(at.Year(), at.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		expenses, err := r.sumAmount(
			db.Table("expenses").
				Where("date >= ?", start).
				Where("date < ?", end),
			"user_id", userID)
		if err != nil {
			return nil, err
		}

		invoices, err := r.sumAmount(
			db.Table("invoices").
				Where("issue_date >= ?", start).
				Where("issue_date < ?", end),
			"created_by_id", userID)
		if err != nil {
			return nil, err
		}

		points = append(points, &MonthlyPoint{
			Month:    start.Format("Jan 2006"),
			Expenses: expenses,
			Invoices: invoices,
		})
	}

	return points, nil
}
