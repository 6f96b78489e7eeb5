package report

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserSummary aggregates the caller's own expenses and invoices.
func (r *reportServiceImpl) UserSummary(ctx context.Context, userID uint) (*Summary, error) {
	return r.summary(ctx, userID)
}

// GlobalSummary aggregates across all users regardless of caller.
func (r *reportServiceImpl) GlobalSummary(ctx context.Context) (*Summary, error) {
	return r.summary(ctx, 0)
}

func (r *reportServiceImpl) summary(ctx context.Context, userID uint) (*Summary, error) {
	var err error
	result := &Summary{
		TotalExpenses:     decimal.Zero,
		TotalInvoices:     decimal.Zero,
		ExpenseByCategory: []*CategorySummary{},
		InvoiceByStatus:   []*StatusSummary{},
	}

	db := r.db.WithContext(ctx)

	result.TotalExpenses, err = r.sumAmount(db.Table("expenses"), "user_id", userID)
	if err != nil {
		return result, err
	}

	result.TotalInvoices, err = r.sumAmount(db.Table("invoices"), "created_by_id", userID)
	if err != nil {
		return result, err
	}

	expenseQ := db.
		Table("expenses").
		Select([]string{
			"category",
			"coalesce(sum(amount), 0) as total",
			"count(id) as count",
		}).
		Group("category").
		Order("total desc")
	if userID != 0 {
		expenseQ = expenseQ.Where("user_id = ?", userID)
	}

	err = expenseQ.Find(&result.ExpenseByCategory).Error
	if err != nil {
		return result, err
	}

	invoiceQ := db.
		Table("invoices").
		Select([]string{
			"status",
			"coalesce(sum(amount), 0) as total",
			"count(id) as count",
		}).
		Group("status").
		Order("total desc")
	if userID != 0 {
		invoiceQ = invoiceQ.Where("created_by_id = ?", userID)
	}

	err = invoiceQ.Find(&result.InvoiceByStatus).Error
	if err != nil {
		return result, err
	}

	return result, nil
}

type amountRow struct {
	Total decimal.Decimal
}

func (r *reportServiceImpl) sumAmount(query *gorm.DB, ownerField string, userID uint) (decimal.Decimal, error) {
	var row amountRow

	query = query.Select("coalesce(sum(amount), 0) as total")
	if userID != 0 {
		query = query.Where(ownerField+" = ?", userID)
	}

	err := query.Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}

	return row.Total, nil
}
