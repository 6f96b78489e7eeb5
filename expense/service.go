package expense

import (
	"context"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func NewExpenseService(db *gorm.DB) *expenseServiceImpl {
	return &expenseServiceImpl{
		db:       db,
		validate: validator.New(),
	}
}

type expenseServiceImpl struct {
	db       *gorm.DB
	validate *validator.Validate
}

type totalResult struct {
	Total decimal.Decimal
}

// ExpenseTotal sums the owner's expense amounts, 0 when no rows exist.
func (e *expenseServiceImpl) ExpenseTotal(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var result totalResult

	err := e.db.
		WithContext(ctx).
		Model(&dashboard_core.Expense{}).
		Select("coalesce(sum(amount), 0) as total").
		Where("user_id = ?", userID).
		Scan(&result).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	return result.Total, nil
}
