package expense

import (
	"context"
	"fmt"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
)

type ExpenseListRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

// ExpenseList returns the owner's expenses, most recent date first.
func (e *expenseServiceImpl) ExpenseList(ctx context.Context, pay *ExpenseListRequest) ([]*dashboard_core.Expense, error) {
	if err := e.validate.Struct(pay); err != nil {
		return nil, fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err)
	}

	items := []*dashboard_core.Expense{}
	err := e.db.
		WithContext(ctx).
		Where("user_id = ?", pay.UserID).
		Order("date desc").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// ExpenseListAll is unscoped; it feeds the cross-user reporting API.
func (e *expenseServiceImpl) ExpenseListAll(ctx context.Context) ([]*dashboard_core.Expense, error) {
	items := []*dashboard_core.Expense{}
	err := e.db.
		WithContext(ctx).
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
