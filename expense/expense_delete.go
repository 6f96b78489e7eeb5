package expense

import (
	"context"
	"fmt"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
)

type ExpenseDeleteRequest struct {
	ID     uint `json:"id" validate:"required"`
	UserID uint `json:"user_id" validate:"required"`
}

// ExpenseDelete removes the expense only when it belongs to the caller.
// A missing record and someone else's record both report not found.
func (e *expenseServiceImpl) ExpenseDelete(ctx context.Context, pay *ExpenseDeleteRequest) error {
	if err := e.validate.Struct(pay); err != nil {
		return fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err)
	}

	res := e.db.
		WithContext(ctx).
		Where("id = ?", pay.ID).
		Where("user_id = ?", pay.UserID).
		Delete(&dashboard_core.Expense{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: expense %d", dashboard_core.ErrNotFound, pay.ID)
	}

	return nil
}
