package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseCreateRequest struct {
	UserID      uint                           `json:"user_id" validate:"required"`
	Title       string                         `json:"title" validate:"required,max=200"`
	Amount      decimal.Decimal                `json:"amount"`
	Category    dashboard_core.ExpenseCategory `json:"category" validate:"required,oneof=OFFICE TRAVEL UTILITIES SALARY MARKETING OTHER"`
	Description string                         `json:"description"`
	Date        time.Time                      `json:"date" validate:"required"`
}

func (e *expenseServiceImpl) ExpenseCreate(ctx context.Context, pay *ExpenseCreateRequest) (*dashboard_core.Expense, error) {
	var err error
	if err = e.validate.Struct(pay); err != nil {
		return nil, fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err)
	}
	if err = dashboard_core.ValidateAmount(pay.Amount); err != nil {
		return nil, err
	}

	exp := dashboard_core.Expense{
		UserID:      pay.UserID,
		Title:       pay.Title,
		Amount:      pay.Amount,
		Category:    pay.Category,
		Description: pay.Description,
		Date:        dashboard_core.DateOf(pay.Date),
	}

	err = e.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			return tx.Create(&exp).Error
		})
	if err != nil {
		return nil, err
	}

	return &exp, nil
}
