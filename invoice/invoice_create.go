package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceCreateRequest struct {
	UserID        uint                         `json:"user_id" validate:"required"`
	InvoiceNumber string                       `json:"invoice_number" validate:"required,max=50"`
	ClientName    string                       `json:"client_name" validate:"required,max=200"`
	ClientEmail   string                       `json:"client_email" validate:"required,email"`
	Amount        decimal.Decimal              `json:"amount"`
	Status        dashboard_core.InvoiceStatus `json:"status" validate:"omitempty,oneof=DRAFT SENT PAID OVERDUE"`
	IssueDate     time.Time                    `json:"issue_date" validate:"required"`
	DueDate       time.Time                    `json:"due_date" validate:"required"`
	Description   string                       `json:"description" validate:"required"`
}

// InvoiceCreate persists a new invoice. The invoice number is unique
// storewide; a losing concurrent writer gets a validation error. Due date
// is deliberately not checked against issue date.
func (i *invoiceServiceImpl) InvoiceCreate(ctx context.Context, pay *InvoiceCreateRequest) (*dashboard_core.Invoice, error) {
	var err error
	if pay.Status == "" {
		pay.Status = dashboard_core.StatusDraft
	}
	if err = i.validate.Struct(pay); err != nil {
		return nil, fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err)
	}
	if err = dashboard_core.ValidateAmount(pay.Amount); err != nil {
		return nil, err
	}

	inv := dashboard_core.Invoice{
		InvoiceNumber: pay.InvoiceNumber,
		ClientName:    pay.ClientName,
		ClientEmail:   pay.ClientEmail,
		Amount:        pay.Amount,
		Status:        pay.Status,
		IssueDate:     dashboard_core.DateOf(pay.IssueDate),
		DueDate:       dashboard_core.DateOf(pay.DueDate),
		Description:   pay.Description,
		CreatedByID:   pay.UserID,
	}

	err = i.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			err := tx.Create(&inv).Error
			if err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return fmt.Errorf("%w: invoice number %s already exists",
						dashboard_core.ErrValidation, inv.InvoiceNumber)
				}
				return err
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	return &inv, nil
}
