package invoice

import (
	"context"
	"fmt"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
)

type InvoiceDeleteRequest struct {
	ID     uint `json:"id" validate:"required"`
	UserID uint `json:"user_id" validate:"required"`
}

// InvoiceDelete removes the invoice only when the caller created it.
func (i *invoiceServiceImpl) InvoiceDelete(ctx context.Context, pay *InvoiceDeleteRequest) error {
	if err := i.validate.Struct(pay); err != nil {
		return fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err)
	}

	res := i.db.
		WithContext(ctx).
		Where("id = ?", pay.ID).
		Where("created_by_id = ?", pay.UserID).
		Delete(&dashboard_core.Invoice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: invoice %d", dashboard_core.ErrNotFound, pay.ID)
	}

	return nil
}
