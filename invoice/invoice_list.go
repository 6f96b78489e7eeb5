package invoice

import (
	"context"
	"fmt"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
)

type InvoiceListRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

// InvoiceList returns the creator's invoices, most recently created first.
func (i *invoiceServiceImpl) InvoiceList(ctx context.Context, pay *InvoiceListRequest) ([]*dashboard_core.Invoice, error) {
	if err := i.validate.Struct(pay); err != nil {
		return nil, fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err)
	}

	items := []*dashboard_core.Invoice{}
	err := i.db.
		WithContext(ctx).
		Where("created_by_id = ?", pay.UserID).
		Order("created_at desc").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// InvoiceListAll is unscoped; it feeds the cross-user reporting API.
func (i *invoiceServiceImpl) InvoiceListAll(ctx context.Context) ([]*dashboard_core.Invoice, error) {
	items := []*dashboard_core.Invoice{}
	err := i.db.
		WithContext(ctx).
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
