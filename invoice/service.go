package invoice

import (
	"context"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func NewInvoiceService(db *gorm.DB) *invoiceServiceImpl {
	return &invoiceServiceImpl{
		db:       db,
		validate: validator.New(),
	}
}

type invoiceServiceImpl struct {
	db       *gorm.DB
	validate *validator.Validate
}

type totalResult struct {
	Total decimal.Decimal
}

// InvoiceTotal sums the creator's invoice amounts, 0 when no rows exist.
func (i *invoiceServiceImpl) InvoiceTotal(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var result totalResult

	err := i.db.
		WithContext(ctx).
		Model(&dashboard_core.Invoice{}).
		Select("coalesce(sum(amount), 0) as total").
		Where("created_by_id = ?", userID).
		Scan(&result).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	return result.Total, nil
}
