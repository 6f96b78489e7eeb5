package report

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func NewReportService(db *gorm.DB) *reportServiceImpl {
	return &reportServiceImpl{
		db: db,
	}
}

type reportServiceImpl struct {
	db *gorm.DB
}

type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

type StatusSummary struct {
	Status string          `json:"status"`
	Total  decimal.Decimal `json:"total"`
	Count  int64           `json:"count"`
}

type Summary struct {
	TotalExpenses     decimal.Decimal    `json:"total_expenses"`
	TotalInvoices     decimal.Decimal    `json:"total_invoices"`
	ExpenseByCategory []*CategorySummary `json:"expense_by_category"`
	InvoiceByStatus   []*StatusSummary   `json:"invoice_by_status"`
}
