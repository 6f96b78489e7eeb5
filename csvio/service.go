package csvio

import (
	"context"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/expense"
	"github.com/Keerthana-tech-26/business-automation-dashboard/invoice"
)

type ExpenseStore interface {
	ExpenseCreate(ctx context.Context, pay *expense.ExpenseCreateRequest) (*dashboard_core.Expense, error)
	ExpenseList(ctx context.Context, pay *expense.ExpenseListRequest) ([]*dashboard_core.Expense, error)
}

type InvoiceStore interface {
	InvoiceCreate(ctx context.Context, pay *invoice.InvoiceCreateRequest) (*dashboard_core.Invoice, error)
	InvoiceList(ctx context.Context, pay *invoice.InvoiceListRequest) ([]*dashboard_core.Invoice, error)
}

func NewCsvService(expenses ExpenseStore, invoices InvoiceStore) *csvServiceImpl {
	return &csvServiceImpl{
		expenses: expenses,
		invoices: invoices,
	}
}

type csvServiceImpl struct {
	expenses ExpenseStore
	invoices InvoiceStore
}

type ImportResult struct {
	Success int `json:"success_count"`
	Failed  int `json:"failure_count"`
}

const createdAtLayout = "2006-01-02 15:04:05"
