package csvio

import (
	"context"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/expense"
	"github.com/Keerthana-tech-26/business-automation-dashboard/invoice"
	"github.com/gocarina/gocsv"
)

// ExportExpenses renders the owner's expenses as CSV text with columns
// Title, Amount, Category, Date, Description, Created At.
func (c *csvServiceImpl) ExportExpenses(ctx context.Context, userID uint) ([]byte, error) {
	items, err := c.expenses.ExpenseList(ctx, &expense.ExpenseListRequest{UserID: userID})
	if err != nil {
		return nil, err
	}

	rows := make([]*ExpenseExportRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, &ExpenseExportRow{
			Title:       item.Title,
			Amount:      item.Amount.StringFixed(2),
			Category:    string(item.Category),
			Date:        item.Date.Format(dashboard_core.DateLayout),
			Description: item.Description,
			CreatedAt:   item.CreatedAt.Format(createdAtLayout),
		})
	}

	return gocsv.MarshalBytes(&rows)
}

// ExportInvoices renders the creator's invoices as CSV text with columns
// Invoice Number, Client Name, Client Email, Amount, Status, Issue Date,
// Due Date, Description.
func (c *csvServiceImpl) ExportInvoices(ctx context.Context, userID uint) ([]byte, error) {
	items, err := c.invoices.InvoiceList(ctx, &invoice.InvoiceListRequest{UserID: userID})
	if err != nil {
		return nil, err
	}

	rows := make([]*InvoiceExportRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, &InvoiceExportRow{
			InvoiceNumber: item.InvoiceNumber,
			ClientName:    item.ClientName,
			ClientEmail:   item.ClientEmail,
			Amount:        item.Amount.StringFixed(2),
			Status:        string(item.Status),
			IssueDate:     item.IssueDate.Format(dashboard_core.DateLayout),
			DueDate:       item.DueDate.Format(dashboard_core.DateLayout),
			Description:   item.Description,
		})
	}

	return gocsv.MarshalBytes(&rows)
}
