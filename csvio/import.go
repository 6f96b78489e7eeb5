package csvio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/expense"
	"github.com/Keerthana-tech-26/business-automation-dashboard/invoice"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImportExpenses persists one expense per CSV row on behalf of userID.
// Import is best-effort: a failing row is counted and skipped, never
// aborting the rows after it. Rows already persisted stay persisted.
// Input that is not decodable CSV fails whole before any row runs.
func (c *csvServiceImpl) ImportExpenses(ctx context.Context, userID uint, data []byte) (*ImportResult, error) {
	rows := []*ExpenseImportRow{}
	if err := gocsv.UnmarshalBytes(foldHeader(data), &rows); err != nil {
		return nil, fmt.Errorf("%w: %s", dashboard_core.ErrFormat, err)
	}

	batchID := uuid.NewString()
	result := &ImportResult{}

	for _, row := range rows {
		if err := c.importExpenseRow(ctx, userID, row); err != nil {
			result.Failed++
			slog.DebugContext(ctx, "expense row skipped",
				"batch_id", batchID,
				"title", row.Title,
				"error", err.Error())
			continue
		}
		result.Success++
	}

	slog.InfoContext(ctx, "expense import finished",
		"batch_id", batchID,
		"user_id", userID,
		"success", result.Success,
		"failed", result.Failed)

	return result, nil
}

func (c *csvServiceImpl) importExpenseRow(ctx context.Context, userID uint, row *ExpenseImportRow) error {
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return fmt.Errorf("%w: invalid amount %q", dashboard_core.ErrValidation, row.Amount)
	}

	date, err := dashboard_core.ParseDate(row.Date)
	if err != nil {
		return err
	}

	_, err = c.expenses.ExpenseCreate(ctx, &expense.ExpenseCreateRequest{
		UserID:      userID,
		Title:       row.Title,
		Amount:      amount,
		Category:    dashboard_core.ExpenseCategory(row.Category),
		Description: row.Description,
		Date:        date,
	})
	return err
}

// foldHeader lowercases the header row and turns spaces into underscores
// so files produced by export ("Invoice Number") decode against the
// snake_case import keys. Data rows are untouched.
func foldHeader(data []byte) []byte {
	i := bytes.IndexByte(data, '\n')
	if i < 0 {
		i = len(data)
	}

	head := strings.ToLower(string(data[:i]))
	head = strings.ReplaceAll(head, " ", "_")

	out := make([]byte, 0, len(data))
	out = append(out, head...)
	out = append(out, data[i:]...)
	return out
}

// ImportInvoices is the invoice counterpart of ImportExpenses. A duplicate
// invoice number fails only its own row.
func (c *csvServiceImpl) ImportInvoices(ctx context.Context, userID uint, data []byte) (*ImportResult, error) {
	rows := []*InvoiceImportRow{}
	if err := gocsv.UnmarshalBytes(foldHeader(data), &rows); err != nil {
		return nil, fmt.Errorf("%w: %s", dashboard_core.ErrFormat, err)
	}

	batchID := uuid.NewString()
	result := &ImportResult{}

	for _, row := range rows {
		if err := c.importInvoiceRow(ctx, userID, row); err != nil {
			result.Failed++
			slog.DebugContext(ctx, "invoice row skipped",
				"batch_id", batchID,
				"invoice_number", row.InvoiceNumber,
				"error", err.Error())
			continue
		}
		result.Success++
	}

	slog.InfoContext(ctx, "invoice import finished",
		"batch_id", batchID,
		"user_id", userID,
		"success", result.Success,
		"failed", result.Failed)

	return result, nil
}

func (c *csvServiceImpl) importInvoiceRow(ctx context.Context, userID uint, row *InvoiceImportRow) error {
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return fmt.Errorf("%w: invalid amount %q", dashboard_core.ErrValidation, row.Amount)
	}

	issueDate, err := dashboard_core.ParseDate(row.IssueDate)
	if err != nil {
		return err
	}

	dueDate, err := dashboard_core.ParseDate(row.DueDate)
	if err != nil {
		return err
	}

	_, err = c.invoices.InvoiceCreate(ctx, &invoice.InvoiceCreateRequest{
		UserID:        userID,
		InvoiceNumber: row.InvoiceNumber,
		ClientName:    row.ClientName,
		ClientEmail:   row.ClientEmail,
		Amount:        amount,
		Status:        dashboard_core.InvoiceStatus(row.Status),
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Description:   row.Description,
	})
	return err
}
