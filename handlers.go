package dashboard

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/expense"
	"github.com/Keerthana-tech-26/business-automation-dashboard/invoice"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type apiHandler struct {
	expenses ExpenseService
	invoices InvoiceService
	reports  ReportService
	profiles ProfileService
	csv      CsvService
}

// forms carry dates and amounts as strings; parsing failures map to
// validation errors before any service call.
type expenseForm struct {
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type invoiceForm struct {
	InvoiceNumber string `json:"invoice_number"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	IssueDate     string `json:"issue_date"`
	DueDate       string `json:"due_date"`
	Description   string `json:"description"`
}

type profileForm struct {
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

func (h *apiHandler) listExpenses(c *gin.Context) {
	user := currentUser(c)
	ctx := c.Request.Context()

	items, err := h.expenses.ExpenseList(ctx, &expense.ExpenseListRequest{UserID: user.ID})
	if err != nil {
		abortError(c, err)
		return
	}

	total, err := h.expenses.ExpenseTotal(ctx, user.ID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses": items,
		"total":    total,
	})
}

func (h *apiHandler) createExpense(c *gin.Context) {
	user := currentUser(c)

	var form expenseForm
	if err := c.ShouldBindJSON(&form); err != nil {
		abortError(c, fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err))
		return
	}

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil {
		abortError(c, fmt.Errorf("%w: invalid amount %q", dashboard_core.ErrValidation, form.Amount))
		return
	}

	date, err := dashboard_core.ParseDate(form.Date)
	if err != nil {
		abortError(c, err)
		return
	}

	item, err := h.expenses.ExpenseCreate(c.Request.Context(), &expense.ExpenseCreateRequest{
		UserID:      user.ID,
		Title:       form.Title,
		Amount:      amount,
		Category:    dashboard_core.ExpenseCategory(form.Category),
		Description: form.Description,
		Date:        date,
	})
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *apiHandler) deleteExpense(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, fmt.Errorf("%w: invalid id", dashboard_core.ErrValidation))
		return
	}

	err = h.expenses.ExpenseDelete(c.Request.Context(), &expense.ExpenseDeleteRequest{
		ID:     uint(id),
		UserID: user.ID,
	})
	if err != nil {
		abortError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *apiHandler) exportExpenses(c *gin.Context) {
	user := currentUser(c)

	data, err := h.csv.ExportExpenses(c.Request.Context(), user.ID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *apiHandler) importExpenses(c *gin.Context) {
	user := currentUser(c)

	data, err := uploadedCsv(c)
	if err != nil {
		abortError(c, err)
		return
	}

	result, err := h.csv.ImportExpenses(c.Request.Context(), user.ID, data)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *apiHandler) listInvoices(c *gin.Context) {
	user := currentUser(c)
	ctx := c.Request.Context()

	items, err := h.invoices.InvoiceList(ctx, &invoice.InvoiceListRequest{UserID: user.ID})
	if err != nil {
		abortError(c, err)
		return
	}

	total, err := h.invoices.InvoiceTotal(ctx, user.ID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices":     items,
		"total_amount": total,
	})
}

func (h *apiHandler) createInvoice(c *gin.Context) {
	user := currentUser(c)

	var form invoiceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		abortError(c, fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err))
		return
	}

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil {
		abortError(c, fmt.Errorf("%w: invalid amount %q", dashboard_core.ErrValidation, form.Amount))
		return
	}

	issueDate, err := dashboard_core.ParseDate(form.IssueDate)
	if err != nil {
		abortError(c, err)
		return
	}

	dueDate, err := dashboard_core.ParseDate(form.DueDate)
	if err != nil {
		abortError(c, err)
		return
	}

	item, err := h.invoices.InvoiceCreate(c.Request.Context(), &invoice.InvoiceCreateRequest{
		UserID:        user.ID,
		InvoiceNumber: form.InvoiceNumber,
		ClientName:    form.ClientName,
		ClientEmail:   form.ClientEmail,
		Amount:        amount,
		Status:        dashboard_core.InvoiceStatus(form.Status),
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Description:   form.Description,
	})
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *apiHandler) deleteInvoice(c *gin.Context) {
	user := currentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortError(c, fmt.Errorf("%w: invalid id", dashboard_core.ErrValidation))
		return
	}

	err = h.invoices.InvoiceDelete(c.Request.Context(), &invoice.InvoiceDeleteRequest{
		ID:     uint(id),
		UserID: user.ID,
	})
	if err != nil {
		abortError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *apiHandler) exportInvoices(c *gin.Context) {
	user := currentUser(c)

	data, err := h.csv.ExportInvoices(c.Request.Context(), user.ID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoices.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *apiHandler) importInvoices(c *gin.Context) {
	user := currentUser(c)

	data, err := uploadedCsv(c)
	if err != nil {
		abortError(c, err)
		return
	}

	result, err := h.csv.ImportInvoices(c.Request.Context(), user.ID, data)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *apiHandler) getProfile(c *gin.Context) {
	user := currentUser(c)

	profile, err := h.profiles.ProfileGet(c.Request.Context(), user.ID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *apiHandler) updateProfile(c *gin.Context) {
	user := currentUser(c)

	var form profileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		abortError(c, fmt.Errorf("%w: %s", dashboard_core.ErrValidation, err))
		return
	}

	profile, err := h.profiles.ProfileUpdate(c.Request.Context(), &ProfileUpdateRequest{
		UserID:     user.ID,
		Department: form.Department,
		Phone:      form.Phone,
	})
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *apiHandler) overview(c *gin.Context) {
	user := currentUser(c)

	result, err := h.reports.DashboardOverview(c.Request.Context(), user.ID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *apiHandler) userSummary(c *gin.Context) {
	user := currentUser(c)

	result, err := h.reports.UserSummary(c.Request.Context(), user.ID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *apiHandler) monthlySeries(c *gin.Context) {
	user := currentUser(c)

	result, err := h.reports.MonthlySeries(c.Request.Context(), user.ID)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *apiHandler) globalSummary(c *gin.Context) {
	result, err := h.reports.GlobalSummary(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *apiHandler) listAllExpenses(c *gin.Context) {
	items, err := h.expenses.ExpenseListAll(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *apiHandler) listAllInvoices(c *gin.Context) {
	items, err := h.invoices.InvoiceListAll(c.Request.Context())
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// uploadedCsv reads the csv_file form part, or the raw body when the
// request is not multipart.
func uploadedCsv(c *gin.Context) ([]byte, error) {
	file, err := c.FormFile("csv_file")
	if err != nil {
		data, rerr := io.ReadAll(c.Request.Body)
		if rerr != nil || len(data) == 0 {
			return nil, fmt.Errorf("%w: no csv payload", dashboard_core.ErrValidation)
		}
		return data, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
