package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Keerthana-tech-26/business-automation-dashboard/csvio"
	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/expense"
	"github.com/Keerthana-tech-26/business-automation-dashboard/invoice"
	"github.com/Keerthana-tech-26/business-automation-dashboard/report"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseService interface {
	ExpenseCreate(ctx context.Context, pay *expense.ExpenseCreateRequest) (*dashboard_core.Expense, error)
	ExpenseList(ctx context.Context, pay *expense.ExpenseListRequest) ([]*dashboard_core.Expense, error)
	ExpenseListAll(ctx context.Context) ([]*dashboard_core.Expense, error)
	ExpenseDelete(ctx context.Context, pay *expense.ExpenseDeleteRequest) error
	ExpenseTotal(ctx context.Context, userID uint) (decimal.Decimal, error)
}

type InvoiceService interface {
	InvoiceCreate(ctx context.Context, pay *invoice.InvoiceCreateRequest) (*dashboard_core.Invoice, error)
	InvoiceList(ctx context.Context, pay *invoice.InvoiceListRequest) ([]*dashboard_core.Invoice, error)
	InvoiceListAll(ctx context.Context) ([]*dashboard_core.Invoice, error)
	InvoiceDelete(ctx context.Context, pay *invoice.InvoiceDeleteRequest) error
	InvoiceTotal(ctx context.Context, userID uint) (decimal.Decimal, error)
}

type ReportService interface {
	UserSummary(ctx context.Context, userID uint) (*report.Summary, error)
	GlobalSummary(ctx context.Context) (*report.Summary, error)
	MonthlySeries(ctx context.Context, userID uint) ([]*report.MonthlyPoint, error)
	DashboardOverview(ctx context.Context, userID uint) (*report.Overview, error)
}

type ProfileService interface {
	ProfileGet(ctx context.Context, userID uint) (*dashboard_core.UserProfile, error)
	ProfileUpdate(ctx context.Context, pay *ProfileUpdateRequest) (*dashboard_core.UserProfile, error)
}

type CsvService interface {
	ExportExpenses(ctx context.Context, userID uint) ([]byte, error)
	ExportInvoices(ctx context.Context, userID uint) ([]byte, error)
	ImportExpenses(ctx context.Context, userID uint, data []byte) (*csvio.ImportResult, error)
	ImportInvoices(ctx context.Context, userID uint, data []byte) (*csvio.ImportResult, error)
}

// Register builds every service over db and mounts the JSON API. Session
// handling is a deployment concern; callers are identified by X-User-ID
// resolved against known users.
func Register(r *gin.Engine, db *gorm.DB) {
	expenses := expense.NewExpenseService(db)
	invoices := invoice.NewInvoiceService(db)

	h := &apiHandler{
		expenses: expenses,
		invoices: invoices,
		reports:  report.NewReportService(db),
		profiles: NewProfileService(db),
		csv:      csvio.NewCsvService(expenses, invoices),
	}

	api := r.Group("/api")

	// unscoped cross-user reporting endpoints
	api.GET("/summary", h.globalSummary)
	api.GET("/expenses/all", h.listAllExpenses)
	api.GET("/invoices/all", h.listAllInvoices)

	owned := api.Group("", identityRequired(db))
	owned.GET("/expenses", h.listExpenses)
	owned.POST("/expenses", h.createExpense)
	owned.DELETE("/expenses/:id", h.deleteExpense)
	owned.GET("/expenses/export", h.exportExpenses)
	owned.POST("/expenses/import", h.importExpenses)

	owned.GET("/invoices", h.listInvoices)
	owned.POST("/invoices", h.createInvoice)
	owned.DELETE("/invoices/:id", h.deleteInvoice)
	owned.GET("/invoices/export", h.exportInvoices)
	owned.POST("/invoices/import", h.importInvoices)

	owned.GET("/profile", h.getProfile)
	owned.PUT("/profile", h.updateProfile)

	owned.GET("/dashboard", h.overview)
	owned.GET("/reports/summary", h.userSummary)
	owned.GET("/reports/monthly", h.monthlySeries)
}

const identityKey = "identity.user"

func identityRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid X-User-ID"})
			return
		}

		var user dashboard_core.User
		err = db.
			WithContext(c.Request.Context()).
			Where("id = ?", uint(id)).
			Find(&user).
			Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if user.ID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		c.Set(identityKey, &user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *dashboard_core.User {
	val, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	return val.(*dashboard_core.User)
}

func abortError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dashboard_core.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, dashboard_core.ErrValidation), errors.Is(err, dashboard_core.ErrFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
