package csvio_test

import (
	"errors"
	"testing"

	"github.com/Keerthana-tech-26/business-automation-dashboard/csvio"
	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_core"
	"github.com/Keerthana-tech-26/business-automation-dashboard/dashboard_mock"
	"github.com/Keerthana-tech-26/business-automation-dashboard/expense"
	"github.com/Keerthana-tech-26/business-automation-dashboard/invoice"
	"github.com/Keerthana-tech-26/business-automation-dashboard/pkg/moretest"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestImportExpenses(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing expense import",
		moretest.SetupListFunc{
			dashboard_mock.MockSqliteDatabase(&db),
			dashboard_mock.Migrate(&db),
			dashboard_mock.PopulateUsers(&db, 1),
		},
		func(t *testing.T) {
			expenses := expense.NewExpenseService(&db)
			srv := csvio.NewCsvService(expenses, invoice.NewInvoiceService(&db))

			t.Run("bad rows are counted, good rows persist", func(t *testing.T) {
				data := []byte("title,amount,category,date,description\n" +
					"paper,12.50,OFFICE,2026-04-01,reams\n" +
					"flight,300.00,TRAVEL,2026-04-02,\n" +
					"lunch,abc,OTHER,2026-04-03,not a number\n" +
					"power,45.10,UTILITIES,2026-04-04,\n")

				result, err := srv.ImportExpenses(t.Context(), 1, data)
				assert.Nil(t, err)
				assert.Equal(t, 3, result.Success)
				assert.Equal(t, 1, result.Failed)

				items, err := expenses.ExpenseList(t.Context(), &expense.ExpenseListRequest{UserID: 1})
				assert.Nil(t, err)
				assert.Equal(t, 3, len(items))
			})

			t.Run("unknown category fails only its row", func(t *testing.T) {
				data := []byte("title,amount,category,date\n" +
					"ok,5.00,OTHER,2026-04-05\n" +
					"bad,5.00,GROCERIES,2026-04-05\n")

				result, err := srv.ImportExpenses(t.Context(), 1, data)
				assert.Nil(t, err)
				assert.Equal(t, 1, result.Success)
				assert.Equal(t, 1, result.Failed)
			})

			t.Run("unparsable csv aborts before any row", func(t *testing.T) {
				var before int64
				assert.Nil(t, db.Model(&dashboard_core.Expense{}).Count(&before).Error)

				_, err := srv.ImportExpenses(t.Context(), 1, []byte("title,amount\n\"unterminated,1"))
				assert.True(t, errors.Is(err, dashboard_core.ErrFormat))

				var after int64
				assert.Nil(t, db.Model(&dashboard_core.Expense{}).Count(&after).Error)
				assert.Equal(t, before, after)
			})
		})
}

func TestImportInvoices(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing invoice import",
		moretest.SetupListFunc{
			dashboard_mock.MockSqliteDatabase(&db),
			dashboard_mock.Migrate(&db),
			dashboard_mock.PopulateUsers(&db, 1),
		},
		func(t *testing.T) {
			invoices := invoice.NewInvoiceService(&db)
			srv := csvio.NewCsvService(expense.NewExpenseService(&db), invoices)

			t.Run("duplicate number fails only its row", func(t *testing.T) {
				data := []byte("invoice_number,client_name,client_email,amount,status,issue_date,due_date,description\n" +
					"B-1,Acme,a@acme.example,100.00,SENT,2026-04-01,2026-05-01,first\n" +
					"B-1,Acme,a@acme.example,100.00,SENT,2026-04-01,2026-05-01,duplicate\n" +
					"B-2,Acme,a@acme.example,50.00,DRAFT,2026-04-02,2026-05-02,second\n")

				result, err := srv.ImportInvoices(t.Context(), 1, data)
				assert.Nil(t, err)
				assert.Equal(t, 2, result.Success)
				assert.Equal(t, 1, result.Failed)

				items, err := invoices.InvoiceList(t.Context(), &invoice.InvoiceListRequest{UserID: 1})
				assert.Nil(t, err)
				assert.Equal(t, 2, len(items))
			})

			t.Run("rows are not transactional as a batch", func(t *testing.T) {
				// the failing middle row does not roll back its neighbors
				data := []byte("invoice_number,client_name,client_email,amount,status,issue_date,due_date,description\n" +
					"B-3,Acme,a@acme.example,10.00,PAID,2026-04-03,2026-05-03,x\n" +
					"B-4,Acme,bad-email,10.00,PAID,2026-04-03,2026-05-03,x\n" +
					"B-5,Acme,a@acme.example,10.00,PAID,2026-04-03,2026-05-03,x\n")

				result, err := srv.ImportInvoices(t.Context(), 1, data)
				assert.Nil(t, err)
				assert.Equal(t, 2, result.Success)
				assert.Equal(t, 1, result.Failed)
			})
		})
}
