package dashboard_core

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	CategoryOffice    ExpenseCategory = "OFFICE"
	CategoryTravel    ExpenseCategory = "TRAVEL"
	CategoryUtilities ExpenseCategory = "UTILITIES"
	CategorySalary    ExpenseCategory = "SALARY"
	CategoryMarketing ExpenseCategory = "MARKETING"
	CategoryOther     ExpenseCategory = "OTHER"
)

func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryOffice, CategoryTravel, CategoryUtilities, CategorySalary, CategoryMarketing, CategoryOther:
		return true
	}
	return false
}

type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "DRAFT"
	StatusSent    InvoiceStatus = "SENT"
	StatusPaid    InvoiceStatus = "PAID"
	StatusOverdue InvoiceStatus = "OVERDUE"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleEmployee UserRole = "EMPLOYEE"
)

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150"`
	Email     string    `json:"email" gorm:"size:254"`
	CreatedAt time.Time `json:"created_at"`
}

type Expense struct {
	ID          uint            `json:"id" gorm:"primarykey"`
	UserID      uint            `json:"user_id" gorm:"index"`
	Title       string          `json:"title" gorm:"size:200"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Category    ExpenseCategory `json:"category" gorm:"size:20"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"-"`
}

type Invoice struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	InvoiceNumber string          `json:"invoice_number" gorm:"uniqueIndex;size:50"`
	ClientName    string          `json:"client_name" gorm:"size:200"`
	ClientEmail   string          `json:"client_email" gorm:"size:254"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Status        InvoiceStatus   `json:"status" gorm:"size:20;default:DRAFT"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	Description   string          `json:"description"`
	CreatedByID   uint            `json:"created_by_id" gorm:"index"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`

	CreatedBy *User `json:"-" gorm:"foreignKey:CreatedByID"`
}

type UserProfile struct {
	ID         uint     `json:"id" gorm:"primarykey"`
	UserID     uint     `json:"user_id" gorm:"uniqueIndex"`
	Role       UserRole `json:"role" gorm:"size:20;default:EMPLOYEE"`
	Department string   `json:"department" gorm:"size:100"`
	Phone      string   `json:"phone" gorm:"size:15"`

	User *User `json:"-"`
}
