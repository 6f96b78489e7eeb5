package csvio

// Export rows carry display headers in their fixed column order; import
// rows are keyed by the snake_case headers uploads use. Import fields stay
// strings so a bad value fails its own row during parsing, not the batch.

type ExpenseExportRow struct {
	Title       string `csv:"Title"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	CreatedAt   string `csv:"Created At"`
}

type ExpenseImportRow struct {
	Title       string `csv:"title"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Date        string `csv:"date"`
	Description string `csv:"description"`
}

type InvoiceExportRow struct {
	InvoiceNumber string `csv:"Invoice Number"`
	ClientName    string `csv:"Client Name"`
	ClientEmail   string `csv:"Client Email"`
	Amount        string `csv:"Amount"`
	Status        string `csv:"Status"`
	IssueDate     string `csv:"Issue Date"`
	DueDate       string `csv:"Due Date"`
	Description   string `csv:"Description"`
}

type InvoiceImportRow struct {
	InvoiceNumber string `csv:"invoice_number"`
	ClientName    string `csv:"client_name"`
	ClientEmail   string `csv:"client_email"`
	Amount        string `csv:"amount"`
	Status        string `csv:"status"`
	IssueDate     string `csv:"issue_date"`
	DueDate       string `csv:"due_date"`
	Description   string `csv:"description"`
}
