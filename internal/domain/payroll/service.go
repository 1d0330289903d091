package payroll

import "context"

// PayrollService derives payroll figures from employees and work records.
type PayrollService interface {
	// GetPayroll returns one page of payroll rows for the request's scope
	GetPayroll(ctx context.Context, req PayrollRequest) (PayrollPageResponse, error)

	// ExportReport renders every filtered row (no pagination) as an xlsx
	// workbook
	ExportReport(ctx context.Context, req PayrollRequest) ([]byte, error)
}
