package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/albaworks/timeclock-backend-go/internal/domain/payroll"
	"github.com/albaworks/timeclock-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetPayroll(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetPayroll implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	payrollReq := payrollRequestFromQuery(r)

	page, err := h.payrollService.GetPayroll(r.Context(), payrollReq)
	if err != nil {
		slog.Error("GetPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, page.Data, &response.Meta{
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	})
}

// Export implements PayrollHandler.
func (h *PayrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	payrollReq := payrollRequestFromQuery(r)

	workbook, err := h.payrollService.ExportReport(r.Context(), payrollReq)
	if err != nil {
		slog.Error("ExportPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := "payroll_" + payrollReq.StartDate + "_" + payrollReq.EndDate + ".xlsx"
	serveWorkbook(w, r, filename, workbook)
}

func payrollRequestFromQuery(r *http.Request) payroll.PayrollRequest {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil {
		page = 1
	}

	return payroll.PayrollRequest{
		EmployeeID: query.Get("employee_id"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
		Page:       page,
	}
}
