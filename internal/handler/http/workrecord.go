package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/albaworks/timeclock-backend-go/internal/domain/workrecord"
	"github.com/albaworks/timeclock-backend-go/internal/handler/http/response"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/excel"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// maxImportSize caps bulk import uploads at 5 MiB.
const maxImportSize = 5 << 20

type WorkRecordHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	MyRecords(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	Template(w http.ResponseWriter, r *http.Request)
}

type WorkRecordHandlerImpl struct {
	workRecordService workrecord.WorkRecordService
}

func NewWorkRecordHandler(workRecordService workrecord.WorkRecordService) WorkRecordHandler {
	return &WorkRecordHandlerImpl{workRecordService: workRecordService}
}

// ClockIn implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockInReq workrecord.ClockInRequest

	// Location is optional; an empty body means no position fix.
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
			slog.Error("ClockIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	record, err := h.workRecordService.ClockIn(r.Context(), clockInReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift opened", "record_id", record.ID, "employee_id", record.EmployeeID)
	response.Created(w, "Clocked in", record)
}

// ClockOut implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockOutReq workrecord.ClockOutRequest

	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
			slog.Error("ClockOut decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	record, err := h.workRecordService.ClockOut(r.Context(), clockOutReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift closed", "record_id", record.ID, "employee_id", record.EmployeeID)
	response.SuccessWithMessage(w, "Clocked out", record)
}

// MyRecords implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) MyRecords(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRangeFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.workRecordService.GetMyRecords(r.Context(), rng)
	if err != nil {
		slog.Error("MyRecords service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// List implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rng, err := dateRangeFromQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := workrecord.ListFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Range:      rng,
	}

	records, err := h.workRecordService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListWorkRecords service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Create implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq workrecord.CreateWorkRecordsRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateWorkRecords decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.workRecordService.CreateRecords(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateWorkRecords service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Work records created", "count", len(created))
	response.Created(w, "Work records created", created)
}

// Update implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid work record id", nil)
		return
	}

	var updateReq workrecord.UpdateWorkRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateWorkRecord decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	updated, err := h.workRecordService.UpdateRecord(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateWorkRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work record updated", updated)
}

// Delete implements WorkRecordHandler.
func (h *WorkRecordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid work record id", nil)
		return
	}

	if err := h.workRecordService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("DeleteWorkRecord service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work record deleted", nil)
}

// Import implements WorkRecordHandler. It accepts a multipart upload with the
// workbook under the "file" field.
func (h *WorkRecordHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		slog.Error("Import parse form error", "error", err)
		response.BadRequest(w, "Invalid upload", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	scheduleRows, err := excel.ParseScheduleRows(file)
	if err != nil {
		slog.Error("Import parse workbook error", "error", err)
		response.BadRequest(w, fmt.Sprintf("Unreadable workbook: %v", err), nil)
		return
	}

	importRows := make([]workrecord.ImportRow, 0, len(scheduleRows))
	for _, row := range scheduleRows {
		importRows = append(importRows, workrecord.ImportRow{
			EmployeeName: row.EmployeeName,
			Date:         row.Date,
			ClockIn:      row.ClockIn,
			ClockOut:     row.ClockOut,
			Line:         row.Line,
		})
	}

	result, err := h.workRecordService.ImportRows(r.Context(), importRows)
	if err != nil {
		slog.Error("Import service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Bulk import finished", "created", result.Created, "skipped", result.Skipped)
	response.Success(w, result)
}

// Template implements WorkRecordHandler. It serves the import template
// workbook as a download.
func (h *WorkRecordHandlerImpl) Template(w http.ResponseWriter, r *http.Request) {
	workbook, err := excel.ScheduleTemplate()
	if err != nil {
		slog.Error("Template build error", "error", err)
		response.InternalServerError(w, "Could not build the template")
		return
	}

	serveWorkbook(w, r, "schedule_template.xlsx", workbook)
}

func serveWorkbook(w http.ResponseWriter, r *http.Request, filename string, workbook []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeContent(w, r, filename, time.Now(), bytes.NewReader(workbook))
}

// dateRangeFromQuery reads start_date and end_date ("YYYY-MM-DD") from the
// query string. The end date is extended to the last instant of its day so
// both ends are inclusive.
func dateRangeFromQuery(r *http.Request) (workrecord.DateRange, error) {
	var errs validator.ValidationErrors

	start, ok := validator.IsValidDate(r.URL.Query().Get("start_date"))
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, ok := validator.IsValidDate(r.URL.Query().Get("end_date"))
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return workrecord.DateRange{}, errs
	}

	return workrecord.DateRange{
		Start: start,
		End:   end.AddDate(0, 0, 1).Add(-1),
	}, nil
}
