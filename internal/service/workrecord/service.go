package workrecord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/albaworks/timeclock-backend-go/internal/domain/employee"
	"github.com/albaworks/timeclock-backend-go/internal/domain/workrecord"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/database"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/metrics"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/session"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/albaworks/timeclock-backend-go/internal/repository/postgresql"
)

type WorkRecordServiceImpl struct {
	workRecordRepo workrecord.WorkRecordRepository
	employeeRepo   employee.EmployeeRepository
	session        session.Session
	metrics        *metrics.Collector

	// runTx wraps the create+credit pair in a single transaction.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewWorkRecordService(
	db *database.DB,
	workRecordRepo workrecord.WorkRecordRepository,
	employeeRepo employee.EmployeeRepository,
	sess session.Session,
	collector *metrics.Collector,
) workrecord.WorkRecordService {
	return &WorkRecordServiceImpl{
		workRecordRepo: workRecordRepo,
		employeeRepo:   employeeRepo,
		session:        sess,
		metrics:        collector,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *WorkRecordServiceImpl) ClockIn(ctx context.Context, req workrecord.ClockInRequest) (workrecord.WorkRecordResponse, error) {
	employeeID, err := s.session.CurrentEmployeeID(ctx)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	_, err = s.workRecordRepo.GetOpenByEmployee(ctx, employeeID)
	if err == nil {
		return workrecord.WorkRecordResponse{}, workrecord.ErrShiftAlreadyOpen
	}
	if !errors.Is(err, workrecord.ErrNoOpenShift) {
		return workrecord.WorkRecordResponse{}, fmt.Errorf("check open shift: %w", err)
	}

	record, err := s.workRecordRepo.Create(ctx, workrecord.WorkRecord{
		EmployeeID: employeeID,
		ClockIn:    time.Now(),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return workrecord.WorkRecordResponse{}, fmt.Errorf("create work record: %w", err)
	}

	s.metrics.RecordClockIn()
	return mapRecordToResponse(record), nil
}

func (s *WorkRecordServiceImpl) ClockOut(ctx context.Context, req workrecord.ClockOutRequest) (workrecord.WorkRecordResponse, error) {
	employeeID, err := s.session.CurrentEmployeeID(ctx)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	record, err := s.workRecordRepo.GetOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, workrecord.ErrNoOpenShift) {
			return workrecord.WorkRecordResponse{}, workrecord.ErrNoOpenShift
		}
		return workrecord.WorkRecordResponse{}, fmt.Errorf("find open shift: %w", err)
	}

	now := time.Now()
	record.ClockOut = &now
	record.Latitude = req.Latitude
	record.Longitude = req.Longitude

	if err := s.workRecordRepo.Update(ctx, record); err != nil {
		return workrecord.WorkRecordResponse{}, fmt.Errorf("close shift: %w", err)
	}

	s.metrics.RecordClockOut()
	return mapRecordToResponse(record), nil
}

func (s *WorkRecordServiceImpl) GetMyRecords(ctx context.Context, rng workrecord.DateRange) (workrecord.ListWorkRecordResponse, error) {
	employeeID, err := s.session.CurrentEmployeeID(ctx)
	if err != nil {
		return workrecord.ListWorkRecordResponse{}, err
	}

	records, err := s.listFiltered(ctx, employeeID, rng)
	if err != nil {
		return workrecord.ListWorkRecordResponse{}, err
	}

	return mapRecordsToList(records), nil
}

func (s *WorkRecordServiceImpl) List(ctx context.Context, filter workrecord.ListFilter) (workrecord.ListWorkRecordResponse, error) {
	if filter.Range.Start.After(filter.Range.End) {
		return workrecord.ListWorkRecordResponse{}, workrecord.ErrInvalidDateRange
	}

	var records []workrecord.WorkRecord
	var err error
	if filter.EmployeeID == "" || filter.EmployeeID == "all" {
		records, err = s.workRecordRepo.ListByRange(ctx, filter.Range)
		if err != nil {
			return workrecord.ListWorkRecordResponse{}, fmt.Errorf("list work records: %w", err)
		}
	} else {
		records, err = s.listFiltered(ctx, filter.EmployeeID, filter.Range)
		if err != nil {
			return workrecord.ListWorkRecordResponse{}, err
		}
	}

	return mapRecordsToList(records), nil
}

// listFiltered runs the compound employee+range query, falling back to the
// broad range query with local filtering when the compound query fails.
func (s *WorkRecordServiceImpl) listFiltered(ctx context.Context, employeeID string, rng workrecord.DateRange) ([]workrecord.WorkRecord, error) {
	records, err := s.workRecordRepo.ListByEmployeeAndRange(ctx, employeeID, rng)
	if err == nil {
		return records, nil
	}

	slog.Warn("compound work record query failed, falling back to range scan",
		"employee_id", employeeID,
		"error", err,
	)

	all, rangeErr := s.workRecordRepo.ListByRange(ctx, rng)
	if rangeErr != nil {
		return nil, fmt.Errorf("list work records: %w", rangeErr)
	}

	filtered := make([]workrecord.WorkRecord, 0, len(all))
	for _, record := range all {
		if record.EmployeeID == employeeID {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (s *WorkRecordServiceImpl) CreateRecords(ctx context.Context, req workrecord.CreateWorkRecordsRequest) ([]workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Resolve every employee before writing anything so a bad id in row 3
	// does not leave rows 1 and 2 half-committed.
	for i, row := range req.Rows {
		if _, err := s.employeeRepo.GetByID(ctx, row.EmployeeID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil, fmt.Errorf("rows[%d]: %w", i, employee.ErrEmployeeNotFound)
			}
			return nil, fmt.Errorf("resolve employee for row %d: %w", i, err)
		}
	}

	responses := make([]workrecord.WorkRecordResponse, 0, len(req.Rows))
	for i, row := range req.Rows {
		in, out, ok := timeutil.ShiftInterval(row.Date, row.ClockIn, row.ClockOut)
		if !ok {
			return nil, fmt.Errorf("rows[%d]: unparseable shift times", i)
		}
		hours := timeutil.RoundHours(out.Sub(in).Hours())

		var created workrecord.WorkRecord
		err := s.runTx(ctx, func(txCtx context.Context) error {
			var txErr error
			created, txErr = s.workRecordRepo.Create(txCtx, workrecord.WorkRecord{
				EmployeeID: row.EmployeeID,
				ClockIn:    in,
				ClockOut:   &out,
			})
			if txErr != nil {
				return fmt.Errorf("create work record: %w", txErr)
			}
			if txErr := s.employeeRepo.AddHoursWorked(txCtx, row.EmployeeID, hours); txErr != nil {
				return fmt.Errorf("credit worked hours: %w", txErr)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		responses = append(responses, mapRecordToResponse(created))
	}

	return responses, nil
}

func (s *WorkRecordServiceImpl) UpdateRecord(ctx context.Context, req workrecord.UpdateWorkRecordRequest) (workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	record, err := s.workRecordRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, workrecord.ErrWorkRecordNotFound) {
			return workrecord.WorkRecordResponse{}, workrecord.ErrWorkRecordNotFound
		}
		return workrecord.WorkRecordResponse{}, fmt.Errorf("get work record: %w", err)
	}

	in, out, ok := timeutil.ShiftInterval(req.Date, req.ClockIn, req.ClockOut)
	if !ok {
		return workrecord.WorkRecordResponse{}, fmt.Errorf("unparseable shift times")
	}

	// Edits do not re-credit the employee's cumulative hours; only the
	// original entry counted toward the running total.
	record.ClockIn = in
	record.ClockOut = &out

	if err := s.workRecordRepo.Update(ctx, record); err != nil {
		return workrecord.WorkRecordResponse{}, fmt.Errorf("update work record: %w", err)
	}

	return mapRecordToResponse(record), nil
}

func (s *WorkRecordServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.workRecordRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, workrecord.ErrWorkRecordNotFound) {
			return workrecord.ErrWorkRecordNotFound
		}
		return fmt.Errorf("get work record: %w", err)
	}

	if err := s.workRecordRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete work record: %w", err)
	}
	return nil
}

func (s *WorkRecordServiceImpl) ImportRows(ctx context.Context, rows []workrecord.ImportRow) (workrecord.ImportResponse, error) {
	response := workrecord.ImportResponse{
		Rows: make([]workrecord.ImportRowResult, 0, len(rows)),
	}

	for _, row := range rows {
		result := s.importRow(ctx, row)
		if result.Status == workrecord.ImportStatusCreated {
			response.Created++
		} else {
			response.Skipped++
		}
		s.metrics.RecordImportRow(result.Status)
		response.Rows = append(response.Rows, result)
	}

	return response, nil
}

// importRow processes one uploaded row. A failed row is reported and skipped;
// it never aborts the rest of the batch.
func (s *WorkRecordServiceImpl) importRow(ctx context.Context, row workrecord.ImportRow) workrecord.ImportRowResult {
	result := workrecord.ImportRowResult{
		Line:         row.Line,
		EmployeeName: row.EmployeeName,
	}

	if row.EmployeeName == "" {
		result.Status = workrecord.ImportStatusInvalid
		result.Reason = "employeeName is required"
		return result
	}

	in, out, ok := timeutil.ShiftInterval(row.Date, row.ClockIn, row.ClockOut)
	if !ok {
		result.Status = workrecord.ImportStatusInvalid
		result.Reason = "date must be YYYY-MM-DD and times must be HH:MM"
		return result
	}
	hours := timeutil.RoundHours(out.Sub(in).Hours())

	emp, err := s.employeeRepo.GetByName(ctx, row.EmployeeName)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			result.Status = workrecord.ImportStatusUnresolvedName
			result.Reason = fmt.Sprintf("no employee named %q", row.EmployeeName)
			return result
		}
		result.Status = workrecord.ImportStatusInvalid
		result.Reason = "employee lookup failed"
		return result
	}

	var created workrecord.WorkRecord
	err = s.runTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.workRecordRepo.Create(txCtx, workrecord.WorkRecord{
			EmployeeID: emp.ID,
			ClockIn:    in,
			ClockOut:   &out,
		})
		if txErr != nil {
			return txErr
		}
		return s.employeeRepo.AddHoursWorked(txCtx, emp.ID, hours)
	})
	if err != nil {
		slog.Error("import row failed", "line", row.Line, "employee", row.EmployeeName, "error", err)
		result.Status = workrecord.ImportStatusInvalid
		result.Reason = "could not save the record"
		return result
	}

	result.Status = workrecord.ImportStatusCreated
	result.RecordID = &created.ID
	result.Hours = hours
	return result
}

func mapRecordToResponse(record workrecord.WorkRecord) workrecord.WorkRecordResponse {
	resp := workrecord.WorkRecordResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Date:       record.ClockIn.Format("2006-01-02"),
		ClockIn:    record.ClockIn.Format("15:04"),
		Latitude:   record.Latitude,
		Longitude:  record.Longitude,
		Duration:   "-",
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	if record.ClockOut != nil {
		resp.ClockOut = record.ClockOut.Format("15:04")
		hours := timeutil.RoundHours(timeutil.Elapsed(record.ClockIn, record.ClockOut))
		resp.Duration = fmt.Sprintf("%.1f", hours)
	}
	return resp
}

func mapRecordsToList(records []workrecord.WorkRecord) workrecord.ListWorkRecordResponse {
	list := workrecord.ListWorkRecordResponse{
		Data: make([]workrecord.WorkRecordResponse, 0, len(records)),
	}
	for _, record := range records {
		list.Data = append(list.Data, mapRecordToResponse(record))
	}
	return list
}
