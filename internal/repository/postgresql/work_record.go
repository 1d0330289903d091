package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/albaworks/timeclock-backend-go/internal/domain/workrecord"
	"github.com/albaworks/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workRecordRepositoryImpl struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) workrecord.WorkRecordRepository {
	return &workRecordRepositoryImpl{db: db}
}

func (r *workRecordRepositoryImpl) Create(ctx context.Context, record workrecord.WorkRecord) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_records (employee_id, clock_in, clock_out, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, clock_in, clock_out, latitude, longitude, created_at, updated_at
	`

	var created workrecord.WorkRecord
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.ClockIn, record.ClockOut, record.Latitude, record.Longitude,
	).Scan(
		&created.ID, &created.EmployeeID, &created.ClockIn, &created.ClockOut,
		&created.Latitude, &created.Longitude, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return workrecord.WorkRecord{}, fmt.Errorf("failed to create work record: %w", err)
	}

	return created, nil
}

func (r *workRecordRepositoryImpl) GetByID(ctx context.Context, id string) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.employee_id, w.clock_in, w.clock_out, w.latitude, w.longitude,
			w.created_at, w.updated_at, e.name
		FROM work_records w
		LEFT JOIN employees e ON e.id = w.employee_id
		WHERE w.id = $1
	`

	var record workrecord.WorkRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.ClockIn, &record.ClockOut,
		&record.Latitude, &record.Longitude, &record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workrecord.WorkRecord{}, workrecord.ErrWorkRecordNotFound
		}
		return workrecord.WorkRecord{}, fmt.Errorf("failed to get work record by id: %w", err)
	}

	return record, nil
}

func (r *workRecordRepositoryImpl) Update(ctx context.Context, record workrecord.WorkRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_records
		SET clock_in = $1, clock_out = $2, latitude = $3, longitude = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		record.ClockIn, record.ClockOut, record.Latitude, record.Longitude, record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update work record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workrecord.ErrWorkRecordNotFound
	}

	return nil
}

func (r *workRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workrecord.ErrWorkRecordNotFound
	}

	return nil
}

func (r *workRecordRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, clock_in, clock_out, latitude, longitude, created_at, updated_at
		FROM work_records
		WHERE employee_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var record workrecord.WorkRecord
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&record.ID, &record.EmployeeID, &record.ClockIn, &record.ClockOut,
		&record.Latitude, &record.Longitude, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workrecord.WorkRecord{}, workrecord.ErrNoOpenShift
		}
		return workrecord.WorkRecord{}, fmt.Errorf("failed to get open shift: %w", err)
	}

	return record, nil
}

func (r *workRecordRepositoryImpl) ListByRange(ctx context.Context, rng workrecord.DateRange) ([]workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.employee_id, w.clock_in, w.clock_out, w.latitude, w.longitude,
			w.created_at, w.updated_at, e.name
		FROM work_records w
		LEFT JOIN employees e ON e.id = w.employee_id
		WHERE w.clock_in >= $1 AND w.clock_in <= $2
		ORDER BY w.clock_in DESC
	`

	rows, err := q.Query(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}
	defer rows.Close()

	return scanWorkRecords(rows)
}

func (r *workRecordRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, rng workrecord.DateRange) ([]workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.employee_id, w.clock_in, w.clock_out, w.latitude, w.longitude,
			w.created_at, w.updated_at, e.name
		FROM work_records w
		LEFT JOIN employees e ON e.id = w.employee_id
		WHERE w.employee_id = $1 AND w.clock_in >= $2 AND w.clock_in <= $3
		ORDER BY w.clock_in DESC
	`

	rows, err := q.Query(ctx, query, employeeID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list work records for employee: %w", err)
	}
	defer rows.Close()

	return scanWorkRecords(rows)
}

func scanWorkRecords(rows pgx.Rows) ([]workrecord.WorkRecord, error) {
	var records []workrecord.WorkRecord
	for rows.Next() {
		var record workrecord.WorkRecord
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.ClockIn, &record.ClockOut,
			&record.Latitude, &record.Longitude, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
