package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, month, data, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var (
		att  attendance.Attendance
		data []byte
	)
	if err := row.Scan(&att.ID, &att.EmployeeID, &att.Month, &data, &att.CreatedAt, &att.UpdatedAt); err != nil {
		return attendance.Attendance{}, err
	}
	att.Data = attendance.Blob{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &att.Data); err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to decode attendance %s: %w", att.ID, err)
		}
	}
	return att, nil
}

func (a *attendanceRepository) getByEmployeeAndMonth(ctx context.Context, employeeID, month string, forUpdate bool) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND month = $2
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &att, nil
}

// GetByEmployeeAndMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*attendance.Attendance, error) {
	return a.getByEmployeeAndMonth(ctx, employeeID, month, false)
}

// GetByEmployeeAndMonthForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndMonthForUpdate(ctx context.Context, employeeID string, month string) (*attendance.Attendance, error) {
	return a.getByEmployeeAndMonth(ctx, employeeID, month, true)
}

// LockMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) LockMonth(ctx context.Context, employeeID string, month string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := newID()
	if err != nil {
		return attendance.Attendance{}, err
	}

	// Waits on a concurrent uncommitted insert of the same key
	if _, err := q.Exec(ctx, `
		INSERT INTO attendance (id, employee_id, month, data, created_at, updated_at)
		VALUES ($1, $2, $3, '{}'::jsonb, NOW(), NOW())
		ON CONFLICT (employee_id, month) DO NOTHING
	`, id, employeeID, month); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to materialize attendance: %w", err)
	}

	att, err := a.getByEmployeeAndMonth(ctx, employeeID, month, true)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if att == nil {
		return attendance.Attendance{}, fmt.Errorf("attendance row for %s/%s vanished after insert", employeeID, month)
	}
	return *att, nil
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	data, err := json.Marshal(att.Data)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to encode attendance: %w", err)
	}

	id, err := newID()
	if err != nil {
		return attendance.Attendance{}, err
	}

	query := `
		INSERT INTO attendance (id, employee_id, month, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (employee_id, month)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
		RETURNING ` + attendanceColumns

	saved, err := scanAttendance(q.QueryRow(ctx, query, id, att.EmployeeID, att.Month, data))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return saved, nil
}

func (a *attendanceRepository) list(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return result, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return a.list(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE employee_id = $1
		ORDER BY month
	`, employeeID)
}

// ListAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	return a.list(ctx, `
		SELECT `+attendanceColumns+`
		FROM attendance
		ORDER BY employee_id, month
	`)
}
