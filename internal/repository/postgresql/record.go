package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/record"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

const recordColumns = `id, project_id, employee_id, date, hours, description, created_at, updated_at`

func scanRecord(row pgx.Row) (record.Record, error) {
	var rec record.Record
	err := row.Scan(
		&rec.ID,
		&rec.ProjectID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.Hours,
		&rec.Description,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// Create implements record.RecordRepository.
func (r *recordRepositoryImpl) Create(ctx context.Context, rec record.Record) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return record.Record{}, err
	}

	query := `
		INSERT INTO records (id, project_id, employee_id, date, hours, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + recordColumns

	created, err := scanRecord(q.QueryRow(ctx, query,
		id, rec.ProjectID, rec.EmployeeID, rec.Date, rec.Hours, rec.Description,
	))
	if err != nil {
		return record.Record{}, fmt.Errorf("failed to create record: %w", err)
	}
	return created, nil
}

// GetByID implements record.RecordRepository.
func (r *recordRepositoryImpl) GetByID(ctx context.Context, id string) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanRecord(q.QueryRow(ctx, `SELECT `+recordColumns+` FROM records WHERE id = $1`, id))
	if err != nil {
		return record.Record{}, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

// List implements record.RecordRepository.
func (r *recordRepositoryImpl) List(ctx context.Context, filter record.RecordFilter) ([]record.Record, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	argIdx := 1

	if filter.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", argIdx))
		args = append(args, *filter.ProjectID)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if from, to, ok := filter.MonthRange(); ok {
		conditions = append(conditions, fmt.Sprintf("date >= $%d AND date < $%d", argIdx, argIdx+1))
		args = append(args, from, to)
	}

	query := `SELECT ` + recordColumns + ` FROM records`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY date, created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update implements record.RecordRepository.
func (r *recordRepositoryImpl) Update(ctx context.Context, req record.UpdateRecordRequest) (record.Record, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.ProjectID != nil {
		updates = append(updates, fmt.Sprintf("project_id = $%d", argIdx))
		args = append(args, *req.ProjectID)
		argIdx++
	}
	if req.Date != nil {
		updates = append(updates, fmt.Sprintf("date = $%d::date", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if hours := req.HoursDecimal(); hours != nil {
		updates = append(updates, fmt.Sprintf("hours = $%d", argIdx))
		args = append(args, *hours)
		argIdx++
	}
	if req.Description != nil {
		updates = append(updates, fmt.Sprintf("description = NULLIF($%d, '')", argIdx))
		args = append(args, *req.Description)
		argIdx++
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE records
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(updates, ", "), argIdx, recordColumns)

	rec, err := scanRecord(q.QueryRow(ctx, query, args...))
	if err != nil {
		return record.Record{}, fmt.Errorf("failed to update record: %w", err)
	}
	return rec, nil
}

// Delete implements record.RecordRepository.
func (r *recordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountByEmployee implements record.RecordRepository.
func (r *recordRepositoryImpl) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM records WHERE employee_id = $1`, employeeID)
}

// CountByProject implements record.RecordRepository.
func (r *recordRepositoryImpl) CountByProject(ctx context.Context, projectID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM records WHERE project_id = $1`, projectID)
}

func (r *recordRepositoryImpl) count(ctx context.Context, query string, arg string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, query, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}
