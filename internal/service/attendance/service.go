package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/teamtime-backend-go/internal/service/scope"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	tx       database.Transactor
	holidays holiday.Table
	attendance.AttendanceRepository
	employee.EmployeeRepository
	projectRepo project.ProjectRepository
}

func NewAttendanceService(
	tx database.Transactor,
	holidays holiday.Table,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	projectRepository project.ProjectRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		holidays:             holidays,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		projectRepo:          projectRepository,
	}
}

// ensureEmployee checks the employee exists and lies in the caller's project.
// Out-of-scope employees read as missing; writes to them are denied.
func (a *AttendanceServiceImpl) ensureEmployee(ctx context.Context, employeeID string, write bool) error {
	ps, err := scope.Resolve(ctx, a.projectRepo)
	if err != nil {
		return err
	}

	e, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if !ps.Allows(e.ProjectID) {
		if write {
			return project.ErrProjectAccessDenied
		}
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// GetMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonth(ctx context.Context, employeeID string, month string) (attendance.MonthResponse, error) {
	year, m, err := attendance.ParseMonthKey(month)
	if err != nil {
		return attendance.MonthResponse{}, err
	}

	if err := a.ensureEmployee(ctx, employeeID, false); err != nil {
		return attendance.MonthResponse{}, err
	}

	row, err := a.AttendanceRepository.GetByEmployeeAndMonth(ctx, employeeID, month)
	if err != nil {
		return attendance.MonthResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	// A month that was never saved reads as empty
	var monthRecord attendance.MonthRecord
	if row != nil {
		monthRecord = row.Data[month]
	}
	days := monthRecord.Days
	if days == nil {
		days = map[int]attendance.DayRecord{}
	}

	return attendance.MonthResponse{
		EmployeeID: employeeID,
		Month:      month,
		Days:       days,
		Cells:      a.buildCells(year, m, month, days),
		Holidays:   a.holidays.ForMonth(month),
		Summary:    attendance.Summarize(monthRecord),
	}, nil
}

func (a *AttendanceServiceImpl) buildCells(year int, m time.Month, month string, days map[int]attendance.DayRecord) []attendance.CalendarCell {
	grid := attendance.BuildCalendarGrid(year, m)
	cells := make([]attendance.CalendarCell, 0, len(grid))

	for _, day := range grid {
		if day == 0 {
			cells = append(cells, attendance.CalendarCell{})
			continue
		}

		date := attendance.DateOf(month, day)
		weekday := time.Date(year, m, day, 0, 0, 0, 0, time.UTC).Weekday()
		cell := attendance.CalendarCell{
			Day:       day,
			Date:      date,
			Weekday:   weekday.String(),
			IsWeekend: weekday == time.Saturday || weekday == time.Sunday,
		}
		if h, ok := a.holidays.ForDate(date); ok {
			cell.Holiday = &h
		}
		if rec, ok := days[day]; ok {
			cell.Record = &rec
		}
		cells = append(cells, cell)
	}
	return cells
}

// SaveDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SaveDay(ctx context.Context, req attendance.SaveDayRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	if err := a.ensureEmployee(ctx, req.EmployeeID, true); err != nil {
		return attendance.DayResponse{}, err
	}

	var saved attendance.DayRecord
	err := a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		row, err := a.AttendanceRepository.LockMonth(txCtx, req.EmployeeID, req.Month)
		if err != nil {
			return fmt.Errorf("failed to lock attendance: %w", err)
		}

		merged, err := attendance.MergeDayIntoMonth(row.Data, req.Month, req.Day, req.DayRecord())
		if err != nil {
			return err
		}

		if _, err := a.AttendanceRepository.Upsert(txCtx, attendance.Attendance{
			EmployeeID: req.EmployeeID,
			Month:      req.Month,
			Data:       merged,
		}); err != nil {
			return fmt.Errorf("failed to save attendance: %w", err)
		}

		saved = merged[req.Month].Days[req.Day]
		return nil
	})
	if err != nil {
		return attendance.DayResponse{}, err
	}

	return attendance.DayResponse{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Day:        req.Day,
		Date:       attendance.DateOf(req.Month, req.Day),
		Record:     saved,
	}, nil
}

// ClearDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClearDay(ctx context.Context, req attendance.ClearDayRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := a.ensureEmployee(ctx, req.EmployeeID, true); err != nil {
		return err
	}

	return a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		row, err := a.AttendanceRepository.GetByEmployeeAndMonthForUpdate(txCtx, req.EmployeeID, req.Month)
		if err != nil {
			return fmt.Errorf("failed to lock attendance: %w", err)
		}
		if row == nil {
			return attendance.ErrAttendanceNotFound
		}

		trimmed, err := attendance.RemoveDayFromMonth(row.Data, req.Month, req.Day)
		if err != nil {
			return err
		}

		if _, err := a.AttendanceRepository.Upsert(txCtx, attendance.Attendance{
			EmployeeID: req.EmployeeID,
			Month:      req.Month,
			Data:       trimmed,
		}); err != nil {
			return fmt.Errorf("failed to save attendance: %w", err)
		}
		return nil
	})
}

// ListStatuses implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListStatuses() []attendance.StatusResponse {
	statuses := attendance.Statuses()
	result := make([]attendance.StatusResponse, 0, len(statuses))
	for _, st := range statuses {
		result = append(result, attendance.StatusResponse{
			Value: st,
			Label: st.Label(),
			Color: st.Color(),
		})
	}
	return result
}

// ListHolidays implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListHolidays(month string) ([]holiday.Holiday, error) {
	if _, _, err := attendance.ParseMonthKey(month); err != nil {
		return nil, err
	}
	return a.holidays.ForMonth(month), nil
}
