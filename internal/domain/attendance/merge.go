package attendance

import (
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

func checkDay(monthKey string, day int) error {
	year, month, err := ParseMonthKey(monthKey)
	if err != nil {
		return err
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%w: %d for %s", ErrInvalidDay, day, monthKey)
	}
	return nil
}

// MergeDayIntoMonth returns a copy of blob with rec stored as the given day of
// monthKey. Overtime is recomputed from rec's times. blob is left untouched.
func MergeDayIntoMonth(blob Blob, monthKey string, day int, rec DayRecord) (Blob, error) {
	if err := checkDay(monthKey, day); err != nil {
		return nil, err
	}

	rec.Overtime = CalculateOvertime(rec.StartTime, rec.EndTime)

	out := maps.Clone(blob)
	if out == nil {
		out = Blob{}
	}

	days := maps.Clone(blob[monthKey].Days)
	if days == nil {
		days = make(map[int]DayRecord, 1)
	}
	days[day] = rec

	out[monthKey] = MonthRecord{Month: monthKey, Days: days}
	return out, nil
}

// RemoveDayFromMonth returns a copy of blob without the given day.
func RemoveDayFromMonth(blob Blob, monthKey string, day int) (Blob, error) {
	if err := checkDay(monthKey, day); err != nil {
		return nil, err
	}
	if _, ok := blob[monthKey].Days[day]; !ok {
		return nil, ErrDayNotFound
	}

	out := maps.Clone(blob)
	days := maps.Clone(blob[monthKey].Days)
	delete(days, day)
	out[monthKey] = MonthRecord{Month: monthKey, Days: days}
	return out, nil
}

// Summarize totals overtime and counts statuses for a month.
func Summarize(m MonthRecord) MonthSummary {
	summary := MonthSummary{StatusCounts: make(map[Status]int)}
	total := decimal.Zero

	for _, d := range m.Days {
		summary.RecordedDays++
		if d.Status != "" {
			summary.StatusCounts[d.Status]++
		}
		total = total.Add(decimal.NewFromFloat(d.Overtime))
	}

	summary.TotalOvertime = total.Round(overtimeDecimalPlaces).InexactFloat64()
	return summary
}
