package holiday

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
)

// Holiday is a single public holiday on a calendar date (YYYY-MM-DD).
type Holiday struct {
	Date string `json:"date" yaml:"date"`
	Name string `json:"name" yaml:"name"`
}

// Table holds holidays grouped by year. It is read-only after NewTable.
type Table struct {
	byYear map[int][]Holiday
	byDate map[string]Holiday
}

// NewTable builds a Table from a year -> holidays mapping.
// Entries keep their declaration order within a year.
func NewTable(entries map[int][]Holiday) (Table, error) {
	t := Table{
		byYear: make(map[int][]Holiday, len(entries)),
		byDate: make(map[string]Holiday),
	}

	for year, holidays := range entries {
		list := make([]Holiday, 0, len(holidays))
		for _, h := range holidays {
			if !strings.HasPrefix(h.Date, strconv.Itoa(year)+"-") {
				return Table{}, &DateError{Year: year, Date: h.Date}
			}
			if _, dup := t.byDate[h.Date]; dup {
				return Table{}, &DateError{Year: year, Date: h.Date, Duplicate: true}
			}
			t.byDate[h.Date] = h
			list = append(list, h)
		}
		t.byYear[year] = list
	}

	return t, nil
}

// ForMonth returns the holidays whose date starts with monthKey (YYYY-MM).
// Any other key yields an empty list.
func (t Table) ForMonth(monthKey string) []Holiday {
	if !validator.IsValidMonthKey(monthKey) {
		return []Holiday{}
	}
	year, _ := strconv.Atoi(monthKey[:4])

	result := []Holiday{}
	for _, h := range t.byYear[year] {
		if strings.HasPrefix(h.Date, monthKey+"-") {
			result = append(result, h)
		}
	}
	return result
}

// ForDate looks up a holiday by its exact date string.
func (t Table) ForDate(date string) (Holiday, bool) {
	h, ok := t.byDate[date]
	return h, ok
}

// Years returns the configured years in ascending order.
func (t Table) Years() []int {
	years := make([]int, 0, len(t.byYear))
	for y := range t.byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Len returns the total number of holidays across all years.
func (t Table) Len() int {
	return len(t.byDate)
}

// ForYear returns the holidays configured for year.
func (t Table) ForYear(year int) []Holiday {
	return append([]Holiday{}, t.byYear[year]...)
}
