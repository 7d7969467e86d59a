package fixtures

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/domain/holiday"
	"gopkg.in/yaml.v3"
)

// ==========================================
// DEFAULT PUBLIC HOLIDAYS
// ==========================================

// DefaultHolidays returns the built-in holiday calendar, keyed by year.
// Multi-day festivals are listed one entry per day.
func DefaultHolidays() map[int][]holiday.Holiday {
	return map[int][]holiday.Holiday{
		2025: {
			{Date: "2025-01-01", Name: "New Year's Day"},
			{Date: "2025-03-30", Name: "Ramadan Feast (Day 1)"},
			{Date: "2025-03-31", Name: "Ramadan Feast (Day 2)"},
			{Date: "2025-04-01", Name: "Ramadan Feast (Day 3)"},
			{Date: "2025-04-23", Name: "National Sovereignty and Children's Day"},
			{Date: "2025-05-01", Name: "Labour and Solidarity Day"},
			{Date: "2025-05-19", Name: "Commemoration of Atatürk, Youth and Sports Day"},
			{Date: "2025-06-06", Name: "Feast of Sacrifice (Day 1)"},
			{Date: "2025-06-07", Name: "Feast of Sacrifice (Day 2)"},
			{Date: "2025-06-08", Name: "Feast of Sacrifice (Day 3)"},
			{Date: "2025-06-09", Name: "Feast of Sacrifice (Day 4)"},
			{Date: "2025-07-15", Name: "Democracy and National Unity Day"},
			{Date: "2025-08-30", Name: "Victory Day"},
			{Date: "2025-10-29", Name: "Republic Day"},
		},
		2026: {
			{Date: "2026-01-01", Name: "New Year's Day"},
			{Date: "2026-03-20", Name: "Ramadan Feast (Day 1)"},
			{Date: "2026-03-21", Name: "Ramadan Feast (Day 2)"},
			{Date: "2026-03-22", Name: "Ramadan Feast (Day 3)"},
			{Date: "2026-04-23", Name: "National Sovereignty and Children's Day"},
			{Date: "2026-05-01", Name: "Labour and Solidarity Day"},
			{Date: "2026-05-19", Name: "Commemoration of Atatürk, Youth and Sports Day"},
			{Date: "2026-05-27", Name: "Feast of Sacrifice (Day 1)"},
			{Date: "2026-05-28", Name: "Feast of Sacrifice (Day 2)"},
			{Date: "2026-05-29", Name: "Feast of Sacrifice (Day 3)"},
			{Date: "2026-05-30", Name: "Feast of Sacrifice (Day 4)"},
			{Date: "2026-07-15", Name: "Democracy and National Unity Day"},
			{Date: "2026-08-30", Name: "Victory Day"},
			{Date: "2026-10-29", Name: "Republic Day"},
		},
	}
}

// LoadHolidayTable reads a YAML holiday file of the form
//
//	2025:
//	  - date: "2025-01-01"
//	    name: New Year's Day
//
// An empty path returns the built-in table.
func LoadHolidayTable(path string) (holiday.Table, error) {
	if path == "" {
		return holiday.NewTable(DefaultHolidays())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return holiday.Table{}, fmt.Errorf("read holiday file: %w", err)
	}

	var entries map[int][]holiday.Holiday
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return holiday.Table{}, fmt.Errorf("parse holiday file %s: %w", path, err)
	}

	table, err := holiday.NewTable(entries)
	if err != nil {
		return holiday.Table{}, fmt.Errorf("invalid holiday file %s: %w", path, err)
	}
	return table, nil
}
