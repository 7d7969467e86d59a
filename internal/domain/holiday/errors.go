package holiday

import "fmt"

// DateError reports a holiday entry that does not belong to its year or repeats a date.
type DateError struct {
	Year      int
	Date      string
	Duplicate bool
}

func (e *DateError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("holiday %s is declared twice", e.Date)
	}
	return fmt.Sprintf("holiday %s is not in year %d", e.Date, e.Year)
}
