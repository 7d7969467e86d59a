package attendance

import (
	"testing"

	"github.com/cmlabs-hris/teamtime-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDayRequest_Validate(t *testing.T) {
	ok := SaveDayRequest{EmployeeID: "e1", Month: "2025-06", Day: 30, Status: StatusPresent, StartTime: "09:00", EndTime: "18:00"}
	assert.NoError(t, ok.Validate())

	empty := SaveDayRequest{EmployeeID: "e1", Month: "2025-06", Day: 1}
	assert.NoError(t, empty.Validate())

	bad := SaveDayRequest{Month: "2025-6", Day: 1, Status: "late", StartTime: "9:00", EndTime: "24:00"}
	err := bad.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "month")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "start_time")
	assert.Contains(t, fields, "end_time")
}

func TestSaveDayRequest_ValidateDayRange(t *testing.T) {
	req := SaveDayRequest{EmployeeID: "e1", Month: "2025-02", Day: 29}
	err := req.Validate()

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "day must be between 1 and 28", errs.ToMap()["day"])
}

func TestSaveDayRequest_DayRecordKeepsCallerOvertime(t *testing.T) {
	ot := 9.0
	req := SaveDayRequest{Status: StatusPresent, StartTime: "09:00", EndTime: "19:00", Overtime: &ot}

	// The caller's value passes through here; MergeDayIntoMonth replaces it.
	assert.Equal(t, 9.0, req.DayRecord().Overtime)
}
