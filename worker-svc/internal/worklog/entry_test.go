package worklog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitesupply/upstream"
)

func validEntry() Entry {
	return Entry{
		Date:      "2026-08-30",
		Project:   "A案場",
		Term:      "配管工程",
		StartTime: "08:00",
		EndTime:   "17:30",
		Content:   "三樓配管完成，明日進行壓接",
		User:      "王大明",
	}
}

func TestEntry_ValidateFillsTimeSlot(t *testing.T) {
	entry := validEntry()
	assert.NoError(t, entry.Validate())
	assert.Equal(t, "08:00-17:30", entry.TimeSlot)
}

func TestEntry_ValidateMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Entry)
	}{
		{"no_date", func(e *Entry) { e.Date = "" }},
		{"no_project", func(e *Entry) { e.Project = "" }},
		{"no_term", func(e *Entry) { e.Term = "" }},
		{"no_start", func(e *Entry) { e.StartTime = "" }},
		{"no_end", func(e *Entry) { e.EndTime = "" }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			entry := validEntry()
			testCase.mutate(&entry)
			assert.ErrorIs(t, entry.Validate(), ErrMissingFields)
		})
	}
}

func TestEntry_ValidateTimeRange(t *testing.T) {
	entry := validEntry()
	entry.StartTime = "17:30"
	entry.EndTime = "08:00"
	assert.ErrorIs(t, entry.Validate(), ErrBadTimeRange)

	entry = validEntry()
	entry.EndTime = entry.StartTime
	assert.ErrorIs(t, entry.Validate(), ErrBadTimeRange)

	// An overnight shift closes at midnight.
	entry = validEntry()
	entry.StartTime = "18:00"
	entry.EndTime = "00:00"
	assert.NoError(t, entry.Validate())
	assert.Equal(t, "18:00-00:00", entry.TimeSlot)
}

func TestEntry_ValidateContent(t *testing.T) {
	entry := validEntry()
	entry.Content = "   "
	assert.ErrorIs(t, entry.Validate(), ErrMissingContent)

	// The untouched placeholder does not count as content.
	entry = validEntry()
	entry.Content = DefaultContent
	assert.ErrorIs(t, entry.Validate(), ErrMissingContent)
}

func TestTimeOptions(t *testing.T) {
	options := TimeOptions()

	assert.Len(t, options, 37)
	assert.Equal(t, "06:00", options[0])
	assert.Equal(t, "06:30", options[1])
	assert.Equal(t, "23:30", options[35])
	assert.Equal(t, "00:00", options[36])
}

func testRows() []upstream.ProjectRow {
	return []upstream.ProjectRow{
		{ProjectName: "A案場", Term: "配管工程", EngineeringItem: "一期"},
		{ProjectName: "A案場", Term: "配線工程", EngineeringItem: "一期"},
		{ProjectName: "A案場", Term: "配管工程", EngineeringItem: "二期"},
		{ProjectName: "B案場", Term: "拆除工程", EngineeringItem: ""},
		{ProjectName: "", Term: "無名", EngineeringItem: ""},
	}
}

func TestProjectNames_Distinct(t *testing.T) {
	assert.Equal(t, []string{"A案場", "B案場"}, ProjectNames(testRows()))
}

func TestTermsFor(t *testing.T) {
	assert.Equal(t,
		[]string{"配管工程 - 一期", "配線工程 - 一期", "配管工程 - 二期"},
		TermsFor(testRows(), "A案場"))
	assert.Equal(t, []string{"拆除工程"}, TermsFor(testRows(), "B案場"))
	assert.Empty(t, TermsFor(testRows(), "C案場"))
}
