// Package worklog covers the daily work-log flow: entry validation, the
// half-hour time grid, per-user drafts and photo handling.
package worklog

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultContent is the placeholder the entry form starts with. Submitting it
// unchanged counts as empty content.
const DefaultContent = "今日施作內容"

var (
	ErrMissingFields  = errors.New("日期、專案、工程項目與時段皆為必填")
	ErrBadTimeRange   = errors.New("結束時間必須晚於開始時間")
	ErrMissingContent = errors.New("請填寫施作內容")
)

// Entry is one work-log record. TimeSlot is the wire form "start-end"; the
// split fields exist only while editing. Term carries the combined
// "term - engineeringItem" label picked from the project options.
type Entry struct {
	ID          string   `json:"id,omitempty"`
	Date        string   `json:"date"`
	Project     string   `json:"project"`
	Term        string   `json:"term"`
	Distinction string   `json:"distinction,omitempty"`
	Floor       string   `json:"floor,omitempty"`
	StartTime   string   `json:"startTime,omitempty"`
	EndTime     string   `json:"endTime,omitempty"`
	TimeSlot    string   `json:"timeSlot"`
	IsCompleted bool     `json:"isCompleted"`
	Content     string   `json:"content"`
	User        string   `json:"user"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
	FolderURL   string   `json:"folderUrl,omitempty"`
}

// Validate checks the entry and fills TimeSlot from the split times. HH:MM
// strings compare correctly as text, so the range check is lexicographic;
// a 00:00 end means the shift ran past midnight and is always accepted.
func (e *Entry) Validate() error {
	if e.Date == "" || e.Project == "" || e.Term == "" || e.StartTime == "" || e.EndTime == "" {
		return ErrMissingFields
	}
	if e.EndTime != "00:00" && e.EndTime <= e.StartTime {
		return ErrBadTimeRange
	}
	content := strings.TrimSpace(e.Content)
	if content == "" || content == DefaultContent {
		return ErrMissingContent
	}
	e.TimeSlot = e.StartTime + "-" + e.EndTime
	return nil
}

// TimeOptions is the selectable grid: every half hour from 06:00 to 23:30,
// plus midnight at the end so an overnight shift can pick 00:00 as its close.
func TimeOptions() []string {
	options := make([]string, 0, 37)
	for hour := 6; hour <= 23; hour++ {
		options = append(options, fmt.Sprintf("%02d:00", hour), fmt.Sprintf("%02d:30", hour))
	}
	return append(options, "00:00")
}
