package domain

import "time"

// Day is a shift definition within a position: a span of calendar
// days, a daily working window and the headcount/rate for each day.
// Dates are stored as "2006-01-02" and times as "15:04:05", the same
// formats the write API accepts.
type Day struct {
	ID          int64    `json:"id"`
	PositionID  int64    `json:"positionID"`
	FromDate    string   `json:"fromDate"`
	ToDate      string   `json:"toDate"`
	FromTime    string   `json:"fromTime"`
	ToTime      string   `json:"toTime"`
	Quantity    int32    `json:"quantity"`
	HoursPerOne *float64 `json:"hoursPerOne"`
	HourlyRate  *float64 `json:"hourlyRate"`
	Version     int32    `json:"-"`

	Details []*DayDetail `json:"details,omitempty"`

	// HireCount is a derived column, only set on listing endpoints.
	HireCount int64 `json:"hireCount,omitempty"`
}

// DayDetail is one concrete per-calendar-day slot expanded from a
// Day. Rows are regenerated wholesale whenever the owning Day's dates
// or window change; they are never updated in place.
type DayDetail struct {
	ID            int64     `json:"id"`
	DayID         int64     `json:"dayID"`
	FromTimestamp time.Time `json:"fromTimestamp"`
	ToTimestamp   time.Time `json:"toTimestamp"`
}
