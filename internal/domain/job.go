package domain

import "time"

type JobStatus string

const (
	JobStatusApplied   JobStatus = "A"
	JobStatusHired     JobStatus = "H"
	JobStatusCompleted JobStatus = "COM"
	JobStatusRejected  JobStatus = "R"
	JobStatusCanceled  JobStatus = "CA"
)

// Job is a hire record linking a crew member to a concrete slot. It
// holds non-owning references: deleting the slot deletes its jobs.
type Job struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userID"`
	EventID     int64     `json:"eventID"`
	PositionID  int64     `json:"positionID"`
	DayID       int64     `json:"dayID"`
	DayDetailID int64     `json:"dayDetailID"`
	Status      JobStatus `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
