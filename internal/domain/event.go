package domain

import "time"

type EventStatus string

const (
	EventStatusOpen     EventStatus = "O"
	EventStatusClosed   EventStatus = "CL"
	EventStatusCanceled EventStatus = "CA"
)

type Event struct {
	ID        int64       `json:"id"`
	ManagerID int64       `json:"managerID"`
	Name      string      `json:"name"`
	Overview  string      `json:"overview"`
	Location  string      `json:"location"`
	Image     string      `json:"image"`
	Status    EventStatus `json:"status"`
	FromDate  time.Time   `json:"fromDate"`
	ToDate    time.Time   `json:"toDate"`
	CreatedAt time.Time   `json:"createdAt"`
	Version   int32       `json:"-"`

	// Positions is populated when the event is loaded as a graph.
	Positions []*Position `json:"positions,omitempty"`

	// HireCount is a derived column, only set on listing endpoints.
	HireCount int64 `json:"hireCount,omitempty"`
}

type Position struct {
	ID              int64     `json:"id"`
	EventID         int64     `json:"eventID"`
	Name            string    `json:"name"`
	Notes           string    `json:"notes"`
	ArrivalDate     time.Time `json:"arrivalDate"`
	EndDate         time.Time `json:"endDate"`
	JobInstructions string    `json:"jobInstructions"`

	Days []*Day `json:"days,omitempty"`
}
