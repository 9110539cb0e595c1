package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/showtimestaff/event-staffing/backend/internal/domain"
)

func (h *Handler) ApplyForJob(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	event := r.Context().Value(EventCtx).(*domain.Event)

	if event.Status != domain.EventStatusOpen {
		h.errorResponse(w, r, "this event is no longer accepting applications")
		return
	}

	var req struct {
		PositionID  int64 `json:"positionID" validate:"required"`
		DayID       int64 `json:"dayID" validate:"required"`
		DayDetailID int64 `json:"dayDetailID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	day, err := h.repository.GetDayByID(req.DayID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	position, err := h.repository.GetPositionByID(day.PositionID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if position.EventID != event.ID || position.ID != req.PositionID {
		h.errorResponse(w, r, "shift does not belong to this event")
		return
	}

	job := &domain.Job{
		UserID:      myInfo.ID,
		EventID:     event.ID,
		PositionID:  req.PositionID,
		DayID:       req.DayID,
		DayDetailID: req.DayDetailID,
		Status:      domain.JobStatusApplied,
	}

	if err := h.repository.CreateJob(job); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "application submitted", job)
}

func (h *Handler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	jobID, err := parseIDParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "invalid job id")
		return
	}

	var req struct {
		Status domain.JobStatus `json:"status" validate:"required,oneof=H R COM CA"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	job, err := h.repository.GetJobByID(jobID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "job not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	event, err := h.repository.GetEventByID(job.EventID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if myInfo.Role != domain.RoleAdmin && event.ManagerID != myInfo.ID {
		h.errorResponse(w, r, "you do not own this event")
		return
	}

	// hiring is capped by the day's declared headcount per slot
	if req.Status == domain.JobStatusHired {
		day, err := h.repository.GetDayByID(job.DayID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		hired, err := h.repository.CountHiredJobsForDayDetail(job.DayDetailID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}

		if hired >= int64(day.Quantity) {
			h.errorResponse(w, r, "this slot is fully staffed")
			return
		}
	}

	job.Status = req.Status
	if err := h.repository.UpdateJobStatus(job); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.notifyUsers([]int64{job.UserID}, event, myInfo.ID, domain.NotificationTypeJobStatus,
		"Application Update",
		fmt.Sprintf("Your application for the event %s has been updated.", event.Name))

	h.successResponse(w, r, "job status updated", job)
}
