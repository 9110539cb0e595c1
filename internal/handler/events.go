package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/showtimestaff/event-staffing/backend/internal/domain"
	"github.com/showtimestaff/event-staffing/backend/internal/repository"
	"github.com/showtimestaff/event-staffing/backend/internal/schedule"
)

type dayRequest struct {
	ID          int64    `json:"id"`
	FromDate    string   `json:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate      string   `json:"toDate" validate:"required,datetime=2006-01-02"`
	FromTime    string   `json:"fromTime" validate:"required,datetime=15:04:05"`
	ToTime      string   `json:"toTime" validate:"required,datetime=15:04:05"`
	Quantity    int32    `json:"quantity" validate:"required,min=1"`
	HoursPerOne *float64 `json:"hoursPerOne"`
	HourlyRate  *float64 `json:"hourlyRate"`
}

type positionRequest struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name" validate:"required"`
	Notes           string       `json:"notes"`
	ArrivalDate     time.Time    `json:"arrivalDate" validate:"required"`
	EndDate         time.Time    `json:"endDate" validate:"required"`
	JobInstructions string       `json:"jobInstructions"`
	Days            []dayRequest `json:"days" validate:"dive"`
}

// expandDay turns one day request into expanded detail rows, parsing
// the raw date and time strings on the way.
func expandDay(req dayRequest) ([]schedule.Slot, error) {
	dateRange, err := schedule.ParseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}
	window, err := schedule.ParseWindow(req.FromTime, req.ToTime)
	if err != nil {
		return nil, err
	}
	return schedule.Expand(dateRange, window), nil
}

func detailsFromSlots(slots []schedule.Slot) []*domain.DayDetail {
	details := make([]*domain.DayDetail, 0, len(slots))
	for _, slot := range slots {
		details = append(details, &domain.DayDetail{
			FromTimestamp: slot.From,
			ToTimestamp:   slot.To,
		})
	}
	return details
}

// checkOverlap runs the candidate slots against the manager's other
// open bookings at the location. When rejection is not enforced the
// conflict is only logged, matching how overlapping bookings have
// historically been accepted.
func (h *Handler) checkOverlap(candidates, existing []schedule.Slot, managerID int64, location string) error {
	if !schedule.Conflicts(candidates, existing) {
		return nil
	}

	if h.config.Scheduling.EnforceOverlapRejection {
		return schedule.ErrSchedulingOverlap
	}

	slog.Warn("overlapping booking accepted", "managerID", managerID, "location", location)
	return nil
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name      string            `json:"name" validate:"required"`
		Overview  string            `json:"overview"`
		Location  string            `json:"location" validate:"required"`
		Image     string            `json:"image"`
		FromDate  time.Time         `json:"fromDate" validate:"required"`
		ToDate    time.Time         `json:"toDate" validate:"required"`
		Positions []positionRequest `json:"positions" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.ToDate.Before(req.FromDate) {
		h.errorResponse(w, r, "the event end date cannot be before its start date")
		return
	}

	existing, err := h.repository.GetOpenEventSlots(myInfo.ID, req.Location, 0)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	event := &domain.Event{
		ManagerID: myInfo.ID,
		Name:      req.Name,
		Overview:  req.Overview,
		Location:  req.Location,
		Image:     req.Image,
		Status:    domain.EventStatusOpen,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
	}

	for _, posReq := range req.Positions {
		position := &domain.Position{
			Name:            posReq.Name,
			Notes:           posReq.Notes,
			ArrivalDate:     posReq.ArrivalDate,
			EndDate:         posReq.EndDate,
			JobInstructions: posReq.JobInstructions,
		}

		for _, dayReq := range posReq.Days {
			slots, err := expandDay(dayReq)
			if err != nil {
				h.badRequest(w, r, err)
				return
			}

			if err := h.checkOverlap(slots, existing, myInfo.ID, req.Location); err != nil {
				h.errorResponse(w, r, err.Error())
				return
			}

			position.Days = append(position.Days, &domain.Day{
				FromDate:    dayReq.FromDate,
				ToDate:      dayReq.ToDate,
				FromTime:    dayReq.FromTime,
				ToTime:      dayReq.ToTime,
				Quantity:    dayReq.Quantity,
				HoursPerOne: dayReq.HoursPerOne,
				HourlyRate:  dayReq.HourlyRate,
				Details:     detailsFromSlots(slots),
			})
		}

		event.Positions = append(event.Positions, position)
	}

	if err := h.repository.CreateEventGraph(event); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// billing summary mail for the manager; failure to queue it must
	// not fail the already committed event
	if err := h.publishMail(billingMail(myInfo, event)); err != nil {
		slog.Error("failed to queue billing mail", "eventID", event.ID, "error", err)
	}

	h.successResponse(w, r, "event created", event)
}

func billingMail(manager *domain.User, event *domain.Event) domain.MailMessage {
	data := domain.EventBillingMailData{
		ManagerName: manager.FullName,
		EventName:   event.Name,
		Location:    event.Location,
		FromDate:    event.FromDate.Format("2006-01-02"),
		ToDate:      event.ToDate.Format("2006-01-02"),
	}

	for _, position := range event.Positions {
		bp := domain.BillingPosition{Name: position.Name}
		for _, day := range position.Days {
			bp.Days = append(bp.Days, domain.BillingDay{
				FromDate:   day.FromDate,
				ToDate:     day.ToDate,
				FromTime:   day.FromTime,
				ToTime:     day.ToTime,
				Quantity:   day.Quantity,
				HourlyRate: day.HourlyRate,
			})
		}
		data.Positions = append(data.Positions, bp)
	}

	return domain.MailMessage{
		Type: "event_billing",
		To:   manager.Email,
		Data: data,
	}
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.Event)

	graph, err := h.repository.GetEventGraph(event.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "event fetched", graph)
}

func (h *Handler) GetMyEvents(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	events, err := h.repository.GetEventsByManagerID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "events fetched", events)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	event := r.Context().Value(EventCtx).(*domain.Event)

	var req struct {
		Name            string            `json:"name" validate:"required"`
		Overview        string            `json:"overview"`
		Location        string            `json:"location" validate:"required"`
		Image           string            `json:"image"`
		FromDate        time.Time         `json:"fromDate" validate:"required"`
		ToDate          time.Time         `json:"toDate" validate:"required"`
		DeleteDays      []int64           `json:"deleteDays"`
		DeletePositions []int64           `json:"deletePositions"`
		Positions       []positionRequest `json:"positions" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	existing, err := h.repository.GetOpenEventSlots(myInfo.ID, req.Location, event.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	eventChanged := event.Location != req.Location ||
		!event.FromDate.Equal(req.FromDate) ||
		!event.ToDate.Equal(req.ToDate)

	upd := &repository.EventGraphUpdate{
		Event:             event,
		DeleteDayIDs:      req.DeleteDays,
		DeletePositionIDs: req.DeletePositions,
	}
	event.Name = req.Name
	event.Overview = req.Overview
	event.Location = req.Location
	event.Image = req.Image
	event.FromDate = req.FromDate
	event.ToDate = req.ToDate

	scheduleChanged := false

	for _, posReq := range req.Positions {
		pu := &repository.PositionUpsert{
			Position: &domain.Position{
				ID:              posReq.ID,
				EventID:         event.ID,
				Name:            posReq.Name,
				Notes:           posReq.Notes,
				ArrivalDate:     posReq.ArrivalDate,
				EndDate:         posReq.EndDate,
				JobInstructions: posReq.JobInstructions,
			},
		}

		for _, dayReq := range posReq.Days {
			slots, err := expandDay(dayReq)
			if err != nil {
				h.badRequest(w, r, err)
				return
			}

			if err := h.checkOverlap(slots, existing, myInfo.ID, req.Location); err != nil {
				h.errorResponse(w, r, err.Error())
				return
			}

			proposed := &domain.Day{
				ID:          dayReq.ID,
				FromDate:    dayReq.FromDate,
				ToDate:      dayReq.ToDate,
				FromTime:    dayReq.FromTime,
				ToTime:      dayReq.ToTime,
				Quantity:    dayReq.Quantity,
				HoursPerOne: dayReq.HoursPerOne,
				HourlyRate:  dayReq.HourlyRate,
			}

			du := &repository.DayUpsert{Day: proposed}

			if dayReq.ID != 0 {
				existingDay, err := h.repository.GetDayByID(dayReq.ID)
				if err != nil {
					h.internalServerError(w, r, err)
					return
				}

				hasHired, err := h.repository.HasHiredJobsForDay(dayReq.ID)
				if err != nil {
					h.internalServerError(w, r, err)
					return
				}

				// reject the whole request before anything is written
				if err := schedule.CheckMutable(existingDay, proposed, hasHired); err != nil {
					h.errorResponse(w, r, err.Error())
					return
				}

				proposed.Version = existingDay.Version
				changed := schedule.DiffDay(existingDay, proposed)
				du.Regenerate = schedule.NeedsRegeneration(changed)
				if du.Regenerate {
					scheduleChanged = true
					du.Details = detailsFromSlots(slots)
				}
			} else {
				du.Details = detailsFromSlots(slots)
			}

			pu.Days = append(pu.Days, du)
		}

		upd.Positions = append(upd.Positions, pu)
	}

	// positions removed from the event strand their hired crew; gather
	// them before the delete commits
	canceledPositions := make(map[int64][]int64)
	for _, positionID := range req.DeletePositions {
		ids, err := h.repository.GetHiredUserIDsByPositionID(positionID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		canceledPositions[positionID] = ids
	}

	if err := h.repository.UpdateEventGraph(upd); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if eventChanged || scheduleChanged {
		h.notifyHiredCrew(event, myInfo.ID, domain.NotificationTypeEventUpdated,
			"Event Updated",
			fmt.Sprintf("An update has been made to the event %s you're participating in. Please check the latest schedule.", event.Name))
	}

	for positionID, userIDs := range canceledPositions {
		h.notifyUsers(userIDs, event, myInfo.ID, domain.NotificationTypePositionCanceled,
			"Position Cancellation Notice",
			fmt.Sprintf("A position you applied to on the event %s has been canceled (position id %d). We apologize for any inconvenience.", event.Name, positionID))
	}

	h.successResponse(w, r, "event updated", event)
}

func (h *Handler) UpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	event := r.Context().Value(EventCtx).(*domain.Event)

	var req struct {
		Status domain.EventStatus `json:"status" validate:"required,oneof=CL CA"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event.Status = req.Status
	if err := h.repository.UpdateEventStatus(event); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	switch req.Status {
	case domain.EventStatusCanceled:
		h.notifyHiredCrew(event, myInfo.ID, domain.NotificationTypeEventCanceled,
			"Event Canceled",
			fmt.Sprintf("The event %s has been canceled. We apologize for any inconvenience.", event.Name))
	case domain.EventStatusClosed:
		h.notifyHiredCrew(event, myInfo.ID, domain.NotificationTypeEventClosed,
			"Event Closed",
			fmt.Sprintf("The event %s has ended. Thank you for working with us.", event.Name))
	}

	h.successResponse(w, r, "event status updated", event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	event := r.Context().Value(EventCtx).(*domain.Event)

	// jobs go with the event, so collect the crew to notify first
	userIDs, err := h.repository.GetHiredUserIDsByEventID(event.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.DeleteEvent(event.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.notifyUsers(userIDs, event, myInfo.ID, domain.NotificationTypeEventCanceled,
		"Event Canceled",
		fmt.Sprintf("The event %s has been canceled. We apologize for any inconvenience.", event.Name))

	h.successResponse(w, r, "event deleted", nil)
}

func (h *Handler) notifyHiredCrew(event *domain.Event, managerID int64, notificationType, title, message string) {
	userIDs, err := h.repository.GetHiredUserIDsByEventID(event.ID)
	if err != nil {
		slog.Error("failed to load hired crew for notification", "eventID", event.ID, "error", err)
		return
	}
	h.notifyUsers(userIDs, event, managerID, notificationType, title, message)
}

// notifyUsers fans a change out to in-app notifications and, for crew
// who opted in, mail. Push delivery is handled by a separate service
// reading the notifications table.
func (h *Handler) notifyUsers(userIDs []int64, event *domain.Event, managerID int64, notificationType, title, message string) {
	if len(userIDs) == 0 {
		return
	}

	crew, err := h.repository.GetActiveCrewByIDs(userIDs)
	if err != nil {
		slog.Error("failed to load crew for notification", "eventID", event.ID, "error", err)
		return
	}

	notifications := make([]*domain.Notification, 0, len(crew))
	for _, user := range crew {
		notifications = append(notifications, &domain.Notification{
			UserID:        user.ID,
			Title:         title,
			Message:       message,
			Type:          notificationType,
			EventID:       event.ID,
			ReferenceID:   managerID,
			ReferenceType: "manager",
		})

		if user.EmailNotification {
			mailMessage := domain.MailMessage{
				Type: "event_updated",
				To:   user.Email,
				Data: domain.EventUpdatedMailData{
					FullName:  user.FullName,
					EventName: event.Name,
				},
			}
			if notificationType == domain.NotificationTypePositionCanceled {
				mailMessage.Type = "position_canceled"
				mailMessage.Data = domain.PositionCanceledMailData{
					FullName:  user.FullName,
					EventName: event.Name,
				}
			}
			if err := h.publishMail(mailMessage); err != nil {
				slog.Error("failed to queue notification mail", "userID", user.ID, "error", err)
			}
		}
	}

	if err := h.repository.InsertNotifications(notifications); err != nil {
		slog.Error("failed to insert notifications", "eventID", event.ID, "error", err)
	}
}

func (h *Handler) DeletePosition(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	event := r.Context().Value(EventCtx).(*domain.Event)

	positionID, err := parseIDParam(r, "positionID")
	if err != nil {
		h.errorResponse(w, r, "invalid position id")
		return
	}

	position, err := h.repository.GetPositionByID(positionID)
	if err != nil {
		h.errorResponse(w, r, "position not found")
		return
	}
	if position.EventID != event.ID {
		h.errorResponse(w, r, "position does not belong to this event")
		return
	}

	userIDs, err := h.repository.GetHiredUserIDsByPositionID(positionID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.repository.DeletePosition(positionID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.notifyUsers(userIDs, event, myInfo.ID, domain.NotificationTypePositionCanceled,
		"Position Cancellation Notice",
		fmt.Sprintf("The position %s you applied to has been canceled. We apologize for any inconvenience. Stay tuned for future work opportunities.", position.Name))

	h.successResponse(w, r, "position deleted", nil)
}
