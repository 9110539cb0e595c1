package repository

import (
	"context"
	"database/sql"

	"github.com/showtimestaff/event-staffing/backend/internal/domain"
	"github.com/showtimestaff/event-staffing/backend/internal/schedule"
)

// CreateEventGraph persists an event together with its positions,
// days and pre-expanded day details in a single transaction.
func (r *Repository) CreateEventGraph(event *domain.Event) error {
	return r.withTransaction(func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO events (manager_id, name, overview, location, image, status, from_date, to_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, version
		`

		params := []any{
			event.ManagerID,
			event.Name,
			event.Overview,
			event.Location,
			event.Image,
			event.Status,
			event.FromDate,
			event.ToDate,
		}
		dst := []any{&event.ID, &event.CreatedAt, &event.Version}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
			return err
		}

		for _, position := range event.Positions {
			position.EventID = event.ID
			if err := insertPosition(ctx, tx, position); err != nil {
				return err
			}

			for _, day := range position.Days {
				day.PositionID = position.ID
				if err := insertDay(ctx, tx, day); err != nil {
					return err
				}
				if err := insertDayDetails(ctx, tx, day.ID, day.Details); err != nil {
					return err
				}
			}
		}

		return nil
	})
}

func (r *Repository) GetEventByID(id int64) (*domain.Event, error) {
	query := `
		SELECT manager_id, name, overview, location, image, status, from_date, to_date, created_at, version
		FROM events WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	event := &domain.Event{
		ID: id,
	}

	dst := []any{&event.ManagerID, &event.Name, &event.Overview, &event.Location, &event.Image, &event.Status, &event.FromDate, &event.ToDate, &event.CreatedAt, &event.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return event, nil
}

// GetEventGraph loads an event with its positions, days and day
// details attached.
func (r *Repository) GetEventGraph(id int64) (*domain.Event, error) {
	event, err := r.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	positions, err := r.GetPositionsByEventID(id)
	if err != nil {
		return nil, err
	}
	event.Positions = positions

	for _, position := range positions {
		days, err := r.GetDaysByPositionID(position.ID)
		if err != nil {
			return nil, err
		}
		position.Days = days
	}

	return event, nil
}

func (r *Repository) GetEventsByManagerID(managerID int64) ([]*domain.Event, error) {
	query := `
		SELECT
			e.id, e.name, e.overview, e.location, e.image, e.status, e.from_date, e.to_date, e.created_at, e.version,
			COUNT(j.id) FILTER (WHERE j.status = 'H')
		FROM events e
		LEFT JOIN jobs j ON j.event_id = e.id
		WHERE e.manager_id = $1
		GROUP BY e.id
		ORDER BY e.created_at DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []*domain.Event{}
	for rows.Next() {
		event := domain.Event{ManagerID: managerID}
		dst := []any{&event.ID, &event.Name, &event.Overview, &event.Location, &event.Image, &event.Status, &event.FromDate, &event.ToDate, &event.CreatedAt, &event.Version, &event.HireCount}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) UpdateEventStatus(event *domain.Event) error {
	query := `
		UPDATE events
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, event.Status, event.ID, event.Version).Scan(&event.Version); err != nil {
		return err
	}

	return nil
}

// DeleteEvent removes the event and everything hanging off it.
func (r *Repository) DeleteEvent(id int64) error {
	return r.withTransaction(func(ctx context.Context, tx *sql.Tx) error {
		statements := []string{
			`DELETE FROM jobs WHERE event_id = $1`,
			`DELETE FROM day_details dd USING days d, positions p
				WHERE dd.day_id = d.id AND d.position_id = p.id AND p.event_id = $1`,
			`DELETE FROM days d USING positions p WHERE d.position_id = p.id AND p.event_id = $1`,
			`DELETE FROM positions WHERE event_id = $1`,
			`DELETE FROM events WHERE id = $1`,
		}

		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetOpenEventSlots returns every booked slot of the manager's other
// open events at the same location. This is the coarse scope filter
// of the overlap check; the interval math happens in the schedule
// package.
func (r *Repository) GetOpenEventSlots(managerID int64, location string, excludeEventID int64) ([]schedule.Slot, error) {
	query := `
		SELECT dd.from_timestamp, dd.to_timestamp
		FROM day_details dd
		JOIN days d ON d.id = dd.day_id
		JOIN positions p ON p.id = d.position_id
		JOIN events e ON e.id = p.event_id
		WHERE e.manager_id = $1 AND e.location = $2 AND e.status = 'O' AND e.id != $3
		ORDER BY dd.from_timestamp
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, managerID, location, excludeEventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []schedule.Slot{}
	for rows.Next() {
		var slot schedule.Slot
		if err := rows.Scan(&slot.From, &slot.To); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
