package repository

import (
	"context"
	"database/sql"

	"github.com/showtimestaff/event-staffing/backend/internal/domain"
)

// DayUpsert carries one day write of an event update. A zero Day.ID
// means insert. Details is the fresh expansion; it is only applied
// when Regenerate is set (schedule fields changed) or the day is new.
type DayUpsert struct {
	Day        *domain.Day
	Regenerate bool
	Details    []*domain.DayDetail
}

// PositionUpsert carries one position write plus its day writes. A
// zero Position.ID means insert.
type PositionUpsert struct {
	Position *domain.Position
	Days     []*DayUpsert
}

// EventGraphUpdate is the unit of work of an event edit. It commits
// atomically: deletions first, then position and day upserts.
type EventGraphUpdate struct {
	Event             *domain.Event
	DeleteDayIDs      []int64
	DeletePositionIDs []int64
	Positions         []*PositionUpsert
}

func (r *Repository) UpdateEventGraph(upd *EventGraphUpdate) error {
	return r.withTransaction(func(ctx context.Context, tx *sql.Tx) error {
		query := `
			UPDATE events
			SET name = $1, overview = $2, location = $3, image = $4, from_date = $5, to_date = $6, version = version + 1
			WHERE id = $7 AND version = $8
			RETURNING version
		`

		params := []any{
			upd.Event.Name,
			upd.Event.Overview,
			upd.Event.Location,
			upd.Event.Image,
			upd.Event.FromDate,
			upd.Event.ToDate,
			upd.Event.ID,
			upd.Event.Version,
		}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&upd.Event.Version); err != nil {
			return err
		}

		for _, dayID := range upd.DeleteDayIDs {
			if err := deleteDayCascade(ctx, tx, dayID); err != nil {
				return err
			}
		}

		for _, positionID := range upd.DeletePositionIDs {
			if err := deletePositionCascade(ctx, tx, positionID); err != nil {
				return err
			}
		}

		for _, pu := range upd.Positions {
			pu.Position.EventID = upd.Event.ID

			if pu.Position.ID == 0 {
				if err := insertPosition(ctx, tx, pu.Position); err != nil {
					return err
				}
			} else {
				if err := updatePosition(ctx, tx, pu.Position); err != nil {
					return err
				}
			}

			for _, du := range pu.Days {
				du.Day.PositionID = pu.Position.ID

				if du.Day.ID == 0 {
					if err := insertDay(ctx, tx, du.Day); err != nil {
						return err
					}
					if err := insertDayDetails(ctx, tx, du.Day.ID, du.Details); err != nil {
						return err
					}
					continue
				}

				if err := updateDay(ctx, tx, du.Day); err != nil {
					return err
				}
				if du.Regenerate {
					if err := replaceDayDetails(ctx, tx, du.Day.ID, du.Details); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})
}
