package repository

import (
	"context"
	"database/sql"

	"github.com/showtimestaff/event-staffing/backend/internal/domain"
)

func insertDay(ctx context.Context, tx *sql.Tx, day *domain.Day) error {
	query := `
		INSERT INTO days (position_id, from_date, to_date, from_time, to_time, quantity, hours_per_one, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, version
	`

	params := []any{
		day.PositionID,
		day.FromDate,
		day.ToDate,
		day.FromTime,
		day.ToTime,
		day.Quantity,
		day.HoursPerOne,
		day.HourlyRate,
	}

	return tx.QueryRowContext(ctx, query, params...).Scan(&day.ID, &day.Version)
}

func updateDay(ctx context.Context, tx *sql.Tx, day *domain.Day) error {
	query := `
		UPDATE days
		SET
			from_date = $1,
			to_date = $2,
			from_time = $3,
			to_time = $4,
			quantity = $5,
			hours_per_one = $6,
			hourly_rate = $7,
			version = version + 1
		WHERE id = $8 AND position_id = $9
		RETURNING version
	`

	params := []any{
		day.FromDate,
		day.ToDate,
		day.FromTime,
		day.ToTime,
		day.Quantity,
		day.HoursPerOne,
		day.HourlyRate,
		day.ID,
		day.PositionID,
	}

	return tx.QueryRowContext(ctx, query, params...).Scan(&day.Version)
}

func insertDayDetails(ctx context.Context, tx *sql.Tx, dayID int64, details []*domain.DayDetail) error {
	query := `
		INSERT INTO day_details (day_id, from_timestamp, to_timestamp)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	for _, detail := range details {
		detail.DayID = dayID
		if err := tx.QueryRowContext(ctx, query, dayID, detail.FromTimestamp, detail.ToTimestamp).Scan(&detail.ID); err != nil {
			return err
		}
	}

	return nil
}

// replaceDayDetails drops the current expansion of a day and inserts
// the fresh one. Details are never patched in place.
func replaceDayDetails(ctx context.Context, tx *sql.Tx, dayID int64, details []*domain.DayDetail) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM day_details WHERE day_id = $1`, dayID); err != nil {
		return err
	}
	return insertDayDetails(ctx, tx, dayID, details)
}

// deleteDayCascade removes a day plus its expanded details and any
// jobs referencing it.
func deleteDayCascade(ctx context.Context, tx *sql.Tx, dayID int64) error {
	statements := []string{
		`DELETE FROM day_details WHERE day_id = $1`,
		`DELETE FROM jobs WHERE day_id = $1`,
		`DELETE FROM days WHERE id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, dayID); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) GetDayByID(id int64) (*domain.Day, error) {
	query := `
		SELECT position_id, from_date, to_date, from_time, to_time, quantity, hours_per_one, hourly_rate, version
		FROM days WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	day := &domain.Day{
		ID: id,
	}

	dst := []any{&day.PositionID, &day.FromDate, &day.ToDate, &day.FromTime, &day.ToTime, &day.Quantity, &day.HoursPerOne, &day.HourlyRate, &day.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return day, nil
}

// GetDaysByPositionID loads a position's days with their details in a
// single joined query.
func (r *Repository) GetDaysByPositionID(positionID int64) ([]*domain.Day, error) {
	query := `
		SELECT
			d.id, d.from_date, d.to_date, d.from_time, d.to_time, d.quantity, d.hours_per_one, d.hourly_rate, d.version,
			dd.id, dd.from_timestamp, dd.to_timestamp
		FROM days d
		LEFT JOIN day_details dd ON dd.day_id = d.id
		WHERE d.position_id = $1
		ORDER BY d.id, dd.from_timestamp
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, positionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	daysMap := make(map[int64]*domain.Day)
	order := []*domain.Day{}

	for rows.Next() {
		var row struct {
			ID          int64
			FromDate    string
			ToDate      string
			FromTime    string
			ToTime      string
			Quantity    int32
			HoursPerOne sql.NullFloat64
			HourlyRate  sql.NullFloat64
			Version     int32

			DetailID sql.NullInt64
			FromTS   sql.NullTime
			ToTS     sql.NullTime
		}

		dst := []any{
			&row.ID,
			&row.FromDate,
			&row.ToDate,
			&row.FromTime,
			&row.ToTime,
			&row.Quantity,
			&row.HoursPerOne,
			&row.HourlyRate,
			&row.Version,
			&row.DetailID,
			&row.FromTS,
			&row.ToTS,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		day, exists := daysMap[row.ID]
		if !exists {
			day = &domain.Day{
				ID:         row.ID,
				PositionID: positionID,
				FromDate:   row.FromDate,
				ToDate:     row.ToDate,
				FromTime:   row.FromTime,
				ToTime:     row.ToTime,
				Quantity:   row.Quantity,
				Version:    row.Version,
				Details:    []*domain.DayDetail{},
			}
			if row.HoursPerOne.Valid {
				day.HoursPerOne = &row.HoursPerOne.Float64
			}
			if row.HourlyRate.Valid {
				day.HourlyRate = &row.HourlyRate.Float64
			}
			daysMap[row.ID] = day
			order = append(order, day)
		}

		// a day freshly created with an empty range has no details yet
		if !row.DetailID.Valid {
			continue
		}

		day.Details = append(day.Details, &domain.DayDetail{
			ID:            row.DetailID.Int64,
			DayID:         row.ID,
			FromTimestamp: row.FromTS.Time,
			ToTimestamp:   row.ToTS.Time,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return order, nil
}
