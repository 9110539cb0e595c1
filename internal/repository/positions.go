package repository

import (
	"context"
	"database/sql"

	"github.com/showtimestaff/event-staffing/backend/internal/domain"
)

func insertPosition(ctx context.Context, tx *sql.Tx, position *domain.Position) error {
	query := `
		INSERT INTO positions (event_id, name, notes, arrival_date, end_date, job_instructions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	params := []any{
		position.EventID,
		position.Name,
		position.Notes,
		position.ArrivalDate,
		position.EndDate,
		position.JobInstructions,
	}

	return tx.QueryRowContext(ctx, query, params...).Scan(&position.ID)
}

func updatePosition(ctx context.Context, tx *sql.Tx, position *domain.Position) error {
	query := `
		UPDATE positions
		SET name = $1, notes = $2, arrival_date = $3, end_date = $4, job_instructions = $5
		WHERE id = $6 AND event_id = $7
	`

	params := []any{
		position.Name,
		position.Notes,
		position.ArrivalDate,
		position.EndDate,
		position.JobInstructions,
		position.ID,
		position.EventID,
	}

	_, err := tx.ExecContext(ctx, query, params...)
	return err
}

// deletePositionCascade removes a position, its days, their expanded
// details and every job referencing any of them.
func deletePositionCascade(ctx context.Context, tx *sql.Tx, positionID int64) error {
	statements := []string{
		`DELETE FROM jobs WHERE position_id = $1`,
		`DELETE FROM day_details dd USING days d WHERE dd.day_id = d.id AND d.position_id = $1`,
		`DELETE FROM days WHERE position_id = $1`,
		`DELETE FROM positions WHERE id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, positionID); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) GetPositionByID(id int64) (*domain.Position, error) {
	query := `
		SELECT event_id, name, notes, arrival_date, end_date, job_instructions
		FROM positions WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	position := &domain.Position{
		ID: id,
	}

	dst := []any{&position.EventID, &position.Name, &position.Notes, &position.ArrivalDate, &position.EndDate, &position.JobInstructions}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return position, nil
}

func (r *Repository) GetPositionsByEventID(eventID int64) ([]*domain.Position, error) {
	query := `
		SELECT id, name, notes, arrival_date, end_date, job_instructions
		FROM positions WHERE event_id = $1
		ORDER BY id
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := []*domain.Position{}
	for rows.Next() {
		position := domain.Position{EventID: eventID}
		dst := []any{&position.ID, &position.Name, &position.Notes, &position.ArrivalDate, &position.EndDate, &position.JobInstructions}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		positions = append(positions, &position)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

func (r *Repository) DeletePosition(id int64) error {
	return r.withTransaction(func(ctx context.Context, tx *sql.Tx) error {
		return deletePositionCascade(ctx, tx, id)
	})
}
