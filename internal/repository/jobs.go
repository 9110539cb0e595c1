package repository

import (
	"github.com/showtimestaff/event-staffing/backend/internal/domain"
)

func (r *Repository) CreateJob(job *domain.Job) error {
	query := `
		INSERT INTO jobs (user_id, event_id, position_id, day_id, day_detail_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	params := []any{
		job.UserID,
		job.EventID,
		job.PositionID,
		job.DayID,
		job.DayDetailID,
		job.Status,
	}
	dst := []any{&job.ID, &job.CreatedAt, &job.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetJobByID(id int64) (*domain.Job, error) {
	query := `
		SELECT user_id, event_id, position_id, day_id, day_detail_id, status, created_at, version
		FROM jobs WHERE id = $1
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	job := &domain.Job{
		ID: id,
	}

	dst := []any{&job.UserID, &job.EventID, &job.PositionID, &job.DayID, &job.DayDetailID, &job.Status, &job.CreatedAt, &job.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return job, nil
}

func (r *Repository) UpdateJobStatus(job *domain.Job) error {
	query := `
		UPDATE jobs
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, job.Status, job.ID, job.Version).Scan(&job.Version); err != nil {
		return err
	}

	return nil
}

// HasHiredJobsForDay feeds the mutation policy: a day with at least
// one hired job has its schedule fields frozen.
func (r *Repository) HasHiredJobsForDay(dayID int64) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM jobs WHERE day_id = $1 AND status = 'H')
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	var exists bool
	if err := r.dbpool.QueryRowContext(ctx, query, dayID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// CountHiredJobsForDayDetail guards hiring beyond a slot's declared
// headcount.
func (r *Repository) CountHiredJobsForDayDetail(dayDetailID int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM jobs WHERE day_detail_id = $1 AND status = 'H'
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	var count int64
	if err := r.dbpool.QueryRowContext(ctx, query, dayDetailID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// GetHiredUserIDsByEventID returns the crew hired anywhere on the
// event, for change notifications.
func (r *Repository) GetHiredUserIDsByEventID(eventID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT user_id FROM jobs WHERE event_id = $1 AND status = 'H'
	`
	return r.queryUserIDs(query, eventID)
}

func (r *Repository) GetHiredUserIDsByPositionID(positionID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT user_id FROM jobs WHERE position_id = $1 AND status = 'H'
	`
	return r.queryUserIDs(query, positionID)
}

func (r *Repository) queryUserIDs(query string, arg any) ([]int64, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
