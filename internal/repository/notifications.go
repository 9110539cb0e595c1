package repository

import (
	"github.com/showtimestaff/event-staffing/backend/internal/domain"
)

func (r *Repository) InsertNotifications(notifications []*domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, event_id, reference_id, reference_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	for _, n := range notifications {
		params := []any{
			n.UserID,
			n.Title,
			n.Message,
			n.Type,
			n.EventID,
			n.ReferenceID,
			n.ReferenceType,
		}
		if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&n.ID, &n.CreatedAt); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) GetNotificationsByUserID(userID int64) ([]*domain.Notification, error) {
	query := `
		SELECT id, title, message, type, event_id, reference_id, reference_type, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := r.queryContext()
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []*domain.Notification{}
	for rows.Next() {
		n := domain.Notification{UserID: userID}
		dst := []any{&n.ID, &n.Title, &n.Message, &n.Type, &n.EventID, &n.ReferenceID, &n.ReferenceType, &n.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
