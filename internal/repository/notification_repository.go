package repository

import (
	"context"

	"workmatch/internal/database"
	"workmatch/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	ListByManager(ctx context.Context, managerID uuid.UUID, limit int) ([]notification.Notification, error)
	// MarkRead flags a notification as read. A notification owned by another
	// manager is reported as not found.
	MarkRead(ctx context.Context, id, managerID uuid.UUID) error
	CountUnread(ctx context.Context, managerID uuid.UUID) (int, error)
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// ListByManager returns unread notifications first, newest first within each
// group.
func (r *PostgresNotificationRepository) ListByManager(ctx context.Context, managerID uuid.UUID, limit int) ([]notification.Notification, error) {
	if limit <= 0 || limit > notification.ListLimit {
		limit = notification.ListLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT n.id, n.manager_id, n.worker_id, n.assignment_id, n.message, n.is_read, n.created_at,
		        COALESCE(w.name, ''),
		        COALESCE(a.job_id, '00000000-0000-0000-0000-000000000000'::uuid),
		        COALESCE(j.title, '')
		 FROM notifications n
		 LEFT JOIN workers w ON w.id = n.worker_id
		 LEFT JOIN assignments a ON a.id = n.assignment_id
		 LEFT JOIN jobs j ON j.id = a.job_id
		 WHERE n.manager_id = $1
		 ORDER BY n.is_read ASC, n.created_at DESC, n.id ASC
		 LIMIT $2`,
		managerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(
			&n.ID, &n.ManagerID, &n.WorkerID, &n.AssignmentID, &n.Message, &n.IsRead, &n.CreatedAt,
			&n.WorkerName, &n.JobID, &n.JobTitle,
		); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id, managerID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND manager_id = $2`,
		id, managerID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, managerID uuid.UUID) (int, error) {
	var n int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE manager_id = $1 AND is_read = false`,
		managerID,
	)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
