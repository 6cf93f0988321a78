package repository

import (
	"context"
	"time"

	"fieldservice/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Status    string
	Attempts  int32
	LastError *string
	CreatedAt time.Time
}

type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, 'queued')`,
		kind, topic, payload, pgtype.Timestamptz{Time: runAt, Valid: true},
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) PendingJobs(ctx context.Context, limit int32) ([]NotificationJob, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, topic, payload, run_at, status, attempts, last_error, created_at
		FROM notification_jobs WHERE status = 'queued'
		ORDER BY run_at, created_at LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pending notification jobs", err)
	}
	defer rows.Close()

	out := []NotificationJob{}
	for rows.Next() {
		var (
			j         NotificationJob
			lastError pgtype.Text
		)
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Status, &j.Attempts, &lastError, &j.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		if lastError.Valid {
			j.LastError = &lastError.String
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return out, nil
}
