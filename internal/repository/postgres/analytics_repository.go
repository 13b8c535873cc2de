package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/analytics"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Create(ctx context.Context, event analytics.Event) error {
	event.ID = common.NewUUID()
	event.CreatedAt = time.Now().UTC()
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to encode analytics payload", err)
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO analytics_events (id, name, user_id, payload, created_at) VALUES ($1, $2, $3, $4, $5)`,
		event.ID, event.Name, event.UserID, payload, event.CreatedAt)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to record analytics event", err)
	}
	return nil
}

func (r *AnalyticsRepository) CountSince(ctx context.Context, name string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analytics_events WHERE name = $1 AND created_at >= $2`, name, since).Scan(&count)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count analytics events", err)
	}
	return count, nil
}
