package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pmajay/portal/internal/domain"
)

var notificationColumns = []string{"id", "title", "message", "audience", "priority", "status", "created_by", "created_at", "updated_at"}

func (s *store) InsertNotification(ctx context.Context, n *domain.Notification) error {
	query := builder().Insert(tableNotifications).
		Columns("id", "title", "message", "audience", "priority", "status", "created_by").
		Values(n.ID, n.Title, n.Message, n.Audience, n.Priority, n.Status, n.CreatedBy)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

// ListNotifications returns notifications visible to an audience, newest
// first. Audience "all" rows are always included.
func (s *store) ListNotifications(ctx context.Context, audience string) ([]*domain.Notification, error) {
	query := builder().Select(notificationColumns...).
		From(tableNotifications).
		OrderBy("created_at desc")

	if audience != "" {
		query = query.Where(sq.Or{
			sq.Eq{"audience": audience},
			sq.Eq{"audience": "all"},
		})
	}

	var selected []*domain.Notification
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) DeactivateNotification(ctx context.Context, id uuid.UUID) error {
	query := builder().Update(tableNotifications).
		Set("status", domain.NotificationDeactivated).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
