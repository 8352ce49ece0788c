package pgrepo

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

type StatsRepository struct {
	db uow.DBTX
}

func NewStatsRepository(db uow.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect агрегаты для админской сводки. Один запрос с подзапросами, чтобы
// сводка была согласованной на момент чтения.
func (r *StatsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	var s domain.Stats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM accounts),
			(SELECT count(*) FROM accounts WHERE last_activity::date = now()::date),
			(SELECT count(*) FROM products WHERE is_active = true),
			(SELECT count(*) FROM orders),
			(SELECT coalesce(sum(price_paid), 0) FROM orders),
			(SELECT count(*) FROM ad_views WHERE completed = true)`).
		Scan(&s.TotalAccounts, &s.ActiveToday, &s.ActiveProducts, &s.TotalOrders, &s.TotalRevenue, &s.CompletedAdViews)
	if err != nil {
		return nil, convertErr(err, "collecting stats")
	}
	return &s, nil
}
