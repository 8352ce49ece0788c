package pgrepo

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

type ReferralRepository struct {
	db uow.DBTX
}

func NewReferralRepository(db uow.DBTX) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Create пишет факт приглашения. Уникальный индекс по referred_id - страховка
// от повторного вызова для одного и того же приглашенного аккаунта.
func (r *ReferralRepository) Create(
	ctx context.Context,
	referrerID int64,
	referredID int64,
	points int64,
) (*domain.Referral, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO referrals (referrer_id, referred_id, points_earned)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, referrer_id, referred_id, points_earned`,
		referrerID, referredID, points)

	var ref domain.Referral
	err := row.Scan(&ref.ID, &ref.CreatedAt, &ref.ReferrerID, &ref.ReferredID, &ref.PointsEarned)
	if err != nil {
		return nil, convertErr(err, "creating referral %d -> %d", referrerID, referredID)
	}
	return &ref, nil
}

func (r *ReferralRepository) StatsByReferrer(
	ctx context.Context,
	referrerID int64,
) (*repoargs.ReferralStats, error) {
	var stats repoargs.ReferralStats
	err := r.db.QueryRow(ctx, `
		SELECT count(*), coalesce(sum(points_earned), 0)
		FROM referrals WHERE referrer_id = $1`, referrerID).
		Scan(&stats.Total, &stats.TotalPoints)
	if err != nil {
		return nil, convertErr(err, "getting referral stats of account %d", referrerID)
	}
	return &stats, nil
}
