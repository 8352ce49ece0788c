package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const adColumns = `id, created_at, title, description, url, points_reward, is_active, view_count`

type AdRepository struct {
	db uow.DBTX
}

func NewAdRepository(db uow.DBTX) *AdRepository {
	return &AdRepository{db: db}
}

func (r *AdRepository) Create(ctx context.Context, args repoargs.AdCreate) (*domain.Ad, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO ads (title, description, url, points_reward)
		VALUES ($1, $2, $3, $4)
		RETURNING `+adColumns,
		args.Title, args.Description, args.URL, args.PointsReward)

	ad, err := scanAd(row)
	if err != nil {
		return nil, convertErr(err, "creating ad %q", args.Title)
	}
	return ad, nil
}

func (r *AdRepository) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	row := r.db.QueryRow(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id)
	ad, err := scanAd(row)
	if err != nil {
		return nil, convertErr(err, "getting ad %d", id)
	}
	return ad, nil
}

func (r *AdRepository) GetActive(ctx context.Context) ([]domain.Ad, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+adColumns+` FROM ads WHERE is_active = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting active ads")
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		ad, scanErr := scanAd(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning ad")
		}
		ads = append(ads, *ad)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting active ads")
	}
	return ads, nil
}

// RecordView фиксирует незавершенный просмотр. Начисления на этом шаге нет.
func (r *AdRepository) RecordView(ctx context.Context, accountID int64, adID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ad_views (account_id, ad_id) VALUES ($1, $2)`, accountID, adID)
	return convertErr(err, "recording view of ad %d by account %d", adID, accountID)
}

// CompletePendingView забирает последний незавершенный просмотр пары (account, ad)
// и помечает его завершенным. Повторный вызов не найдет строку и вернет
// ErrAlreadyCompleted - двойное начисление исключено на уровне перехода состояния.
func (r *AdRepository) CompletePendingView(
	ctx context.Context,
	accountID int64,
	adID int64,
	points int64,
) error {
	var viewID int64
	err := r.db.QueryRow(ctx, `
		UPDATE ad_views SET completed = true, completed_at = now(), points_earned = $3
		WHERE id = (
			SELECT id FROM ad_views
			WHERE account_id = $1 AND ad_id = $2 AND completed = false
			ORDER BY id DESC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id`, accountID, adID, points).Scan(&viewID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAlreadyCompleted
		}
		return convertErr(err, "completing view of ad %d by account %d", adID, accountID)
	}
	return nil
}

func (r *AdRepository) IncrementViewCount(ctx context.Context, adID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE ads SET view_count = view_count + 1 WHERE id = $1`, adID)
	return convertErr(err, "incrementing view count of ad %d", adID)
}

func (r *AdRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	return convertErr(err, "deleting ad %d", id)
}

func scanAd(row pgx.Row) (*domain.Ad, error) {
	var a domain.Ad
	err := row.Scan(&a.ID, &a.CreatedAt, &a.Title, &a.Description, &a.URL, &a.PointsReward, &a.IsActive, &a.ViewCount)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
