package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const linkAdColumns = `id, created_at, title, description, destination_url, points_reward, is_active, view_count`
const linkClickColumns = `id, created_at, verified_at, account_id, link_ad_id, token, shortened_url, verified, points_earned`

type LinkAdRepository struct {
	db uow.DBTX
}

func NewLinkAdRepository(db uow.DBTX) *LinkAdRepository {
	return &LinkAdRepository{db: db}
}

func (r *LinkAdRepository) Create(
	ctx context.Context,
	args repoargs.LinkAdCreate,
) (*domain.LinkAd, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO link_ads (title, description, destination_url, points_reward)
		VALUES ($1, $2, $3, $4)
		RETURNING `+linkAdColumns,
		args.Title, args.Description, args.DestinationURL, args.PointsReward)

	ad, err := scanLinkAd(row)
	if err != nil {
		return nil, convertErr(err, "creating link ad %q", args.Title)
	}
	return ad, nil
}

func (r *LinkAdRepository) GetByID(ctx context.Context, id int64) (*domain.LinkAd, error) {
	row := r.db.QueryRow(ctx, `SELECT `+linkAdColumns+` FROM link_ads WHERE id = $1`, id)
	ad, err := scanLinkAd(row)
	if err != nil {
		return nil, convertErr(err, "getting link ad %d", id)
	}
	return ad, nil
}

func (r *LinkAdRepository) GetActive(ctx context.Context) ([]domain.LinkAd, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+linkAdColumns+` FROM link_ads WHERE is_active = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting active link ads")
	}
	defer rows.Close()

	var ads []domain.LinkAd
	for rows.Next() {
		ad, scanErr := scanLinkAd(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning link ad")
		}
		ads = append(ads, *ad)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting active link ads")
	}
	return ads, nil
}

func (r *LinkAdRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM link_ads WHERE id = $1`, id)
	return convertErr(err, "deleting link ad %d", id)
}

func (r *LinkAdRepository) CreateClick(
	ctx context.Context,
	args repoargs.LinkClickCreate,
) (*domain.LinkClick, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO link_clicks (account_id, link_ad_id, token, shortened_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+linkClickColumns,
		args.AccountID, args.LinkAdID, args.Token, args.ShortenedURL)

	click, err := scanLinkClick(row)
	if err != nil {
		return nil, convertErr(err, "creating link click for account %d", args.AccountID)
	}
	return click, nil
}

func (r *LinkAdRepository) FindClickByToken(ctx context.Context, token string) (*domain.LinkClick, error) {
	row := r.db.QueryRow(ctx, `SELECT `+linkClickColumns+` FROM link_clicks WHERE token = $1`, token)
	click, err := scanLinkClick(row)
	if err != nil {
		return nil, convertErr(err, "finding link click by token")
	}
	return click, nil
}

func (r *LinkAdRepository) HasVerifiedClick(
	ctx context.Context,
	accountID int64,
	linkAdID int64,
) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM link_clicks
			WHERE account_id = $1 AND link_ad_id = $2 AND verified = true
		)`, accountID, linkAdID).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking verified click of link ad %d by account %d", linkAdID, accountID)
	}
	return exists, nil
}

// VerifyClick одноразовый переход clicked -> verified. Условие verified = false
// гарантирует ровно одно начисление на токен: повторная верификация не найдет
// строку и вернет ErrInvalidToken.
func (r *LinkAdRepository) VerifyClick(
	ctx context.Context,
	token string,
	points int64,
) (*domain.LinkClick, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE link_clicks SET verified = true, verified_at = now(), points_earned = $2
		WHERE token = $1 AND verified = false
		RETURNING `+linkClickColumns, token, points)

	click, err := scanLinkClick(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidToken
		}
		return nil, convertErr(err, "verifying link click token")
	}
	return click, nil
}

func (r *LinkAdRepository) IncrementViewCount(ctx context.Context, linkAdID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE link_ads SET view_count = view_count + 1 WHERE id = $1`, linkAdID)
	return convertErr(err, "incrementing view count of link ad %d", linkAdID)
}

func scanLinkAd(row pgx.Row) (*domain.LinkAd, error) {
	var a domain.LinkAd
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.Title, &a.Description, &a.DestinationURL,
		&a.PointsReward, &a.IsActive, &a.ViewCount,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}

func scanLinkClick(row pgx.Row) (*domain.LinkClick, error) {
	var c domain.LinkClick
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.VerifiedAt, &c.AccountID, &c.LinkAdID,
		&c.Token, &c.ShortenedURL, &c.Verified, &c.PointsEarned,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &c, nil
}
