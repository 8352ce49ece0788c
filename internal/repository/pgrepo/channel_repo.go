package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const channelColumns = `id, created_at, telegram_id, username, title, points_reward, is_active, join_count`

type ChannelRepository struct {
	db uow.DBTX
}

func NewChannelRepository(db uow.DBTX) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func (r *ChannelRepository) Create(
	ctx context.Context,
	args repoargs.ChannelCreate,
) (*domain.Channel, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO channels (telegram_id, username, title, points_reward)
		VALUES ($1, $2, $3, $4)
		RETURNING `+channelColumns,
		args.TelegramID, args.Username, args.Title, args.PointsReward)

	channel, err := scanChannel(row)
	if err != nil {
		return nil, convertErr(err, "creating channel %q", args.Title)
	}
	return channel, nil
}

func (r *ChannelRepository) GetByID(ctx context.Context, id int64) (*domain.Channel, error) {
	row := r.db.QueryRow(ctx, `SELECT `+channelColumns+` FROM channels WHERE id = $1`, id)
	channel, err := scanChannel(row)
	if err != nil {
		return nil, convertErr(err, "getting channel %d", id)
	}
	return channel, nil
}

func (r *ChannelRepository) GetActive(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE is_active = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting active channels")
	}
	return collectChannels(rows)
}

func (r *ChannelRepository) GetUnjoined(ctx context.Context, accountID int64) ([]domain.Channel, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+channelColumns+` FROM channels c
		WHERE c.is_active = true
		AND NOT EXISTS (
			SELECT 1 FROM channel_joins j WHERE j.channel_id = c.id AND j.account_id = $1
		)
		ORDER BY c.created_at DESC`, accountID)
	if err != nil {
		return nil, convertErr(err, "getting unjoined channels of account %d", accountID)
	}
	return collectChannels(rows)
}

func (r *ChannelRepository) Update(
	ctx context.Context,
	id int64,
	pointsReward int64,
	isActive bool,
) error {
	_, err := r.db.Exec(ctx,
		`UPDATE channels SET points_reward = $2, is_active = $3 WHERE id = $1`,
		id, pointsReward, isActive)
	return convertErr(err, "updating channel %d", id)
}

func (r *ChannelRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM channels WHERE id = $1`, id)
	return convertErr(err, "deleting channel %d", id)
}

// RecordJoin финальная страховка от двойного начисления - уникальный индекс
// (account_id, channel_id), а не проверка существования на уровне приложения.
func (r *ChannelRepository) RecordJoin(
	ctx context.Context,
	accountID int64,
	channelID int64,
	points int64,
) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO channel_joins (account_id, channel_id, points_earned) VALUES ($1, $2, $3)`,
		accountID, channelID, points)
	if err != nil {
		converted := convertErr(err, "recording join of channel %d by account %d", channelID, accountID)
		if errors.Is(converted, domain.ErrDuplicateKey) {
			return domain.ErrAlreadyJoined
		}
		return converted
	}
	return nil
}

func (r *ChannelRepository) IncrementJoinCount(ctx context.Context, channelID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE channels SET join_count = join_count + 1 WHERE id = $1`, channelID)
	return convertErr(err, "incrementing join count of channel %d", channelID)
}

func collectChannels(rows pgx.Rows) ([]domain.Channel, error) {
	defer rows.Close()

	var channels []domain.Channel
	for rows.Next() {
		channel, scanErr := scanChannel(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning channel")
		}
		channels = append(channels, *channel)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "collecting channels")
	}
	return channels, nil
}

func scanChannel(row pgx.Row) (*domain.Channel, error) {
	var c domain.Channel
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.TelegramID, &c.Username, &c.Title,
		&c.PointsReward, &c.IsActive, &c.JoinCount,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &c, nil
}
