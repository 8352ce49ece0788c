package pgrepo

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `id, created_at, last_activity, telegram_id, username, first_name, last_name,
points, total_earned, total_spent, referral_code, referred_by, is_blocked`

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(db uow.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(
	ctx context.Context,
	args repoargs.AccountCreate,
) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (telegram_id, username, first_name, last_name, referral_code, referred_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+accountColumns,
		args.TelegramID, args.Username, args.FirstName, args.LastName, args.ReferralCode, args.ReferredBy)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "creating account for telegram id %d", args.TelegramID)
	}
	return account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account %d", id)
	}
	return account, nil
}

func (r *AccountRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE telegram_id = $1`, telegramID)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by telegram id %d", telegramID)
	}
	return account, nil
}

func (r *AccountRepository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE referral_code = $1`, code)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "finding account by referral code")
	}
	return account, nil
}

func (r *AccountRepository) AddPoints(ctx context.Context, accountID int64, amount int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts SET points = points + $2, total_earned = total_earned + $2
		WHERE id = $1`, accountID, amount)
	if err != nil {
		return convertErr(err, "adding %d points to account %d", amount, accountID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "adding %d points to account %d", amount, accountID)
	}
	return nil
}

// SpendPoints условное обновление: строка меняется только если баллов хватает.
// Отсутствие затронутых строк при существующем аккаунте означает нехватку баланса.
func (r *AccountRepository) SpendPoints(ctx context.Context, accountID int64, amount int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts SET points = points - $2, total_spent = total_spent + $2
		WHERE id = $1 AND points >= $2`, accountID, amount)
	if err != nil {
		return convertErr(err, "spending %d points of account %d", amount, accountID)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if existsErr := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, accountID).Scan(&exists); existsErr != nil {
			return convertErr(existsErr, "spending %d points of account %d", amount, accountID)
		}
		if !exists {
			return convertErr(pgx.ErrNoRows, "spending %d points of account %d", amount, accountID)
		}
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (r *AccountRepository) TouchActivity(ctx context.Context, accountID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE accounts SET last_activity = now() WHERE id = $1`, accountID)
	return convertErr(err, "touching activity of account %d", accountID)
}

func (r *AccountRepository) SetBlocked(ctx context.Context, accountID int64, blocked bool) error {
	_, err := r.db.Exec(ctx,
		`UPDATE accounts SET is_blocked = $2 WHERE id = $1`, accountID, blocked)
	return convertErr(err, "setting blocked=%t for account %d", blocked, accountID)
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.LastActivity, &a.TelegramID, &a.Username, &a.FirstName, &a.LastName,
		&a.Points, &a.TotalEarned, &a.TotalSpent, &a.ReferralCode, &a.ReferredBy, &a.IsBlocked,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
