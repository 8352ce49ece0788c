package pgrepo

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

type LedgerRepository struct {
	db uow.DBTX
}

func NewLedgerRepository(db uow.DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Append добавляет запись в журнал. Журнал append-only: ни UPDATE, ни DELETE
// по ledger_entries в кодовой базе нет.
func (r *LedgerRepository) Append(
	ctx context.Context,
	args repoargs.LedgerAppend,
) (*domain.LedgerEntry, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO ledger_entries (account_id, reason, amount, description, reference_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, account_id, reason, amount, description, reference_id`,
		args.AccountID, args.Reason, args.Amount, args.Description, args.ReferenceID)

	var e domain.LedgerEntry
	if err := row.Scan(&e.ID, &e.CreatedAt, &e.AccountID, &e.Reason, &e.Amount, &e.Description, &e.ReferenceID); err != nil {
		return nil, convertErr(err, "appending ledger entry for account %d", args.AccountID)
	}
	return &e, nil
}

func (r *LedgerRepository) GetByAccountID(
	ctx context.Context,
	accountID int64,
	limit uint,
) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, created_at, account_id, reason, amount, description, reference_id
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, accountID, int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting ledger entries of account %d", accountID)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if scanErr := rows.Scan(
			&e.ID, &e.CreatedAt, &e.AccountID, &e.Reason, &e.Amount, &e.Description, &e.ReferenceID,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning ledger entry of account %d", accountID)
		}
		entries = append(entries, e)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting ledger entries of account %d", accountID)
	}
	return entries, nil
}
