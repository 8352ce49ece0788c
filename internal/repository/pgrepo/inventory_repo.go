package pgrepo

import (
	"context"
	"errors"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	db uow.DBTX
}

func NewInventoryRepository(db uow.DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) BulkAdd(
	ctx context.Context,
	productID int64,
	payloads []string,
) (int64, error) {
	var inserted int64
	for _, payload := range payloads {
		tag, err := r.db.Exec(ctx,
			`INSERT INTO inventory_units (product_id, payload) VALUES ($1, $2)`, productID, payload)
		if err != nil {
			return inserted, convertErr(err, "bulk adding inventory of product %d", productID)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// Reserve забирает самую старую свободную единицу. FOR UPDATE SKIP LOCKED
// исключает выдачу одной единицы двум конкурентным транзакциям: вторая
// пропустит заблокированную строку и возьмет следующую, либо получит ErrOutOfStock.
func (r *InventoryRepository) Reserve(
	ctx context.Context,
	productID int64,
	accountID int64,
) (*domain.InventoryUnit, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE inventory_units SET is_used = true, used_by = $2, used_at = now()
		WHERE id = (
			SELECT id FROM inventory_units
			WHERE product_id = $1 AND is_used = false
			ORDER BY id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, created_at, product_id, payload, is_used, used_by, used_at`,
		productID, accountID)

	var u domain.InventoryUnit
	err := row.Scan(&u.ID, &u.CreatedAt, &u.ProductID, &u.Payload, &u.IsUsed, &u.UsedBy, &u.UsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOutOfStock
		}
		return nil, convertErr(err, "reserving inventory unit of product %d", productID)
	}
	return &u, nil
}

func (r *InventoryRepository) CountAvailable(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM inventory_units WHERE product_id = $1 AND is_used = false`, productID).
		Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting available units of product %d", productID)
	}
	return count, nil
}
