package pgrepo

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

const orderColumns = `id, created_at, account_id, product_id, product_name, price_paid, payload`

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create пишет снапшот покупки: имя товара и цена фиксируются на момент заказа
// и не зависят от последующих правок товара.
func (r *OrderRepository) Create(
	ctx context.Context,
	args repoargs.OrderCreate,
) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (account_id, product_id, product_name, price_paid, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderColumns,
		args.AccountID, args.ProductID, args.ProductName, args.PricePaid, args.Payload)

	var o domain.Order
	err := row.Scan(&o.ID, &o.CreatedAt, &o.AccountID, &o.ProductID, &o.ProductName, &o.PricePaid, &o.Payload)
	if err != nil {
		return nil, convertErr(err, "creating order for account %d", args.AccountID)
	}
	return &o, nil
}

func (r *OrderRepository) CountByAccountProduct(
	ctx context.Context,
	accountID int64,
	productID int64,
) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM orders WHERE account_id = $1 AND product_id = $2`,
		accountID, productID).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting orders of account %d for product %d", accountID, productID)
	}
	return count, nil
}

func (r *OrderRepository) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE account_id = $1 ORDER BY created_at DESC`, accountID)
	if err != nil {
		return nil, convertErr(err, "getting orders of account %d", accountID)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if scanErr := rows.Scan(
			&o.ID, &o.CreatedAt, &o.AccountID, &o.ProductID, &o.ProductName, &o.PricePaid, &o.Payload,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning order of account %d", accountID)
		}
		orders = append(orders, o)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting orders of account %d", accountID)
	}
	return orders, nil
}
