package pgrepo

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, created_at, updated_at, name, description, price, stock_quantity,
max_per_user, content_mode, file_ref, is_offer, offer_price, offer_ends_at, is_active, sales_count`

type ProductRepository struct {
	db uow.DBTX
}

func NewProductRepository(db uow.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(
	ctx context.Context,
	args repoargs.ProductCreate,
) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO products
			(name, description, price, stock_quantity, max_per_user, content_mode, file_ref,
			 is_offer, offer_price, offer_ends_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+productColumns,
		args.Name, args.Description, args.Price, args.StockQuantity, args.MaxPerUser,
		args.ContentMode, args.FileRef, args.IsOffer, args.OfferPrice, args.OfferEndsAt)

	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "creating product %q", args.Name)
	}
	return product, nil
}

// GetByID возвращает товар вместе с количеством свободных единиц контента
// (для товаров с раздачей общего контента счетчик остается нулевым).
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "getting product %d", id)
	}

	if product.ContentMode == domain.ContentModeUnique {
		countErr := r.db.QueryRow(ctx,
			`SELECT count(*) FROM inventory_units WHERE product_id = $1 AND is_used = false`, id).
			Scan(&product.AvailableUnits)
		if countErr != nil {
			return nil, convertErr(countErr, "counting available units of product %d", id)
		}
	}
	return product, nil
}

func (r *ProductRepository) GetActive(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE is_active = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting active products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning product")
		}
		products = append(products, *product)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting active products")
	}
	return products, nil
}

// RegisterSale выполняется в транзакции покупки. Условие на stock_quantity
// защищает от ухода конечного остатка в минус при конкурентных покупках.
func (r *ProductRepository) RegisterSale(ctx context.Context, productID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET
			sales_count = sales_count + 1,
			stock_quantity = CASE WHEN stock_quantity = -1 THEN -1 ELSE stock_quantity - 1 END,
			updated_at = now()
		WHERE id = $1 AND (stock_quantity = -1 OR stock_quantity > 0)`, productID)
	if err != nil {
		return convertErr(err, "registering sale of product %d", productID)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOutOfStock
	}
	return nil
}

func (r *ProductRepository) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.Exec(ctx,
		`UPDATE products SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	return convertErr(err, "setting active=%t for product %d", active, id)
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Name, &p.Description, &p.Price, &p.StockQuantity,
		&p.MaxPerUser, &p.ContentMode, &p.FileRef, &p.IsOffer, &p.OfferPrice, &p.OfferEndsAt,
		&p.IsActive, &p.SalesCount,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}
