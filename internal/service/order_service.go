package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

// OrderService движок покупок. Резерв контента, списание баллов, запись заказа
// и счетчики товара выполняются одной транзакцией: компенсирующих возвратов
// в этом потоке нет - при любом отказе транзакция откатывается целиком.
type OrderService struct {
	uow       uow.UOW
	orderRepo domain.OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[domain.OrderRepository](u, uow.RepositoryName(domain.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
	}, nil
}

// Purchase проводит покупку товара аккаунтом.
//
// Порядок проверок:
//  1. товар существует и активен, иначе ErrProductUnavailable;
//  2. конечный остаток не исчерпан, иначе ErrOutOfStock;
//  3. лимит покупок на юзера не достигнут, иначе ErrLimitReached;
//  4. резерв единицы контента (для unique товаров), иначе ErrContentUnavailable;
//  5. списание действующей цены, при нехватке баллов ErrInsufficientFunds.
//
// Акционная цена действует только при is_offer и не истекшем offer_ends_at.
func (o *OrderService) Purchase(ctx context.Context, accountID int64, productID int64) (*domain.OrderReceipt, error) {
	var receipt *domain.OrderReceipt

	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		productRepo, productRepoErr := uow.GetAs[domain.ProductRepository](tx, uow.RepositoryName(domain.ProductRepoName))
		if productRepoErr != nil {
			return productRepoErr //nolint:wrapcheck
		}
		orderRepo, orderRepoErr := uow.GetAs[domain.OrderRepository](tx, uow.RepositoryName(domain.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		accountRepo, accountRepoErr := uow.GetAs[domain.AccountRepository](tx, uow.RepositoryName(domain.AccountRepoName))
		if accountRepoErr != nil {
			return accountRepoErr //nolint:wrapcheck
		}

		account, accountErr := accountRepo.FindByID(c, accountID)
		if accountErr != nil {
			if errors.Is(accountErr, domain.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return accountErr //nolint:wrapcheck
		}
		if account.IsBlocked {
			return domain.ErrAccountBlocked
		}

		product, productErr := productRepo.GetByID(c, productID)
		if productErr != nil {
			if errors.Is(productErr, domain.ErrRecordNotFound) {
				return domain.ErrProductUnavailable
			}
			return productErr //nolint:wrapcheck
		}
		if !product.IsActive {
			return domain.ErrProductUnavailable
		}
		if product.StockQuantity == 0 {
			return domain.ErrOutOfStock
		}

		if product.MaxPerUser > 0 {
			purchased, countErr := orderRepo.CountByAccountProduct(c, accountID, productID)
			if countErr != nil {
				return countErr //nolint:wrapcheck
			}
			if purchased >= product.MaxPerUser {
				return domain.ErrLimitReached
			}
		}

		payload, payloadErr := o.resolvePayload(c, tx, product, accountID)
		if payloadErr != nil {
			return payloadErr
		}

		price := EffectivePrice(product, time.Now())
		debitErr := debitPoints(c, tx, LedgerOpArgs{
			AccountID:   accountID,
			Amount:      price,
			Reason:      domain.ReasonPurchase,
			Description: "Purchase: " + product.Name,
			ReferenceID: &product.ID,
		})
		if debitErr != nil {
			return debitErr
		}

		order, orderErr := orderRepo.Create(c, repoargs.OrderCreate{
			AccountID:   accountID,
			ProductID:   product.ID,
			ProductName: product.Name,
			PricePaid:   price,
			Payload:     payload,
		})
		if orderErr != nil {
			return orderErr //nolint:wrapcheck
		}

		if saleErr := productRepo.RegisterSale(c, product.ID); saleErr != nil {
			return saleErr //nolint:wrapcheck
		}

		receipt = &domain.OrderReceipt{
			OrderID:     order.ID,
			ProductName: order.ProductName,
			PricePaid:   order.PricePaid,
			Payload:     order.Payload,
		}
		return nil
	})

	if txErr != nil {
		if isExpectedPurchaseErr(txErr) {
			return nil, txErr
		}
		return nil, fmt.Errorf("purchasing product %d by account %d: %w", productID, accountID, txErr)
	}
	return receipt, nil
}

// resolvePayload выбирает контент для доставки. Для unique товара резервируется
// одна единица, для general всем выдается общая ссылка/файл товара.
func (o *OrderService) resolvePayload(
	ctx context.Context,
	tx uow.TX,
	product *domain.Product,
	accountID int64,
) (string, error) {
	if product.ContentMode != domain.ContentModeUnique {
		return product.FileRef, nil
	}

	inventoryRepo, invErr := uow.GetAs[domain.InventoryRepository](tx, uow.RepositoryName(domain.InventoryRepoName))
	if invErr != nil {
		return "", invErr //nolint:wrapcheck
	}
	unit, reserveErr := inventoryRepo.Reserve(ctx, product.ID, accountID)
	if reserveErr != nil {
		if errors.Is(reserveErr, domain.ErrOutOfStock) {
			return "", domain.ErrContentUnavailable
		}
		return "", reserveErr //nolint:wrapcheck
	}
	return unit.Payload, nil
}

func (o *OrderService) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return orders, nil
}

// EffectivePrice вычисляет действующую цену: акционная применяется только если
// акция включена и срок не истек (отсутствие срока - бессрочная акция).
func EffectivePrice(product *domain.Product, now time.Time) int64 {
	if product.IsOffer && product.OfferPrice != nil &&
		(product.OfferEndsAt == nil || product.OfferEndsAt.After(now)) {
		return *product.OfferPrice
	}
	return product.Price
}

func isExpectedPurchaseErr(err error) bool {
	return errors.Is(err, domain.ErrProductUnavailable) ||
		errors.Is(err, domain.ErrOutOfStock) ||
		errors.Is(err, domain.ErrLimitReached) ||
		errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrContentUnavailable) ||
		errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrAccountBlocked)
}
