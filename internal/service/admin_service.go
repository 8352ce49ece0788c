package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

var errOfferSourceNotConfigured = errors.New("offer source is not configured")

// AdminService операции админки. Админ доверенный: ручные корректировки
// баланса идут мимо валидаций движка заказов, но через тот же журнал.
type AdminService struct {
	uow      uow.UOW
	settings *SettingsService
	offers   OfferSource // nil допустим, импорт офферов будет недоступен
}

func NewAdminService(u uow.UOW, settings *SettingsService, offers OfferSource) *AdminService {
	return &AdminService{
		uow:      u,
		settings: settings,
		offers:   offers,
	}
}

// Adjust ручная корректировка баланса. Положительный amount начисляет,
// отрицательный списывает (с той же защитой от ухода в минус).
func (s *AdminService) Adjust(ctx context.Context, accountID int64, amount int64, description string) error {
	if amount == 0 {
		return errNonPositiveAmount
	}

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		args := LedgerOpArgs{
			AccountID:   accountID,
			Reason:      domain.ReasonAdminAdjust,
			Description: description,
		}
		if amount > 0 {
			args.Amount = amount
			return creditPoints(c, tx, args)
		}
		args.Amount = -amount
		return debitPoints(c, tx, args)
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrInsufficientFunds) || errors.Is(txErr, domain.ErrRecordNotFound) {
			return txErr
		}
		return fmt.Errorf("adjusting account %d by %d: %w", accountID, amount, txErr)
	}
	return nil
}

func (s *AdminService) AddProduct(ctx context.Context, args repoargs.ProductCreate) (*domain.Product, error) {
	productRepo, err := uow.GetRepositoryAs[domain.ProductRepository](s.uow, uow.RepositoryName(domain.ProductRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return productRepo.Create(ctx, args) //nolint:wrapcheck
}

func (s *AdminService) SetProductActive(ctx context.Context, productID int64, active bool) error {
	productRepo, err := uow.GetRepositoryAs[domain.ProductRepository](s.uow, uow.RepositoryName(domain.ProductRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	return productRepo.SetActive(ctx, productID, active) //nolint:wrapcheck
}

// AddInventory пакетная загрузка единиц контента. Товар должен существовать и
// быть unique режима, иначе единицы никогда не будут выданы.
func (s *AdminService) AddInventory(ctx context.Context, productID int64, payloads []string) (int64, error) {
	var inserted int64

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		productRepo, productRepoErr := uow.GetAs[domain.ProductRepository](tx, uow.RepositoryName(domain.ProductRepoName))
		if productRepoErr != nil {
			return productRepoErr //nolint:wrapcheck
		}
		inventoryRepo, invRepoErr := uow.GetAs[domain.InventoryRepository](tx, uow.RepositoryName(domain.InventoryRepoName))
		if invRepoErr != nil {
			return invRepoErr //nolint:wrapcheck
		}

		product, productErr := productRepo.GetByID(c, productID)
		if productErr != nil {
			return productErr //nolint:wrapcheck
		}
		if product.ContentMode != domain.ContentModeUnique {
			return domain.ErrProductUnavailable
		}

		var addErr error
		inserted, addErr = inventoryRepo.BulkAdd(c, productID, payloads)
		return addErr //nolint:wrapcheck
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrRecordNotFound) || errors.Is(txErr, domain.ErrProductUnavailable) {
			return 0, txErr
		}
		return 0, fmt.Errorf("adding inventory to product %d: %w", productID, txErr)
	}
	return inserted, nil
}

func (s *AdminService) AddAd(ctx context.Context, args repoargs.AdCreate) (*domain.Ad, error) {
	adRepo, err := uow.GetRepositoryAs[domain.AdRepository](s.uow, uow.RepositoryName(domain.AdRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return adRepo.Create(ctx, args) //nolint:wrapcheck
}

func (s *AdminService) DeleteAd(ctx context.Context, adID int64) error {
	adRepo, err := uow.GetRepositoryAs[domain.AdRepository](s.uow, uow.RepositoryName(domain.AdRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	return adRepo.Delete(ctx, adID) //nolint:wrapcheck
}

func (s *AdminService) AddLinkAd(ctx context.Context, args repoargs.LinkAdCreate) (*domain.LinkAd, error) {
	linkRepo, err := uow.GetRepositoryAs[domain.LinkAdRepository](s.uow, uow.RepositoryName(domain.LinkAdRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return linkRepo.Create(ctx, args) //nolint:wrapcheck
}

// ImportOffers подтягивает до limit офферов из партнерской ленты и заводит по
// каждому ссылочную рекламу с наградой pointsReward. Возвращает число созданных.
func (s *AdminService) ImportOffers(ctx context.Context, limit int, pointsReward int64) (int64, error) {
	if s.offers == nil {
		return 0, errOfferSourceNotConfigured
	}

	offers, offersErr := s.offers.Offers(ctx, limit)
	if offersErr != nil {
		return 0, fmt.Errorf("fetching offers: %w", offersErr)
	}

	linkRepo, repoErr := uow.GetRepositoryAs[domain.LinkAdRepository](s.uow, uow.RepositoryName(domain.LinkAdRepoName))
	if repoErr != nil {
		return 0, repoErr //nolint:wrapcheck
	}

	var created int64
	for _, offer := range offers {
		_, createErr := linkRepo.Create(ctx, repoargs.LinkAdCreate{
			Title:          offer.Title,
			Description:    offer.Description,
			DestinationURL: offer.URL,
			PointsReward:   pointsReward,
		})
		if createErr != nil {
			// повторный импорт того же оффера не ошибка
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				continue
			}
			return created, fmt.Errorf("importing offer %q: %w", offer.Title, createErr)
		}
		created++
	}
	return created, nil
}

func (s *AdminService) DeleteLinkAd(ctx context.Context, linkAdID int64) error {
	linkRepo, err := uow.GetRepositoryAs[domain.LinkAdRepository](s.uow, uow.RepositoryName(domain.LinkAdRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	return linkRepo.Delete(ctx, linkAdID) //nolint:wrapcheck
}

func (s *AdminService) AddChannel(ctx context.Context, args repoargs.ChannelCreate) (*domain.Channel, error) {
	channelRepo, err := uow.GetRepositoryAs[domain.ChannelRepository](s.uow, uow.RepositoryName(domain.ChannelRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return channelRepo.Create(ctx, args) //nolint:wrapcheck
}

func (s *AdminService) UpdateChannel(ctx context.Context, channelID int64, pointsReward int64, isActive bool) error {
	channelRepo, err := uow.GetRepositoryAs[domain.ChannelRepository](s.uow, uow.RepositoryName(domain.ChannelRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	return channelRepo.Update(ctx, channelID, pointsReward, isActive) //nolint:wrapcheck
}

func (s *AdminService) DeleteChannel(ctx context.Context, channelID int64) error {
	channelRepo, err := uow.GetRepositoryAs[domain.ChannelRepository](s.uow, uow.RepositoryName(domain.ChannelRepoName))
	if err != nil {
		return err //nolint:wrapcheck
	}
	return channelRepo.Delete(ctx, channelID) //nolint:wrapcheck
}

func (s *AdminService) UpdateSetting(ctx context.Context, key string, value string) error {
	return s.settings.Set(ctx, key, value) //nolint:wrapcheck
}

func (s *AdminService) Settings(ctx context.Context) ([]domain.Setting, error) {
	return s.settings.GetAll(ctx) //nolint:wrapcheck
}

func (s *AdminService) Stats(ctx context.Context) (*domain.Stats, error) {
	statsRepo, err := uow.GetRepositoryAs[domain.StatsRepository](s.uow, uow.RepositoryName(domain.StatsRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return statsRepo.Collect(ctx) //nolint:wrapcheck
}
