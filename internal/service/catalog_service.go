package service

import (
	"context"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/pkg/uow"
)

// CatalogService витрина: чтение товаров, рекламы и каналов для мини-аппа и бота.
type CatalogService struct {
	productRepo domain.ProductRepository
	adRepo      domain.AdRepository
	linkAdRepo  domain.LinkAdRepository
	channelRepo domain.ChannelRepository
}

func NewCatalogService(u uow.UOW) (*CatalogService, error) {
	productRepo, productErr := uow.GetRepositoryAs[domain.ProductRepository](u, uow.RepositoryName(domain.ProductRepoName))
	if productErr != nil {
		return nil, productErr
	}
	adRepo, adErr := uow.GetRepositoryAs[domain.AdRepository](u, uow.RepositoryName(domain.AdRepoName))
	if adErr != nil {
		return nil, adErr
	}
	linkAdRepo, linkErr := uow.GetRepositoryAs[domain.LinkAdRepository](u, uow.RepositoryName(domain.LinkAdRepoName))
	if linkErr != nil {
		return nil, linkErr
	}
	channelRepo, chErr := uow.GetRepositoryAs[domain.ChannelRepository](u, uow.RepositoryName(domain.ChannelRepoName))
	if chErr != nil {
		return nil, chErr
	}
	return &CatalogService{
		productRepo: productRepo,
		adRepo:      adRepo,
		linkAdRepo:  linkAdRepo,
		channelRepo: channelRepo,
	}, nil
}

func (s *CatalogService) ActiveProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.GetActive(ctx) //nolint:wrapcheck
}

func (s *CatalogService) Product(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id) //nolint:wrapcheck
}

func (s *CatalogService) ActiveAds(ctx context.Context) ([]domain.Ad, error) {
	return s.adRepo.GetActive(ctx) //nolint:wrapcheck
}

func (s *CatalogService) ActiveLinkAds(ctx context.Context) ([]domain.LinkAd, error) {
	return s.linkAdRepo.GetActive(ctx) //nolint:wrapcheck
}

func (s *CatalogService) ActiveChannels(ctx context.Context) ([]domain.Channel, error) {
	return s.channelRepo.GetActive(ctx) //nolint:wrapcheck
}

func (s *CatalogService) UnjoinedChannels(ctx context.Context, accountID int64) ([]domain.Channel, error) {
	return s.channelRepo.GetUnjoined(ctx, accountID) //nolint:wrapcheck
}

func (s *CatalogService) Channel(ctx context.Context, id int64) (*domain.Channel, error) {
	return s.channelRepo.GetByID(ctx, id) //nolint:wrapcheck
}
