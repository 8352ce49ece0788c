package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/domain/mocks"
	"github.com/fsdevblog/tg-store/internal/repository/repoargs"
	"github.com/fsdevblog/tg-store/pkg/uow"
	uowmocks "github.com/fsdevblog/tg-store/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockUOW           *uowmocks.MockUOW
	mockTX            *uowmocks.MockTX
	mockAccountRepo   *mocks.MockAccountRepository
	mockLedgerRepo    *mocks.MockLedgerRepository
	mockProductRepo   *mocks.MockProductRepository
	mockInventoryRepo *mocks.MockInventoryRepository
	mockOrderRepo     *mocks.MockOrderRepository
	orderService      *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerRepository(s.mockCtrl)
	s.mockProductRepo = mocks.NewMockProductRepository(s.mockCtrl)
	s.mockInventoryRepo = mocks.NewMockInventoryRepository(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.LedgerRepoName)).
		Return(s.mockLedgerRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.ProductRepoName)).
		Return(s.mockProductRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.InventoryRepoName)).
		Return(s.mockInventoryRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderServiceTestSuite) account(id int64) *domain.Account {
	return &domain.Account{ID: id, TelegramID: id * 1000, Points: 500}
}

func (s *OrderServiceTestSuite) generalProduct() *domain.Product {
	return &domain.Product{
		ID:            10,
		Name:          "VPN config",
		Price:         100,
		StockQuantity: -1,
		ContentMode:   domain.ContentModeGeneral,
		FileRef:       "https://files.example.com/vpn.conf",
		IsActive:      true,
	}
}

func (s *OrderServiceTestSuite) TestPurchase_GeneralContent() {
	var accountID int64 = 1
	product := s.generalProduct()

	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
		Return(s.account(accountID), nil)
	s.mockProductRepo.EXPECT().GetByID(gomock.Any(), product.ID).
		Return(product, nil)

	// Списание действующей цены и отрицательная запись журнала.
	s.mockAccountRepo.EXPECT().SpendPoints(gomock.Any(), accountID, product.Price).
		Return(nil)
	s.mockLedgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.LedgerAppend) (*domain.LedgerEntry, error) {
			s.Equal(domain.ReasonPurchase, args.Reason)
			s.Equal(-product.Price, args.Amount)
			return &domain.LedgerEntry{ID: 1}, nil
		})

	s.mockOrderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.OrderCreate) (*domain.Order, error) {
			// general товар выдает общий FileRef, без резервов инвентаря.
			s.Equal(product.FileRef, args.Payload)
			s.Equal(product.Price, args.PricePaid)
			return &domain.Order{
				ID:          55,
				AccountID:   args.AccountID,
				ProductID:   args.ProductID,
				ProductName: args.ProductName,
				PricePaid:   args.PricePaid,
				Payload:     args.Payload,
			}, nil
		})
	s.mockProductRepo.EXPECT().RegisterSale(gomock.Any(), product.ID).Return(nil)

	receipt, err := s.orderService.Purchase(context.Background(), accountID, product.ID)
	s.Require().NoError(err)
	s.Equal(int64(55), receipt.OrderID)
	s.Equal(product.FileRef, receipt.Payload)
	s.Equal(product.Price, receipt.PricePaid)
}

func (s *OrderServiceTestSuite) TestPurchase_UniqueContent() {
	var accountID int64 = 1
	product := s.generalProduct()
	product.ContentMode = domain.ContentModeUnique
	product.FileRef = ""

	unit := domain.InventoryUnit{ID: 3, ProductID: product.ID, Payload: "KEY-AAA-111"}

	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
		Return(s.account(accountID), nil)
	s.mockProductRepo.EXPECT().GetByID(gomock.Any(), product.ID).
		Return(product, nil)

	// Резерв единицы происходит до списания баллов.
	reserveCall := s.mockInventoryRepo.EXPECT().
		Reserve(gomock.Any(), product.ID, accountID).
		Return(&unit, nil)
	s.mockAccountRepo.EXPECT().SpendPoints(gomock.Any(), accountID, product.Price).
		Return(nil).After(reserveCall)

	s.mockLedgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		Return(&domain.LedgerEntry{ID: 1}, nil)
	s.mockOrderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.OrderCreate) (*domain.Order, error) {
			s.Equal(unit.Payload, args.Payload)
			return &domain.Order{ID: 56, Payload: args.Payload, PricePaid: args.PricePaid}, nil
		})
	s.mockProductRepo.EXPECT().RegisterSale(gomock.Any(), product.ID).Return(nil)

	receipt, err := s.orderService.Purchase(context.Background(), accountID, product.ID)
	s.Require().NoError(err)
	s.Equal(unit.Payload, receipt.Payload)
}

func (s *OrderServiceTestSuite) TestPurchase_UniqueContentExhausted() {
	var accountID int64 = 1
	product := s.generalProduct()
	product.ContentMode = domain.ContentModeUnique

	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
		Return(s.account(accountID), nil)
	s.mockProductRepo.EXPECT().GetByID(gomock.Any(), product.ID).
		Return(product, nil)
	s.mockInventoryRepo.EXPECT().Reserve(gomock.Any(), product.ID, accountID).
		Return(nil, domain.ErrOutOfStock)

	// Списания не было: резерв не удался, транзакция откатывается.
	receipt, err := s.orderService.Purchase(context.Background(), accountID, product.ID)
	s.Require().ErrorIs(err, domain.ErrContentUnavailable)
	s.Nil(receipt)
}

func (s *OrderServiceTestSuite) TestPurchase_OfferPrice() {
	var accountID int64 = 1
	product := s.generalProduct()
	offerPrice := int64(60)
	endsAt := time.Now().Add(time.Hour)
	product.IsOffer = true
	product.OfferPrice = &offerPrice
	product.OfferEndsAt = &endsAt

	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
		Return(s.account(accountID), nil)
	s.mockProductRepo.EXPECT().GetByID(gomock.Any(), product.ID).
		Return(product, nil)
	s.mockAccountRepo.EXPECT().SpendPoints(gomock.Any(), accountID, offerPrice).
		Return(nil)
	s.mockLedgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).
		Return(&domain.LedgerEntry{ID: 1}, nil)
	s.mockOrderRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.OrderCreate) (*domain.Order, error) {
			s.Equal(offerPrice, args.PricePaid)
			return &domain.Order{ID: 57, PricePaid: args.PricePaid}, nil
		})
	s.mockProductRepo.EXPECT().RegisterSale(gomock.Any(), product.ID).Return(nil)

	receipt, err := s.orderService.Purchase(context.Background(), accountID, product.ID)
	s.Require().NoError(err)
	s.Equal(offerPrice, receipt.PricePaid)
}

func (s *OrderServiceTestSuite) TestPurchase_ValidationFailures() {
	var accountID int64 = 1

	inactive := s.generalProduct()
	inactive.IsActive = false

	outOfStock := s.generalProduct()
	outOfStock.StockQuantity = 0

	limited := s.generalProduct()
	limited.MaxPerUser = 1

	cases := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "account not found",
			setup: func() {
				s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "account blocked",
			setup: func() {
				blocked := s.account(accountID)
				blocked.IsBlocked = true
				s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
					Return(blocked, nil)
			},
			wantErr: domain.ErrAccountBlocked,
		},
		{
			name: "product missing",
			setup: func() {
				s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
					Return(s.account(accountID), nil)
				s.mockProductRepo.EXPECT().GetByID(gomock.Any(), int64(10)).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrProductUnavailable,
		},
		{
			name: "product inactive",
			setup: func() {
				s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
					Return(s.account(accountID), nil)
				s.mockProductRepo.EXPECT().GetByID(gomock.Any(), int64(10)).
					Return(inactive, nil)
			},
			wantErr: domain.ErrProductUnavailable,
		},
		{
			name: "out of stock",
			setup: func() {
				s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
					Return(s.account(accountID), nil)
				s.mockProductRepo.EXPECT().GetByID(gomock.Any(), int64(10)).
					Return(outOfStock, nil)
			},
			wantErr: domain.ErrOutOfStock,
		},
		{
			name: "per-user limit reached",
			setup: func() {
				s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
					Return(s.account(accountID), nil)
				s.mockProductRepo.EXPECT().GetByID(gomock.Any(), int64(10)).
					Return(limited, nil)
				s.mockOrderRepo.EXPECT().CountByAccountProduct(gomock.Any(), accountID, int64(10)).
					Return(int64(1), nil)
			},
			wantErr: domain.ErrLimitReached,
		},
		{
			name: "insufficient funds",
			setup: func() {
				s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), accountID).
					Return(s.account(accountID), nil)
				s.mockProductRepo.EXPECT().GetByID(gomock.Any(), int64(10)).
					Return(s.generalProduct(), nil)
				s.mockAccountRepo.EXPECT().SpendPoints(gomock.Any(), accountID, int64(100)).
					Return(domain.ErrInsufficientFunds)
			},
			wantErr: domain.ErrInsufficientFunds,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			t.setup()
			receipt, err := s.orderService.Purchase(context.Background(), accountID, 10)
			s.Require().ErrorIs(err, t.wantErr)
			s.Nil(receipt)
		})
	}
}

func (s *OrderServiceTestSuite) TestEffectivePrice() {
	now := time.Now()
	offerPrice := int64(60)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	cases := []struct {
		name    string
		product domain.Product
		want    int64
	}{
		{
			name:    "no offer",
			product: domain.Product{Price: 100},
			want:    100,
		},
		{
			name:    "offer without price is ignored",
			product: domain.Product{Price: 100, IsOffer: true},
			want:    100,
		},
		{
			name:    "active offer",
			product: domain.Product{Price: 100, IsOffer: true, OfferPrice: &offerPrice, OfferEndsAt: &future},
			want:    offerPrice,
		},
		{
			name:    "expired offer",
			product: domain.Product{Price: 100, IsOffer: true, OfferPrice: &offerPrice, OfferEndsAt: &past},
			want:    100,
		},
		{
			name:    "open ended offer",
			product: domain.Product{Price: 100, IsOffer: true, OfferPrice: &offerPrice},
			want:    offerPrice,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.want, EffectivePrice(&t.product, now))
		})
	}
}

func (s *OrderServiceTestSuite) TestGetByAccountID() {
	var accountID int64 = 1
	orders := []domain.Order{
		{ID: 2, AccountID: accountID, ProductName: "VPN config", PricePaid: 100},
		{ID: 1, AccountID: accountID, ProductName: "Game key", PricePaid: 250},
	}

	s.mockOrderRepo.EXPECT().GetByAccountID(gomock.Any(), accountID).
		Return(orders, nil)

	result, err := s.orderService.GetByAccountID(context.Background(), accountID)
	s.Require().NoError(err)
	s.Equal(orders, result)
}
