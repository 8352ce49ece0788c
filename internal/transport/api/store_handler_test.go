package api

import (
	"bytes"
	"net/http"
	"os"
	"testing"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/logger"
	"github.com/fsdevblog/tg-store/internal/transport/api/mocks"
	"github.com/fsdevblog/tg-store/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type StoreHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *mocks.MockAccountServicer
	mockOrderService   *mocks.MockOrderServicer
	mockCatalogService *mocks.MockCatalogServicer
}

func TestStoreHandlerSuite(t *testing.T) {
	suite.Run(t, new(StoreHandlerTestSuite))
}

func (s *StoreHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockCatalogService = mocks.NewMockCatalogServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		AccountService: s.mockAccountService,
		OrderService:   s.mockOrderService,
		CatalogService: s.mockCatalogService,
		AdminJWTSecret: []byte("super secret key"),
	})
}

func (s *StoreHandlerTestSuite) TestPurchase() {
	var accountID int64 = 10
	var telegramID int64 = 100500
	var unknownTelegramID int64 = 404404

	account := &domain.Account{ID: accountID, TelegramID: telegramID}
	s.mockAccountService.EXPECT().
		GetByTelegramID(gomock.Any(), telegramID).
		Return(account, nil).AnyTimes()
	s.mockAccountService.EXPECT().
		GetByTelegramID(gomock.Any(), unknownTelegramID).
		Return(nil, domain.ErrAccountNotFound).AnyTimes()

	// Валидная покупка.
	s.mockOrderService.EXPECT().
		Purchase(gomock.Any(), accountID, int64(1)).
		Return(&domain.OrderReceipt{OrderID: 77, ProductName: "VPN key", PricePaid: 100, Payload: "key-data"}, nil).
		Times(1)
	// Не хватает баллов.
	s.mockOrderService.EXPECT().
		Purchase(gomock.Any(), accountID, int64(2)).
		Return(nil, domain.ErrInsufficientFunds).Times(1)
	// Товар распродан.
	s.mockOrderService.EXPECT().
		Purchase(gomock.Any(), accountID, int64(3)).
		Return(nil, domain.ErrOutOfStock).Times(1)
	// Товар снят с витрины.
	s.mockOrderService.EXPECT().
		Purchase(gomock.Any(), accountID, int64(4)).
		Return(nil, domain.ErrProductUnavailable).Times(1)
	// Лимит на пользователя исчерпан.
	s.mockOrderService.EXPECT().
		Purchase(gomock.Any(), accountID, int64(5)).
		Return(nil, domain.ErrLimitReached).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"telegram_id":100500,"product_id":1}`),
			wantStatus: http.StatusCreated,
		}, {
			name:       "insufficient funds",
			payload:    []byte(`{"telegram_id":100500,"product_id":2}`),
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "out of stock",
			payload:    []byte(`{"telegram_id":100500,"product_id":3}`),
			wantStatus: http.StatusConflict,
		}, {
			name:       "product unavailable",
			payload:    []byte(`{"telegram_id":100500,"product_id":4}`),
			wantStatus: http.StatusNotFound,
		}, {
			name:       "limit reached",
			payload:    []byte(`{"telegram_id":100500,"product_id":5}`),
			wantStatus: http.StatusConflict,
		}, {
			name:       "unknown account",
			payload:    []byte(`{"telegram_id":404404,"product_id":1}`),
			wantStatus: http.StatusNotFound,
		}, {
			name:       "bad request",
			payload:    []byte(`{"telegram_id":100500}`),
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + PurchaseRoute,
				Body:   bytes.NewReader(t.payload),
			}
			res, err := testutils.MakeRequest(args, testutils.WithJSON())
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *StoreHandlerTestSuite) TestIndex() {
	products := []domain.Product{
		{ID: 1, Name: "VPN key", Price: 100, StockQuantity: -1, ContentMode: domain.ContentModeGeneral, IsActive: true},
	}
	s.mockCatalogService.EXPECT().ActiveProducts(gomock.Any()).Return(products, nil)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + ProductsRoute,
	}
	res, err := testutils.MakeRequest(args)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("application/json; charset=utf-8", res.Header.Get("Content-Type"))
}

func (s *StoreHandlerTestSuite) TestShow_NotFound() {
	s.mockCatalogService.EXPECT().
		Product(gomock.Any(), int64(99)).
		Return(nil, domain.ErrRecordNotFound)

	args := testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/store/products/99",
	}
	res, err := testutils.MakeRequest(args)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, res.StatusCode)
}
