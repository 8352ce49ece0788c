package api

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/tg-store/internal/domain"
	"github.com/fsdevblog/tg-store/internal/logger"
	"github.com/fsdevblog/tg-store/internal/service/tokens"
	"github.com/fsdevblog/tg-store/internal/transport/api/mocks"
	"github.com/fsdevblog/tg-store/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAdminService   *mocks.MockAdminServicer
	mockAccountService *mocks.MockAccountServicer
	jwtSecret          []byte
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockAdminService = mocks.NewMockAdminServicer(mockCtrl)
	s.mockAccountService = mocks.NewMockAccountServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		AdminService:   s.mockAdminService,
		AccountService: s.mockAccountService,
		AdminJWTSecret: s.jwtSecret,
	})
}

func (s *AdminHandlerTestSuite) adminToken() string {
	token, err := tokens.GenerateAdminJWT("ops", time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *AdminHandlerTestSuite) TestAdjust() {
	var accountID int64 = 10
	var telegramID int64 = 100500

	account := &domain.Account{ID: accountID, TelegramID: telegramID}
	s.mockAccountService.EXPECT().
		GetByTelegramID(gomock.Any(), telegramID).
		Return(account, nil).AnyTimes()

	// Начисление.
	s.mockAdminService.EXPECT().
		Adjust(gomock.Any(), accountID, int64(50), "bonus").
		Return(nil).Times(1)
	// Списание уходит в минус.
	s.mockAdminService.EXPECT().
		Adjust(gomock.Any(), accountID, int64(-1000), "").
		Return(domain.ErrInsufficientFunds).Times(1)

	validToken := s.adminToken()
	staleToken, staleErr := tokens.GenerateAdminJWT("ops", -time.Hour, s.jwtSecret)
	s.Require().NoError(staleErr)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"telegram_id":100500,"amount":50,"description":"bonus"}`),
			jwtToken:   validToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "insufficient funds",
			payload:    []byte(`{"telegram_id":100500,"amount":-1000}`),
			jwtToken:   validToken,
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "not authorized",
			payload:    []byte(`{"telegram_id":100500,"amount":50}`),
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "expired token",
			payload:    []byte(`{"telegram_id":100500,"amount":50}`),
			jwtToken:   staleToken,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "missing amount",
			payload:    []byte(`{"telegram_id":100500}`),
			jwtToken:   validToken,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + AdminGroup + AdminAdjustRoute,
				Body:   bytes.NewReader(t.payload),
			}
			reqOpts := []func(*testutils.RequestOptions){testutils.WithJSON()}
			if t.jwtToken != "" {
				authHeader := fmt.Sprintf("Bearer %s", t.jwtToken)
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", authHeader))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *AdminHandlerTestSuite) TestAddInventory() {
	s.mockAdminService.EXPECT().
		AddInventory(gomock.Any(), int64(5), []string{"code-1", "code-2"}).
		Return(int64(2), nil).Times(1)
	s.mockAdminService.EXPECT().
		AddInventory(gomock.Any(), int64(6), []string{"code-1"}).
		Return(int64(0), domain.ErrProductUnavailable).Times(1)

	cases := []struct {
		name       string
		url        string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "all ok",
			url:        RouteGroup + AdminGroup + "/products/5/inventory",
			payload:    []byte(`{"payloads":["code-1","code-2"]}`),
			wantStatus: http.StatusCreated,
		}, {
			name:       "general product",
			url:        RouteGroup + AdminGroup + "/products/6/inventory",
			payload:    []byte(`{"payloads":["code-1"]}`),
			wantStatus: http.StatusNotFound,
		}, {
			name:       "empty batch",
			url:        RouteGroup + AdminGroup + "/products/5/inventory",
			payload:    []byte(`{"payloads":[]}`),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    t.url,
				Body:   bytes.NewReader(t.payload),
			}
			authHeader := fmt.Sprintf("Bearer %s", s.adminToken())
			res, err := testutils.MakeRequest(args, testutils.WithJSON(), testutils.WithHeader("Authorization", authHeader))
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
