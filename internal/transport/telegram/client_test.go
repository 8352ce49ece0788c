package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fsdevblog/tg-store/internal/transport/telegram"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestSendMessage() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/bottest-token/sendMessage", r.URL.Path)

		var payload map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&payload))
		s.EqualValues(42, payload["chat_id"])
		s.Equal("hello", payload["text"])

		w.Header().Set("Content-Type", "application/json")
		_, wErr := w.Write([]byte(`{"ok":true,"result":{}}`))
		s.NoError(wErr)
	}))

	client := telegram.New("test-token", telegram.WithBaseURL(s.server.URL))
	err := client.SendMessage(context.Background(), 42, "hello")
	s.Require().NoError(err)
}

func (s *ClientTestSuite) TestSendMessage_APIError() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, wErr := w.Write([]byte(`{"ok":false,"description":"bot was blocked by the user"}`))
		s.NoError(wErr)
	}))

	client := telegram.New("test-token", telegram.WithBaseURL(s.server.URL))
	err := client.SendMessage(context.Background(), 42, "hello")

	var apiErr *telegram.APIError
	s.Require().Error(err)
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusForbidden, apiErr.Code)
	s.Equal("bot was blocked by the user", apiErr.Description)
}

func (s *ClientTestSuite) TestGetChatMember() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/bottest-token/getChatMember", r.URL.Path)

		var payload map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&payload))
		s.Equal("@news_channel", payload["chat_id"])

		w.Header().Set("Content-Type", "application/json")
		_, wErr := w.Write([]byte(`{"ok":true,"result":{"status":"member"}}`))
		s.NoError(wErr)
	}))

	client := telegram.New("test-token", telegram.WithBaseURL(s.server.URL))
	member, err := client.GetChatMember(context.Background(), "@news_channel", 42)

	s.Require().NoError(err)
	s.Equal(telegram.MemberStatusMember, member.Status)
}
