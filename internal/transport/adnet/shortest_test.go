package adnet_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fsdevblog/tg-store/internal/transport/adnet"
	"github.com/stretchr/testify/suite"
)

type ShortestTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestShortestSuite(t *testing.T) {
	suite.Run(t, new(ShortestTestSuite))
}

func (s *ShortestTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ShortestTestSuite) TestShorten() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPut, r.Method)
		s.Equal("/v1/data/url", r.URL.Path)
		s.Equal("api-token", r.Header.Get("public-api-token"))

		s.Require().NoError(r.ParseForm())
		// токен клика вшивается в целевую ссылку
		s.Equal("https://offer.example.com/landing?sub_id=usr1_7", r.PostForm.Get("urlToShorten"))

		w.Header().Set("Content-Type", "application/json")
		_, wErr := w.Write([]byte(`{"status":"ok","shortenedUrl":"https://shrt.st/abc"}`))
		s.NoError(wErr)
	}))

	client := adnet.NewShortest("api-token", adnet.WithShortestBaseURL(s.server.URL))
	shortened, err := client.Shorten(context.Background(), "https://offer.example.com/landing", "usr1_7")

	s.Require().NoError(err)
	s.Equal("https://shrt.st/abc", shortened)
}

func (s *ShortestTestSuite) TestShorten_Rejected() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, wErr := w.Write([]byte(`{"status":"error"}`))
		s.NoError(wErr)
	}))

	client := adnet.NewShortest("api-token", adnet.WithShortestBaseURL(s.server.URL))
	_, err := client.Shorten(context.Background(), "https://offer.example.com/landing", "usr1_7")

	s.Require().Error(err)
	s.Contains(err.Error(), "rejected")
}

func (s *ShortestTestSuite) TestShorten_StatusCode() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	client := adnet.NewShortest("api-token", adnet.WithShortestBaseURL(s.server.URL))
	_, err := client.Shorten(context.Background(), "https://offer.example.com/landing", "usr1_7")

	s.Require().Error(err)
	s.Contains(err.Error(), "status code 401")
}
