package adnet_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fsdevblog/tg-store/internal/service"
	"github.com/fsdevblog/tg-store/internal/transport/adnet"
	"github.com/stretchr/testify/suite"
)

type CPAGripTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestCPAGripSuite(t *testing.T) {
	suite.Run(t, new(CPAGripTestSuite))
}

func (s *CPAGripTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *CPAGripTestSuite) TestOffers() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/common/offer_feed_json.php", r.URL.Path)
		s.Equal("user-1", r.URL.Query().Get("user_id"))
		s.Equal("secret", r.URL.Query().Get("key"))
		s.Equal("10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		body := `{"offers":[
			{"title":"Survey","description":"Short survey","offerlink":"https://cpagrip.example/o/1"},
			{"title":"Broken","description":"no link","offerlink":""}
		]}`
		_, wErr := w.Write([]byte(body))
		s.NoError(wErr)
	}))

	client := adnet.NewCPAGrip("user-1", "secret", adnet.WithCPAGripBaseURL(s.server.URL))
	offers, err := client.Offers(context.Background(), 10)

	s.Require().NoError(err)
	// офферы без ссылки отбрасываются
	s.Equal([]service.Offer{
		{Title: "Survey", Description: "Short survey", URL: "https://cpagrip.example/o/1"},
	}, offers)
}

func (s *CPAGripTestSuite) TestOffers_StatusCode() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	client := adnet.NewCPAGrip("user-1", "secret", adnet.WithCPAGripBaseURL(s.server.URL))
	_, err := client.Offers(context.Background(), 10)

	s.Require().Error(err)
	s.Contains(err.Error(), "status code 403")
}
