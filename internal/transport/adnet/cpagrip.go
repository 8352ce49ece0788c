package adnet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fsdevblog/tg-store/internal/service"
	"github.com/pkg/errors"
)

const cpagripBaseURL = "https://www.cpagrip.com"

const cpagripTimeout = 15 * time.Second

// CPAGripClient клиент офферной ленты CPAGrip. Используется админским
// импортом партнерских ссылок.
type CPAGripClient struct {
	userID     string
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewCPAGrip(userID string, apiKey string, opts ...func(*CPAGripClient)) *CPAGripClient {
	c := &CPAGripClient{
		userID:  userID,
		apiKey:  apiKey,
		baseURL: cpagripBaseURL,
		httpClient: &http.Client{
			Timeout: cpagripTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCPAGripBaseURL переопределяет адрес API. Нужен тестам.
func WithCPAGripBaseURL(baseURL string) func(*CPAGripClient) {
	return func(c *CPAGripClient) {
		c.baseURL = baseURL
	}
}

type cpagripFeed struct {
	Offers []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OfferLink   string `json:"offerlink"`
	} `json:"offers"`
}

// Offers возвращает до limit офферов из ленты.
//
//nolint:nonamedreturns
func (c *CPAGripClient) Offers(ctx context.Context, limit int) (offers []service.Offer, err error) {
	query := url.Values{}
	query.Set("user_id", c.userID)
	query.Set("key", c.apiKey)
	query.Set("limit", strconv.Itoa(limit))

	feedURL := c.baseURL + "/common/offer_feed_json.php?" + query.Encode()
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if reqErr != nil {
		return nil, errors.Wrap(reqErr, "create cpagrip request")
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, errors.Wrap(doErr, "do cpagrip request")
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close cpagrip response")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("cpagrip status code %d", resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, errors.Wrap(readErr, "read cpagrip response")
	}

	var feed cpagripFeed
	if jsonErr := json.Unmarshal(body, &feed); jsonErr != nil {
		return nil, errors.Wrap(jsonErr, "parse cpagrip feed")
	}

	offers = make([]service.Offer, 0, len(feed.Offers))
	for _, item := range feed.Offers {
		if item.OfferLink == "" {
			continue
		}
		offers = append(offers, service.Offer{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.OfferLink,
		})
	}
	return offers, nil
}
