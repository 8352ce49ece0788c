package adnet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const shortestBaseURL = "https://api.shorte.st"

const shortestTimeout = 10 * time.Second

// ShortestClient клиент shorte.st. Реализует service.LinkShortener: выдает
// укороченную ссылку с вшитым токеном клика, по которому пользователь потом
// подтверждает переход.
type ShortestClient struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
}

func NewShortest(apiToken string, opts ...func(*ShortestClient)) *ShortestClient {
	c := &ShortestClient{
		apiToken: apiToken,
		baseURL:  shortestBaseURL,
		httpClient: &http.Client{
			Timeout: shortestTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithShortestBaseURL переопределяет адрес API. Нужен тестам.
func WithShortestBaseURL(baseURL string) func(*ShortestClient) {
	return func(c *ShortestClient) {
		c.baseURL = baseURL
	}
}

type shortestResponse struct {
	Status       string `json:"status"`
	ShortenedURL string `json:"shortenedUrl"`
}

// Shorten укорачивает destinationURL, добавив к нему трекинговый токен.
// Вызывается строго вне транзакций БД.
//
//nolint:nonamedreturns
func (c *ShortestClient) Shorten(ctx context.Context, destinationURL string, alias string) (shortened string, err error) {
	target, parseErr := withTrackingToken(destinationURL, alias)
	if parseErr != nil {
		return "", parseErr
	}

	form := url.Values{}
	form.Set("urlToShorten", target)

	req, reqErr := http.NewRequestWithContext(
		ctx, http.MethodPut, c.baseURL+"/v1/data/url", strings.NewReader(form.Encode()),
	)
	if reqErr != nil {
		return "", errors.Wrap(reqErr, "create shorte.st request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("public-api-token", c.apiToken)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return "", errors.Wrap(doErr, "do shorte.st request")
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close shorte.st response")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("shorte.st status code %d", resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return "", errors.Wrap(readErr, "read shorte.st response")
	}

	var response shortestResponse
	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		return "", errors.Wrap(jsonErr, "parse shorte.st response")
	}
	if response.Status != "ok" || response.ShortenedURL == "" {
		return "", errors.Errorf("shorte.st rejected url: status %q", response.Status)
	}
	return response.ShortenedURL, nil
}

// withTrackingToken добавляет токен клика параметром запроса к целевой ссылке.
func withTrackingToken(destinationURL string, alias string) (string, error) {
	parsed, err := url.Parse(destinationURL)
	if err != nil {
		return "", errors.Wrap(err, "parse destination url")
	}
	if alias != "" {
		query := parsed.Query()
		query.Set("sub_id", alias)
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}
