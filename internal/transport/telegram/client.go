package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

const defaultRequestTimeout = 10 * time.Second

// Client исходящий HTTP клиент Bot API. Вызывается только после коммита
// локальной транзакции, внутри транзакций БД сетевых вызовов нет.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func New(token string, opts ...func(*Client)) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseURL переопределяет адрес Bot API. Нужен тестам.
func WithBaseURL(baseURL string) func(*Client) {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

//nolint:nonamedreturns
func (c *Client) call(ctx context.Context, method string, payload any) (result json.RawMessage, err error) {
	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal %s payload: %s", method, marshalErr.Error())
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if reqErr != nil {
		return nil, fmt.Errorf("create %s request: %s", method, reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do %s request: %s", method, doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read %s response: %s", method, readErr.Error())
	}

	var apiResp apiResponse
	if jsonErr := json.Unmarshal(respBody, &apiResp); jsonErr != nil {
		return nil, fmt.Errorf("parse %s response: %s", method, jsonErr.Error())
	}
	if !apiResp.OK {
		return nil, NewAPIError(resp.StatusCode, apiResp.Description)
	}
	return apiResp.Result, nil
}

// SendMessage отправляет текстовое сообщение в чат.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := c.call(ctx, "sendMessage", map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	return err
}

// AnswerCallbackQuery закрывает "часики" на инлайн кнопке.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID string, text string) error {
	_, err := c.call(ctx, "answerCallbackQuery", map[string]any{
		"callback_query_id": callbackID,
		"text":              text,
	})
	return err
}

// GetChatMember возвращает статус пользователя в канале. chatID принимает
// и числовой id, и @username канала.
func (c *Client) GetChatMember(ctx context.Context, chatID string, userID int64) (*ChatMember, error) {
	result, err := c.call(ctx, "getChatMember", map[string]any{
		"chat_id": chatID,
		"user_id": userID,
	})
	if err != nil {
		return nil, err
	}

	var member ChatMember
	if jsonErr := json.Unmarshal(result, &member); jsonErr != nil {
		return nil, fmt.Errorf("parse getChatMember result: %s", jsonErr.Error())
	}
	return &member, nil
}
