package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Config struct {
	Timeout time.Duration // Таймаут запроса, 0 - без ограничения
}

type Client struct {
	client *http.Client
	config Config
}

// StatusError - ответ получен, но код не 2xx
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status: %s", e.Status)
}

func NewClient(config Config) *Client {
	if config.Timeout < 0 {
		config.Timeout = 0
	}

	return &Client{
		client: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
	}
}

// isSuccess определяет, считается ли ответ успешным
func isSuccess(resp *http.Response) bool {
	if resp == nil {
		return false
	}

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

// Do выполняет запрос один раз. Ошибка возвращается только при сбое транспорта.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	return resp, nil
}

// DoJSON выполняет запрос и декодирует JSON тело успешного ответа в T
func DoJSON[T any](ctx context.Context, c *Client, req *http.Request) (*T, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp) {
		// дочитываем тело, чтобы соединение вернулось в пул
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body T
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &body, nil
}

// NewJSONRequest создает запрос с телом в формате JSON
func NewJSONRequest(ctx context.Context, method, url string, data any) (*http.Request, error) {
	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
