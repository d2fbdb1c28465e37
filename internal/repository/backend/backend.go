package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tribiz/posscreen/internal/model"
	"github.com/tribiz/posscreen/pgk/httpclient"
)

const (
	productPath  = "/product/"
	purchasePath = "/purchase"

	IdempotencyKeyHeader = "Idempotency-Key"
)

// Repository - клиент бэкенда кассы: поиск товара и отправка покупки
type Repository struct {
	apiURL string
	client *httpclient.Client
}

func New(apiURL string, client *httpclient.Client) *Repository {
	return &Repository{
		apiURL: strings.TrimRight(apiURL, "/"),
		client: client,
	}
}

// Lookup - получить наименование и цену товара по коду
func (r *Repository) Lookup(ctx context.Context, code string) (*model.Product, error) {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, r.apiURL+productPath+url.PathEscape(code), nil)
	if err != nil {
		return nil, err
	}

	product, err := httpclient.DoJSON[model.Product](ctx, r.client, req)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			return nil, fmt.Errorf("%w: code %q: %v", model.ErrProductNotFound, code, err)
		}
		return nil, fmt.Errorf("product lookup request failed: %w", err)
	}

	return product, nil
}

// Submit - отправить покупку целиком одним запросом
func (r *Repository) Submit(ctx context.Context, operatorID string, items []model.LineItem, idempotencyKey string) (*model.PurchaseResult, error) {
	if items == nil {
		items = []model.LineItem{}
	}

	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, r.apiURL+purchasePath, model.PurchaseRequest{
		OperatorID: operatorID,
		Items:      items,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSubmitFailed, err)
	}

	if idempotencyKey != "" {
		req.Header.Set(IdempotencyKeyHeader, idempotencyKey)
	}

	result, err := httpclient.DoJSON[model.PurchaseResult](ctx, r.client, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSubmitFailed, err)
	}

	return result, nil
}
