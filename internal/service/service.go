package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tribiz/posscreen/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=../repository/backend/mocks/mocks.go -package=mocks

type ProductRepo interface {
	Lookup(ctx context.Context, code string) (*model.Product, error)
}

type PurchaseRepo interface {
	Submit(ctx context.Context, operatorID string, items []model.LineItem, idempotencyKey string) (*model.PurchaseResult, error)
}

// Screen - экран кассы, mu не держится во время запроса к бэкенду
type Screen struct {
	products  ProductRepo
	purchases PurchaseRepo
	lg        *zap.SugaredLogger

	operatorID         string
	rejectInvalidPrice bool
	newKey             func() string

	mu      sync.Mutex
	session model.Session
}

func New(p ProductRepo, pr PurchaseRepo, lg *zap.SugaredLogger, operatorID string, rejectInvalidPrice bool) *Screen {
	return &Screen{
		products:  p,
		purchases: pr,
		lg:        lg,

		operatorID:         operatorID,
		rejectInvalidPrice: rejectInvalidPrice,
		newKey:             uuid.NewString,
	}
}

func (s *Screen) snapshot() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

func (s *Screen) View() model.View {
	return render(s.snapshot())
}

func (s *Screen) EnterCode(code string) (model.View, *model.APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := enterCode(s.session, code)
	if err != nil {
		return render(s.session), toAPIError(err)
	}
	s.session = next

	return render(s.session), nil
}

func (s *Screen) LookupProduct(ctx context.Context) (model.View, *model.APIError) {
	current := s.snapshot()
	if current.State == model.ScreenConfirming {
		return render(current), toAPIError(model.ErrPopupOpen)
	}

	code := strings.TrimSpace(current.Code)
	product, err := s.products.Lookup(ctx, code)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.session = applyProduct(s.session, *product)
	case errors.Is(err, model.ErrProductNotFound):
		s.session = applyProductNotFound(s.session)
	default:
		// сбой транспорта: только в лог, экран не меняется
		s.lg.Errorf("fetch product %q error: %v", code, err)
	}

	return render(s.session), nil
}

func (s *Screen) AddToList() (model.View, *model.APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := addToList(s.session, s.rejectInvalidPrice)
	if err != nil {
		return render(s.session), toAPIError(err)
	}
	s.session = next

	return render(s.session), nil
}

func (s *Screen) SubmitPurchase(ctx context.Context) (model.View, *model.APIError) {
	s.mu.Lock()
	next, items, err := preparePurchase(s.session, s.newKey)
	if err != nil {
		view := render(s.session)
		s.mu.Unlock()
		return view, toAPIError(err)
	}
	s.session = next
	key := next.PurchaseKey
	s.mu.Unlock()

	result, err := s.purchases.Submit(ctx, s.operatorID, items, key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lg.Errorf("submit purchase (%d items) error: %v", len(items), err)
		return render(s.session), nil
	}

	s.session = applyPurchaseResult(s.session, *result)
	s.lg.Infof("purchase completed: %d items, total amount %s", len(items), result.TotalAmount)

	return render(s.session), nil
}

func (s *Screen) DismissPopup() (model.View, *model.APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := dismissPopup(s.session)
	if err != nil {
		return render(s.session), toAPIError(err)
	}
	s.session = next

	return render(s.session), nil
}

func toAPIError(err error) *model.APIError {
	switch {
	case errors.Is(err, model.ErrPopupOpen):
		return &model.APIError{
			Code:    http.StatusConflict,
			Message: model.ErrPopupOpenMessage,
		}
	case errors.Is(err, model.ErrPopupClosed):
		return &model.APIError{
			Code:    http.StatusConflict,
			Message: model.ErrPopupClosedMessage,
		}
	case errors.Is(err, model.ErrInvalidPrice):
		return &model.APIError{
			Code:    http.StatusUnprocessableEntity,
			Message: model.ErrInvalidPriceMessage,
		}
	}

	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: model.ErrInternalServerMessage,
	}
}
