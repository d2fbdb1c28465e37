package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tribiz/posscreen/internal/model"
	"go.uber.org/zap"

	mockBackend "github.com/tribiz/posscreen/internal/repository/backend/mocks"
)

func newTestScreen(t *testing.T, strict bool) (*Screen, *mockBackend.MockProductRepo, *mockBackend.MockPurchaseRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)

	products := mockBackend.NewMockProductRepo(ctrl)
	purchases := mockBackend.NewMockPurchaseRepo(ctrl)

	svc := New(products, purchases, zap.NewNop().Sugar(), model.DefaultOperatorID, strict)
	svc.newKey = func() string { return "key-1" }

	return svc, products, purchases
}

func TestScreen_LookupProduct_Success(t *testing.T) {
	svc, products, _ := newTestScreen(t, false)

	products.EXPECT().
		Lookup(gomock.Any(), "A1").
		Return(&model.Product{Name: "Pen", Price: "100"}, nil).
		Times(1)

	_, apiErr := svc.EnterCode("  A1\t")
	require.Nil(t, apiErr)

	view, apiErr := svc.LookupProduct(context.Background())

	assert.Nil(t, apiErr)
	assert.Equal(t, model.ScreenProductLoaded, view.State)
	assert.Equal(t, "Pen", view.Name)
	assert.Equal(t, "100円", view.PriceLabel)
	// в поле ввода остается исходный текст
	assert.Equal(t, "  A1\t", view.Code)
}

func TestScreen_LookupProduct_NotFound(t *testing.T) {
	svc, products, _ := newTestScreen(t, false)

	products.EXPECT().
		Lookup(gomock.Any(), "ZZZ").
		Return(nil, fmt.Errorf("%w: code %q", model.ErrProductNotFound, "ZZZ")).
		Times(1)

	svc.EnterCode("ZZZ")
	view, apiErr := svc.LookupProduct(context.Background())

	assert.Nil(t, apiErr)
	assert.Equal(t, model.ScreenProductNotFound, view.State)
	assert.Equal(t, model.ProductNotFoundName, view.Name)
	assert.Empty(t, view.PriceLabel)
}

func TestScreen_LookupProduct_TransportErrorKeepsState(t *testing.T) {
	svc, products, _ := newTestScreen(t, false)

	gomock.InOrder(
		products.EXPECT().
			Lookup(gomock.Any(), "A1").
			Return(&model.Product{Name: "Pen", Price: "100"}, nil),
		products.EXPECT().
			Lookup(gomock.Any(), "B2").
			Return(nil, errors.New("connection refused")),
	)

	svc.EnterCode("A1")
	svc.LookupProduct(context.Background())
	svc.EnterCode("B2")
	before := svc.snapshot()

	view, apiErr := svc.LookupProduct(context.Background())

	assert.Nil(t, apiErr)
	assert.Equal(t, before, svc.snapshot())
	assert.Equal(t, "Pen", view.Name)
}

func TestScreen_LookupProduct_PopupOpen(t *testing.T) {
	svc, _, _ := newTestScreen(t, false)
	svc.session = model.Session{State: model.ScreenConfirming, ShowPopup: true}

	_, apiErr := svc.LookupProduct(context.Background())

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)
}

func TestScreen_LookupProduct_StaleResponseIsApplied(t *testing.T) {
	svc, products, _ := newTestScreen(t, false)

	svc.session = loadedSession("A1", "Pen", "100")

	products.EXPECT().
		Lookup(gomock.Any(), "A1").
		DoAndReturn(func(ctx context.Context, code string) (*model.Product, error) {
			// пока запрос в полете, кассир успевает добавить товар
			_, apiErr := svc.AddToList()
			require.Nil(t, apiErr)
			return &model.Product{Name: "Pen", Price: "100"}, nil
		})

	view, apiErr := svc.LookupProduct(context.Background())

	assert.Nil(t, apiErr)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "Pen", view.Name)
	assert.Empty(t, view.Code)
}

func TestScreen_AddToList(t *testing.T) {
	svc, _, _ := newTestScreen(t, false)
	svc.session = loadedSession("A1", "Pen", "100")

	view, apiErr := svc.AddToList()

	assert.Nil(t, apiErr)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "100円", view.TotalLabel)
	assert.Empty(t, view.Code)
	assert.Empty(t, view.Name)
	assert.Empty(t, view.PriceLabel)
}

func TestScreen_AddToList_StrictInvalidPrice(t *testing.T) {
	svc, _, _ := newTestScreen(t, true)
	svc.session = model.Session{State: model.ScreenProductNotFound, Code: "ZZZ", Name: model.ProductNotFoundName}

	view, apiErr := svc.AddToList()

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Code)
	assert.Equal(t, model.ErrInvalidPriceMessage, apiErr.Message)
	assert.Empty(t, view.Items)
	assert.Equal(t, "ZZZ", view.Code)
}

func TestScreen_SubmitPurchase_Failure(t *testing.T) {
	svc, _, purchases := newTestScreen(t, false)
	svc.session = model.Session{Items: []model.LineItem{{Code: "A1", Name: "Pen", Price: "100"}}, Total: 100}

	items := []model.LineItem{{Code: "A1", Name: "Pen", Price: "100"}}

	purchases.EXPECT().
		Submit(gomock.Any(), model.DefaultOperatorID, items, "key-1").
		Return(nil, fmt.Errorf("%w: 500 Internal Server Error", model.ErrSubmitFailed)).
		Times(2)

	view, apiErr := svc.SubmitPurchase(context.Background())

	assert.Nil(t, apiErr)
	assert.False(t, view.ShowPopup)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "100円", view.TotalLabel)

	// повторная отправка уходит с тем же ключом и тем же списком
	view, apiErr = svc.SubmitPurchase(context.Background())

	assert.Nil(t, apiErr)
	assert.False(t, view.ShowPopup)
}

func TestScreen_SubmitPurchase_PopupOpen(t *testing.T) {
	svc, _, _ := newTestScreen(t, false)
	svc.session = model.Session{State: model.ScreenConfirming, ShowPopup: true}

	_, apiErr := svc.SubmitPurchase(context.Background())

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)
	assert.Equal(t, model.ErrPopupOpenMessage, apiErr.Message)
}

func TestScreen_DismissPopup_NotOpen(t *testing.T) {
	svc, _, _ := newTestScreen(t, false)

	_, apiErr := svc.DismissPopup()

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)
	assert.Equal(t, model.ErrPopupClosedMessage, apiErr.Message)
}

func TestScreen_PurchaseFlow(t *testing.T) {
	svc, products, purchases := newTestScreen(t, false)

	products.EXPECT().
		Lookup(gomock.Any(), "A1").
		Return(&model.Product{Name: "Pen", Price: "100"}, nil)

	purchases.EXPECT().
		Submit(gomock.Any(), model.DefaultOperatorID, []model.LineItem{{Code: "A1", Name: "Pen", Price: "100"}}, "key-1").
		Return(&model.PurchaseResult{TotalAmount: json.Number("108")}, nil)

	svc.EnterCode("A1")
	svc.LookupProduct(context.Background())

	view, apiErr := svc.AddToList()
	require.Nil(t, apiErr)
	assert.Equal(t, []model.LineItem{{Code: "A1", Name: "Pen", Price: "100"}}, svc.snapshot().Items)
	assert.Equal(t, "100円", view.TotalLabel)

	view, apiErr = svc.SubmitPurchase(context.Background())
	require.Nil(t, apiErr)
	assert.True(t, view.ShowPopup)
	assert.Equal(t, model.ScreenConfirming, view.State)
	assert.Equal(t, "合計金額（税込）: 108円", view.PopupLabel)

	_, apiErr = svc.EnterCode("B2")
	require.NotNil(t, apiErr)

	view, apiErr = svc.DismissPopup()
	require.Nil(t, apiErr)
	assert.Equal(t, model.ScreenIdle, view.State)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0円", view.TotalLabel)
	assert.Equal(t, model.Session{}, svc.snapshot())
}

func TestScreen_UnregisteredProductFlow(t *testing.T) {
	svc, products, _ := newTestScreen(t, false)

	products.EXPECT().
		Lookup(gomock.Any(), "ZZZ").
		Return(nil, model.ErrProductNotFound)

	svc.EnterCode("ZZZ")
	view, _ := svc.LookupProduct(context.Background())
	assert.Equal(t, model.ProductNotFoundName, view.Name)

	view, apiErr := svc.AddToList()

	assert.Nil(t, apiErr)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "NaN円", view.TotalLabel)
}

func TestScreen_NewPurchaseGetsNewKey(t *testing.T) {
	svc, _, purchases := newTestScreen(t, false)

	keys := []string{"key-1", "key-2"}
	svc.newKey = func() string {
		key := keys[0]
		keys = keys[1:]
		return key
	}

	gomock.InOrder(
		purchases.EXPECT().
			Submit(gomock.Any(), model.DefaultOperatorID, gomock.Any(), "key-1").
			Return(&model.PurchaseResult{TotalAmount: json.Number("0")}, nil),
		purchases.EXPECT().
			Submit(gomock.Any(), model.DefaultOperatorID, gomock.Any(), "key-2").
			Return(&model.PurchaseResult{TotalAmount: json.Number("0")}, nil),
	)

	svc.SubmitPurchase(context.Background())
	svc.DismissPopup()
	svc.SubmitPurchase(context.Background())
}

func TestToAPIError_Unknown(t *testing.T) {
	apiErr := toAPIError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrInternalServerMessage, apiErr.Message)
}
