package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage = "internal server error"
	ErrInvalidPriceMessage   = "price is not an integer"
	ErrPopupOpenMessage      = "purchase popup is open"
	ErrPopupClosedMessage    = "purchase popup is not open"

	// название вместо товара, которого нет в мастере
	ProductNotFoundName = "商品がマスタ未登録です"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSubmitFailed    = errors.New("purchase submit failed")

	ErrInvalidPrice = errors.New(ErrInvalidPriceMessage)
	ErrPopupOpen    = errors.New(ErrPopupOpenMessage)
	ErrPopupClosed  = errors.New(ErrPopupClosedMessage)
)
