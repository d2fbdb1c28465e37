package model

import (
	"encoding/json"
	"fmt"
)

type ScreenState int

const (
	ScreenIdle ScreenState = iota
	ScreenProductLoaded
	ScreenProductNotFound
	ScreenConfirming
)

func (s ScreenState) String() string {
	switch s {
	case ScreenIdle:
		return "IDLE"
	case ScreenProductLoaded:
		return "PRODUCT_LOADED"
	case ScreenProductNotFound:
		return "PRODUCT_NOT_FOUND"
	case ScreenConfirming:
		return "CONFIRMING"
	}
	return "UNKNOWN"
}

func (s ScreenState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ScreenState) UnmarshalText(text []byte) error {
	for _, state := range []ScreenState{ScreenIdle, ScreenProductLoaded, ScreenProductNotFound, ScreenConfirming} {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown screen state %q", text)
}

// Session - состояние экрана, нулевое значение - пустой экран
type Session struct {
	State ScreenState

	Code  string
	Name  string
	Price Price

	Items        []LineItem
	Total        int64
	TotalInvalid bool

	ShowPopup  bool
	FinalTotal json.Number

	// ключ идемпотентности текущего списка
	PurchaseKey string
}

type ViewItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
	Label string `json:"label"`
}

type View struct {
	State      ScreenState `json:"state"`
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	PriceLabel string      `json:"price"`
	Items      []ViewItem  `json:"items"`
	TotalLabel string      `json:"total"`
	ShowPopup  bool        `json:"show_popup"`
	PopupLabel string      `json:"popup,omitempty"`
}

type CodeDTO struct {
	Code string `json:"code"`
}
