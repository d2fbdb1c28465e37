package service

import (
	"slices"

	"github.com/tribiz/posscreen/internal/model"
)

func enterCode(s model.Session, code string) (model.Session, error) {
	if s.State == model.ScreenConfirming {
		return s, model.ErrPopupOpen
	}

	s.Code = code
	return s, nil
}

func applyProduct(s model.Session, product model.Product) model.Session {
	s.Name = product.Name
	s.Price = product.Price
	if s.State != model.ScreenConfirming {
		s.State = model.ScreenProductLoaded
	}
	return s
}

func applyProductNotFound(s model.Session) model.Session {
	s.Name = model.ProductNotFoundName
	s.Price = ""
	if s.State != model.ScreenConfirming {
		s.State = model.ScreenProductNotFound
	}
	return s
}

// addToList - добавить товар в список покупок
func addToList(s model.Session, strict bool) (model.Session, error) {
	if s.State == model.ScreenConfirming {
		return s, model.ErrPopupOpen
	}

	price, ok := s.Price.Int()
	if !ok && strict {
		return s, model.ErrInvalidPrice
	}

	items := slices.Clone(s.Items)
	s.Items = append(items, model.LineItem{
		Code:  s.Code,
		Name:  s.Name,
		Price: s.Price,
	})

	// новый список - новый ключ идемпотентности
	s.PurchaseKey = ""

	if total, added := addTotal(s.Total, price); ok && added {
		s.Total = total
	} else {
		s.TotalInvalid = true
	}

	s.Code = ""
	s.Name = ""
	s.Price = ""
	s.State = model.ScreenIdle

	return s, nil
}

// preparePurchase - товары к отправке и ключ текущего списка
func preparePurchase(s model.Session, newKey func() string) (model.Session, []model.LineItem, error) {
	if s.State == model.ScreenConfirming {
		return s, nil, model.ErrPopupOpen
	}

	if s.PurchaseKey == "" {
		s.PurchaseKey = newKey()
	}

	items := make([]model.LineItem, len(s.Items))
	copy(items, s.Items)

	return s, items, nil
}

func applyPurchaseResult(s model.Session, result model.PurchaseResult) model.Session {
	s.FinalTotal = result.TotalAmount
	s.ShowPopup = true
	s.State = model.ScreenConfirming
	return s
}

func dismissPopup(s model.Session) (model.Session, error) {
	if !s.ShowPopup {
		return s, model.ErrPopupClosed
	}

	return model.Session{}, nil
}

// addTotal - сложение с проверкой переполнения
func addTotal(total, price int64) (int64, bool) {
	sum := total + price
	if (price > 0 && sum < total) || (price < 0 && sum > total) {
		return total, false
	}
	return sum, true
}
