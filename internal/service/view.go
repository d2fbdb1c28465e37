package service

import (
	"fmt"

	"github.com/tribiz/posscreen/internal/model"
)

const (
	yen          = "円"
	invalidTotal = "NaN"
)

func render(s model.Session) model.View {
	view := model.View{
		State:     s.State,
		Code:      s.Code,
		Name:      s.Name,
		Items:     make([]model.ViewItem, 0, len(s.Items)),
		ShowPopup: s.ShowPopup,
	}

	if !s.Price.IsZero() {
		view.PriceLabel = string(s.Price) + yen
	}

	for _, item := range s.Items {
		view.Items = append(view.Items, model.ViewItem{
			Code:  item.Code,
			Name:  item.Name,
			Price: item.Price,
			Label: fmt.Sprintf("%s - %s%s", item.Name, item.Price, yen),
		})
	}

	if s.TotalInvalid {
		view.TotalLabel = invalidTotal + yen
	} else {
		view.TotalLabel = fmt.Sprintf("%d%s", s.Total, yen)
	}

	if s.ShowPopup {
		view.PopupLabel = fmt.Sprintf("合計金額（税込）: %s%s", s.FinalTotal, yen)
	}

	return view
}
