package model

import "encoding/json"

// DefaultOperatorID - код сотрудника кассы
const DefaultOperatorID = "9999999999"

type LineItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

type PurchaseRequest struct {
	OperatorID string     `json:"emp_cd"`
	Items      []LineItem `json:"items"`
}

type PurchaseResult struct {
	TotalAmount json.Number `json:"total_amount"`
}
