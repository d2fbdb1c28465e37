package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Price - цена товара в виде текста, как ее показывает экран
type Price string

type Product struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// Int - целая часть цены по ведущим цифрам ("100.5" -> 100, "" -> нет значения)
func (p Price) Int() (int64, bool) {
	s := strings.TrimLeft(string(p), " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// IsZero - цена не выводится на экран
func (p Price) IsZero() bool {
	if p == "" {
		return true
	}
	f, err := strconv.ParseFloat(string(p), 64)
	return err == nil && f == 0
}

func (p Price) isNumber() bool {
	if _, err := strconv.ParseFloat(string(p), 64); err != nil {
		return false
	}
	return json.Valid([]byte(p))
}

// MarshalJSON - числовая цена уходит числом, остальное строкой
func (p Price) MarshalJSON() ([]byte, error) {
	if p.isNumber() {
		return []byte(p), nil
	}
	return json.Marshal(string(p))
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = normalizeNumber(n)

	return nil
}

// normalizeNumber - число в том виде, в каком его выводит браузер (100.0 -> 100, 1e2 -> 100)
func normalizeNumber(n json.Number) Price {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Price(n.String())
	}
	if f == 0 {
		f = 0 // -0
	}

	return Price(strconv.FormatFloat(f, 'f', -1, 64))
}
