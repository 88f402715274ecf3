package models

import "github.com/shopspring/decimal"

type InterestResponse struct {
	AccountNumber string          `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	Balance       decimal.Decimal `json:"balance"`
	Rate          decimal.Decimal `json:"rate"`
	Interest      decimal.Decimal `json:"interest"`
}
