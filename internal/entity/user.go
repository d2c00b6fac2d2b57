package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID
	Phone        string
	FirstName    string
	LastName     string
	RewardPoints decimal.Decimal // current loyalty balance, 1 point = 1 ruble
}
