package types

import (
	sdkmath "cosmossdk.io/math"
)

const (
	// BaseDenom is the network's base minor unit.
	BaseDenom = "unym"
	// DisplayDenom is the unit amounts are displayed in.
	DisplayDenom = "NYM"
	// MicroPerUnit is the number of BaseDenom units in one DisplayDenom.
	MicroPerUnit int64 = 1_000_000
)

// Coin is an amount as returned by the upstream apis: an integer string in
// the minor unit plus its denom.
type Coin struct {
	Amount string `json:"amount" bson:"amount"`
	Denom  string `json:"denom" bson:"denom"`
}

func NewBaseCoin(amount string) Coin {
	return Coin{Amount: amount, Denom: BaseDenom}
}

// Int parses the amount. An empty amount is treated as zero.
func (c Coin) Int() (sdkmath.Int, error) {
	if c.Amount == "" {
		return sdkmath.ZeroInt(), nil
	}
	v, ok := sdkmath.NewIntFromString(c.Amount)
	if !ok {
		return sdkmath.Int{}, NewInvalidParameterError("amount", c.Amount, "not an integer")
	}
	return v, nil
}

func (c Coin) IsZero() bool {
	v, err := c.Int()
	return err == nil && v.IsZero()
}
