package pkg

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const NymAddressPrefix = "n"

// ValidateNymAddress checks that address is a bech32 account address with the
// nym prefix.
func ValidateNymAddress(address string) error {
	bz, err := sdk.GetFromBech32(address, NymAddressPrefix)
	if err != nil {
		return err
	}

	return sdk.VerifyAddressFormat(bz)
}
