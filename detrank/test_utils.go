package detrank

import (
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FtoBD converts a float64 to a Uint with decimals (i * 10^decimals)
func FtoBD(n float64) sdk.Uint {
	return sdk.NewUint(uint64(n * math.Pow(10, float64(Decimals))))
}

// BDtoF converts a fixed-point Uint back to a float64
func BDtoF(n sdk.Uint) float64 {
	return float64(n.Uint64()) / math.Pow(10, float64(Decimals))
}
