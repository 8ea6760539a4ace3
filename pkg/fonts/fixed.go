package fonts

import "golang.org/x/image/math/fixed"

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
