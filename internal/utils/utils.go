package utils

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/wildstyl3r/tecsim/internal/constants"
)

func Argmax[T cmp.Ordered](arr []T) (argmax int) {
	for i := range arr {
		if cmp.Compare(arr[i], arr[argmax]) == 1 {
			argmax = i
		}
	}
	return
}

type Number interface {
	constraints.Float | constraints.Integer
}

func SumSlice[T Number](arr []T) (r T) {
	for i := range arr {
		r += arr[i]
	}
	return
}

func EV2J(val float64) float64 {
	return val * constants.ElectronCharge
}

func J2eV(val float64) float64 {
	return val / constants.ElectronCharge
}
