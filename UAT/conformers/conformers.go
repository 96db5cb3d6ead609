// Package conformers holds functions and func types that share the callable contract's shape without declaring it
// anywhere.
package conformers

//go:generate go run github.com/toejough/callshape/shapecheck --gen

// Reducer folds the next value into an accumulator.
type Reducer func(acc, next int) int

// Max returns the larger of a and b.
func Max(a, b int) int {
	return max(a, b)
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	return min(a, b)
}

// Fold applies reduce across values, starting from initial.
func Fold(reduce Reducer, initial int, values ...int) int {
	acc := initial
	for _, value := range values {
		acc = reduce(acc, value)
	}

	return acc
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
