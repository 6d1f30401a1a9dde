package cube

import "gonum.org/v1/gonum/stat/combin"

// Cnk returns the binomial coefficient n choose k, or 0 when n < k.
func Cnk(n, k int) int {
	if n < k {
		return 0
	}
	return combin.Binomial(n, k)
}

// Factorial returns n!.
func Factorial(n int) int {
	return combin.NumPermutations(n, n)
}

// rotateLeft rotates a[l..r] one place to the left.
func rotateLeft(a []int8, l, r int) {
	tmp := a[l]
	copy(a[l:r], a[l+1:r+1])
	a[r] = tmp
}

// rotateRight rotates a[l..r] one place to the right.
func rotateRight(a []int8, l, r int) {
	tmp := a[r]
	copy(a[l+1:r+1], a[l:r])
	a[l] = tmp
}
