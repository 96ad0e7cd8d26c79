package pkg

// SizeRange returns the geometric sweep lo, lo*mult, lo*mult^2, ...
// The upper bound hi is always the last element even when the
// progression steps over it.
func SizeRange(lo, hi, mult int) []int {
	var sizes []int
	for n := lo; n < hi; n *= mult {
		sizes = append(sizes, n)
	}
	return append(sizes, hi)
}
