package bignum

// SetMaxWordsForTest lowers the growth limit and returns a restore func.
func SetMaxWordsForTest(n int) (restore func()) {
	prev := maxWords
	maxWords = n

	return func() { maxWords = prev }
}

// MulAddWWW exposes the widening word kernel.
var MulAddWWW = mulAddWWW
