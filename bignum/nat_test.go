package bignum_test

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cratefit/bignum"
)

const maxWord = ^bignum.Word(0)

// fromBig builds a Nat equal to v through the public hex parser.
func fromBig(t *testing.T, v *big.Int) *bignum.Nat {
	t.Helper()
	var z bignum.Nat
	require.NoError(t, z.SetString(v.Text(16)))

	return &z
}

// randBig returns a random non-negative value of up to words words; every
// third value is made of all-ones words to force carries across boundaries.
func randBig(rng *rand.Rand, words int) *big.Int {
	n := 1 + rng.Intn(words)
	digits := make([]big.Word, n)
	allOnes := rng.Intn(3) == 0
	for i := range digits {
		if allOnes {
			digits[i] = big.Word(maxWord)
			continue
		}
		digits[i] = big.Word(rng.Uint64())
	}
	if rng.Intn(8) == 0 {
		return new(big.Int)
	}

	return new(big.Int).SetBits(digits)
}

func TestNew_RoundTrip(t *testing.T) {
	var v uint64
	for v = 0; v < 4096; v++ {
		assert.Equal(t, strconv.FormatUint(v, 16), bignum.New(bignum.Word(v)).String())
	}
	assert.Equal(t, strconv.FormatUint(uint64(maxWord), 16), bignum.New(maxWord).String())
}

func TestNat_ZeroValue(t *testing.T) {
	var z bignum.Nat
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())
	assert.Equal(t, 1, z.Len())
	assert.Equal(t, bignum.Equal, bignum.Compare(&z, bignum.New(0)))

	require.NoError(t, z.Add(bignum.New(5)))
	assert.Equal(t, "5", z.String())
}

func TestNat_StringPadsInnerWords(t *testing.T) {
	z := bignum.New(1)
	require.NoError(t, z.MulWord(1<<(bignum.WordBits-1)))
	require.NoError(t, z.MulWord(2))
	// 2^W: one leading "1" followed by a fully padded zero word.
	want := "1"
	for i := 0; i < bignum.WordBits/4; i++ {
		want += "0"
	}
	assert.Equal(t, want, z.String())
	assert.Equal(t, 2, z.Len())
}

func TestNat_MulWordMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var i int
	for i = 0; i < 500; i++ {
		a := randBig(rng, 6)
		v := bignum.Word(rng.Uint64())
		if i%5 == 0 {
			v = maxWord
		}
		z := fromBig(t, a)
		require.NoError(t, z.MulWord(v))

		want := new(big.Int).Mul(a, new(big.Int).SetUint64(uint64(v)))
		require.Equal(t, want.Text(16), z.String(), "a=%s v=%x", a.Text(16), v)
	}
}

func TestNat_MulWordByZero(t *testing.T) {
	z := bignum.New(12345)
	require.NoError(t, z.MulWord(0))
	assert.True(t, z.IsZero())
	assert.Equal(t, 1, z.Len())
}

func TestNat_AddMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var i int
	for i = 0; i < 500; i++ {
		a, b := randBig(rng, 5), randBig(rng, 5)
		z := fromBig(t, a)
		require.NoError(t, z.Add(fromBig(t, b)))

		want := new(big.Int).Add(a, b)
		require.Equal(t, want.Text(16), z.String(), "a=%s b=%s", a.Text(16), b.Text(16))
	}
}

func TestNat_AddCarryGrowsWordCount(t *testing.T) {
	z := bignum.New(maxWord)
	require.NoError(t, z.Add(bignum.New(1)))
	assert.Equal(t, 2, z.Len())
	assert.Equal(t, []bignum.Word{0, 1}, z.Words())
}

func TestNat_AddSelf(t *testing.T) {
	z := bignum.New(maxWord)
	require.NoError(t, z.Add(z))
	assert.Equal(t, []bignum.Word{maxWord - 1, 1}, z.Words())
}

func TestNat_SubMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var i int
	for i = 0; i < 500; i++ {
		a, b := randBig(rng, 5), randBig(rng, 5)
		if a.Cmp(b) < 0 {
			a, b = b, a
		}
		z := fromBig(t, a)
		require.NoError(t, z.Sub(fromBig(t, b)))

		want := new(big.Int).Sub(a, b)
		require.Equal(t, want.Text(16), z.String(), "a=%s b=%s", a.Text(16), b.Text(16))
	}
}

func TestNat_SubBorrowShrinks(t *testing.T) {
	z := bignum.New(maxWord)
	require.NoError(t, z.Add(bignum.New(1))) // 2^W
	require.NoError(t, z.Sub(bignum.New(1)))
	assert.Equal(t, []bignum.Word{maxWord}, z.Words())
}

func TestNat_SubUnderflowLeavesReceiver(t *testing.T) {
	z := bignum.New(3)
	err := z.Sub(bignum.New(4))
	require.ErrorIs(t, err, bignum.ErrUnderflow)
	assert.Equal(t, "3", z.String())

	require.NoError(t, z.Sub(z))
	assert.True(t, z.IsZero())
}

func TestCompare(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	var i int
	for i = 0; i < 300; i++ {
		a, b := randBig(rng, 4), randBig(rng, 4)
		got := bignum.Compare(fromBig(t, a), fromBig(t, b))
		require.Equal(t, a.Cmp(b), int(got))
		require.Equal(t, a.Cmp(b), fromBig(t, a).Cmp(fromBig(t, b)))
	}
}

func TestNat_SetCopiesDeep(t *testing.T) {
	src := bignum.New(maxWord)
	require.NoError(t, src.MulWord(maxWord))

	dst := bignum.New(0)
	_, err := dst.Set(src)
	require.NoError(t, err)
	assert.Equal(t, src.String(), dst.String())

	require.NoError(t, src.Add(bignum.New(1)))
	assert.NotEqual(t, src.String(), dst.String(), "copy must not share storage")
}

func TestNat_SetFloat(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want *big.Int
	}{
		{"zero", 0, big.NewInt(0)},
		{"fraction", 0.75, big.NewInt(0)},
		{"truncates", 41.9, big.NewInt(41)},
		{"word boundary", math.Ldexp(1, bits.UintSize), new(big.Int).Lsh(big.NewInt(1), bits.UintSize)},
		{"multi word", math.Ldexp(3, 150), new(big.Int).Lsh(big.NewInt(3), 150)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var z bignum.Nat
			require.NoError(t, z.SetFloat(tc.x))
			assert.Equal(t, tc.want.Text(16), z.String())
		})
	}
}

func TestNat_SetFloatRejectsNonFinite(t *testing.T) {
	z := bignum.New(9)
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		require.ErrorIs(t, z.SetFloat(x), bignum.ErrNotFinite)
		assert.Equal(t, "9", z.String())
	}
}

func TestNat_CapacityExhaustion(t *testing.T) {
	restore := bignum.SetMaxWordsForTest(2)
	defer restore()

	z := bignum.New(maxWord)
	require.NoError(t, z.MulWord(maxWord)) // two words
	before := z.String()

	require.ErrorIs(t, z.MulWord(maxWord), bignum.ErrCapacity)
	assert.Equal(t, before, z.String(), "failed MulWord must not mutate")

	require.ErrorIs(t, z.Add(z), bignum.ErrCapacity)
	assert.Equal(t, before, z.String(), "failed Add must not mutate")

	var f bignum.Nat
	require.ErrorIs(t, f.SetFloat(math.Ldexp(1, 3*bits.UintSize)), bignum.ErrCapacity)
	assert.True(t, f.IsZero())
}

func TestNat_SetStringErrors(t *testing.T) {
	var z bignum.Nat
	assert.ErrorIs(t, z.SetString(""), bignum.ErrSyntax)
	assert.ErrorIs(t, z.SetString("xyz"), bignum.ErrSyntax)
	require.NoError(t, z.SetString("000ff"))
	assert.Equal(t, "ff", z.String())
}

func TestNat_BigInt(t *testing.T) {
	z := bignum.New(maxWord)
	require.NoError(t, z.MulWord(10))
	want := new(big.Int).Mul(new(big.Int).SetUint64(uint64(maxWord)), big.NewInt(10))
	assert.Equal(t, 0, want.Cmp(z.BigInt()))
}

func TestMulAddWWW(t *testing.T) {
	hi, lo := bignum.MulAddWWW(maxWord, maxWord, maxWord)
	// (2^W-1)^2 + (2^W-1) = 2^W(2^W-1)
	assert.Equal(t, maxWord, hi)
	assert.Equal(t, bignum.Word(0), lo)
}

func TestNat_MulUint64(t *testing.T) {
	z := bignum.New(3)
	require.NoError(t, z.MulUint64(1<<40+5))
	want := new(big.Int).Mul(big.NewInt(3), new(big.Int).SetUint64(1<<40+5))
	assert.Equal(t, want.Text(16), z.String())
}

func TestNat_TextMarshalling(t *testing.T) {
	z := bignum.New(maxWord)
	require.NoError(t, z.MulWord(maxWord))
	text, err := z.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, z.String(), string(text))

	var back bignum.Nat
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, bignum.Equal, bignum.Compare(z, &back))

	require.ErrorIs(t, back.UnmarshalText([]byte("0x1")), bignum.ErrSyntax)
	assert.Equal(t, z.String(), back.String(), "failed UnmarshalText must not mutate")
}

func TestNat_Format(t *testing.T) {
	z := bignum.New(0xbeef)
	assert.Equal(t, "beef", z.Text())
	assert.Equal(t, "beef|beef|beef|BEEF", fmt.Sprintf("%s|%v|%x|%X", z, z, z, z))
	assert.Equal(t, "0xbeef 0XBEEF", fmt.Sprintf("%#x %#X", z, z))
	assert.Equal(t, "  beef|beef  |", fmt.Sprintf("%6s|%-6v|", z, z))
	assert.Equal(t, "%!d(bignum.Nat=beef)", fmt.Sprintf("%d", z))
}
