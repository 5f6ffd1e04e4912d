package passgen

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
)

// Source supplies the randomness used during generation.
type Source interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Bool returns true or false with equal probability.
	Bool() bool
}

type mathSource struct {
	r *mrand.Rand
}

// NewSource returns a Source backed by the math/rand/v2 global generator.
// It is safe for concurrent use and is not reproducible.
func NewSource() Source {
	return mathSource{}
}

// NewSeededSource returns a Source whose output is fully determined by seed.
// The returned Source is not safe for concurrent use.
func NewSeededSource(seed uint64) Source {
	return mathSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s mathSource) IntN(n int) int {
	if s.r == nil {
		return mrand.IntN(n)
	}
	return s.r.IntN(n)
}

func (s mathSource) Bool() bool {
	return s.IntN(2) == 1
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
// It panics if the system random reader fails, which crypto/rand treats as unrecoverable.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("passgen: invalid argument to IntN")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("passgen: crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}

func (cryptoSource) Bool() bool {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("passgen: crypto/rand failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])&1 == 1
}
