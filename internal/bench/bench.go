// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bench compares the cost of aggregating extended values with the cost of aggregating primitives.
package bench

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"time"

	"github.com/avdva/extended"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrMismatch is returned, if aggregates of the same sample disagree.
	ErrMismatch = errors.New("aggregates do not agree")
)

// Config describes a benchmark run.
type Config struct {
	// Size is the number of samples.
	Size int `toml:"size"`
	// Min and Max are the inclusive bounds of the samples.
	Min int64 `toml:"min"`
	Max int64 `toml:"max"`
	// Seed initializes the random source.
	Seed int64 `toml:"seed"`
}

// DefaultConfig returns 4,000,000 samples in [-1000, 1000].
func DefaultConfig() Config {
	return Config{
		Size: 4000000,
		Min:  -1000,
		Max:  1000,
		Seed: 1,
	}
}

// Validate checks that the config can be used by Run.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Min > c.Max {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidConfig, c.Min, c.Max)
	}
	if span := c.Max - c.Min; span < 0 || span == math.MaxInt64 {
		return fmt.Errorf("%w: range [%d, %d] is too wide", ErrInvalidConfig, c.Min, c.Max)
	}
	return nil
}

// Result holds the aggregates and timings of a run.
// Products wrap around in the same way for primitives and extended values.
type Result struct {
	Size int

	PrimitiveSum     int64
	PrimitiveProduct int64
	ExtendedSum      extended.Value[int64]
	ExtendedProduct  extended.Value[int64]
	// DecimalSum is the exact sum of the samples, it may be out of the int64 range.
	DecimalSum decimal.Decimal

	PrimitiveTime time.Duration
	ExtendedTime  time.Duration
	DecimalTime   time.Duration
}

// Overhead returns ExtendedTime / PrimitiveTime.
func (r Result) Overhead() float64 {
	if r.PrimitiveTime <= 0 {
		return 0
	}
	return float64(r.ExtendedTime) / float64(r.PrimitiveTime)
}

// Run generates a random sample, computes its sum and product as primitives, as extended values,
// and the exact sum as decimals, and checks that they agree.
// The returned Result is filled even if the aggregates disagree.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	nums := Sample(cfg)
	ext := Extend(nums)
	res := Result{Size: cfg.Size}

	start := time.Now()
	res.PrimitiveSum, res.PrimitiveProduct = operate(nums)
	res.PrimitiveTime = time.Since(start)

	start = time.Now()
	sum, prod, err := operateExtended(ext)
	res.ExtendedTime = time.Since(start)
	if err != nil {
		return res, err
	}
	res.ExtendedSum, res.ExtendedProduct = sum, prod

	start = time.Now()
	res.DecimalSum = operateDecimal(nums)
	res.DecimalTime = time.Since(start)

	return res, res.check()
}

func (r Result) check() error {
	if !r.ExtendedSum.Eq(extended.Finite(r.PrimitiveSum)) {
		return fmt.Errorf("%w: sums %d and %v", ErrMismatch, r.PrimitiveSum, r.ExtendedSum)
	}
	if !r.ExtendedProduct.Eq(extended.Finite(r.PrimitiveProduct)) {
		return fmt.Errorf("%w: products %d and %v", ErrMismatch, r.PrimitiveProduct, r.ExtendedProduct)
	}
	if !wrap(r.DecimalSum).Equal(decimal.NewFromInt(r.PrimitiveSum)) {
		return fmt.Errorf("%w: sums %d and %s", ErrMismatch, r.PrimitiveSum, r.DecimalSum)
	}
	return nil
}

var (
	twoTo63 = decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 63), 0)
	twoTo64 = decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 64), 0)
)

// wrap reduces an exact integer to the int64 value it overflows to.
func wrap(d decimal.Decimal) decimal.Decimal {
	r := d.Mod(twoTo64)
	if r.IsNegative() {
		r = r.Add(twoTo64)
	}
	if r.GreaterThanOrEqual(twoTo63) {
		r = r.Sub(twoTo64)
	}
	return r
}

// Sample returns cfg.Size random numbers in [cfg.Min, cfg.Max].
// The same config always produces the same sample.
func Sample(cfg Config) []int64 {
	rnd := rand.New(rand.NewSource(cfg.Seed))
	span := cfg.Max - cfg.Min + 1
	result := make([]int64, cfg.Size)
	for i := range result {
		result[i] = cfg.Min + rnd.Int63n(span)
	}
	return result
}

// Extend converts numbers to finite extended values.
func Extend(nums []int64) []extended.Value[int64] {
	result := make([]extended.Value[int64], len(nums))
	for i, n := range nums {
		result[i] = extended.Finite(n)
	}
	return result
}

func operate(nums []int64) (sum, prod int64) {
	prod = 1
	for _, n := range nums {
		sum += n
		prod *= n
	}
	return sum, prod
}

func operateExtended(nums []extended.Value[int64]) (sum, prod extended.Value[int64], err error) {
	prod = extended.Finite[int64](1)
	for _, n := range nums {
		if err = sum.AddAssign(n); err != nil {
			return sum, prod, err
		}
		if err = prod.MulAssign(n); err != nil {
			return sum, prod, err
		}
	}
	return sum, prod, nil
}

func operateDecimal(nums []int64) decimal.Decimal {
	sum := decimal.Zero
	for _, n := range nums {
		sum = sum.Add(decimal.NewFromInt(n))
	}
	return sum
}
