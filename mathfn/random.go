package mathfn

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Source is the pluggable randomness the evaluator installs on a Context,
// so tests can supply a seeded *rand.Rand for determinism: every
// operation is deterministic except the random() function family, which
// needs a pluggable RNG to be testable at all.
type Source interface {
	Float64() float64
	Int63n(n int64) int64
}

// DefaultSource returns a Source seeded from the current time. Callers
// that need reproducible output (golden-file tests, for example) should
// install their own rand.New(rand.NewSource(seed)) instead.
func DefaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// SeededSource returns a Source with a fixed seed, for deterministic tests.
func SeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// RandomUniform implements random() -> uniform [0, 1).
func RandomUniform(src Source) decimal.Decimal {
	return decimal.NewFromFloat(src.Float64())
}

// RandomMax implements random(max) -> uniform integer in [0, max).
func RandomMax(src Source, max int64) decimal.Decimal {
	if max <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(src.Int63n(max))
}

// RandomRange implements random(min, max) -> uniform integer in [min, max).
func RandomRange(src Source, min, max int64) decimal.Decimal {
	if max <= min {
		return decimal.NewFromInt(min)
	}
	return decimal.NewFromInt(min + src.Int63n(max-min))
}

// RandomStep implements random(min, max, step) -> uniform over
// min, min+step, ..., < max.
func RandomStep(src Source, min, max, step decimal.Decimal) decimal.Decimal {
	if step.IsZero() || max.LessThanOrEqual(min) {
		return min
	}
	count := max.Sub(min).Div(step).Ceil().IntPart()
	if count <= 0 {
		return min
	}
	n := src.Int63n(count)
	return min.Add(step.Mul(decimal.NewFromInt(n)))
}
