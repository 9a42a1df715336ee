// SPDX-License-Identifier: MIT

package exact

// Accumulator chains exact operations on a running value. The first
// failing step records its error; every later step is a no-op, so the
// error reported by Result is the original one, unchanged.
//
//	acc := exact.NewAccumulator[int64](price)
//	total, err := acc.Multiply(qty).Add(shipping).Result()
//
// An Accumulator is a value holder, not a shared object: do not use the
// same instance from several goroutines.
type Accumulator[T Integer] struct {
	value T
	err   error
}

// NewAccumulator returns an Accumulator holding start.
func NewAccumulator[T Integer](start T) *Accumulator[T] {
	return &Accumulator[T]{value: start}
}

// Add adds v to the running value.
func (a *Accumulator[T]) Add(v T) *Accumulator[T] {
	return a.apply(v, Add[T])
}

// Subtract subtracts v from the running value.
func (a *Accumulator[T]) Subtract(v T) *Accumulator[T] {
	return a.apply(v, Subtract[T])
}

// Multiply multiplies the running value by v.
func (a *Accumulator[T]) Multiply(v T) *Accumulator[T] {
	return a.apply(v, Multiply[T])
}

// FloorDiv divides the running value by v, rounding toward negative infinity.
func (a *Accumulator[T]) FloorDiv(v T) *Accumulator[T] {
	return a.apply(v, FloorDiv[T])
}

// FloorMod replaces the running value with its floor modulus by v.
func (a *Accumulator[T]) FloorMod(v T) *Accumulator[T] {
	return a.apply(v, FloorMod[T])
}

// Err returns the first error recorded, or nil.
func (a *Accumulator[T]) Err() error {
	return a.err
}

// Result returns the running value and the first error. On error the
// value is the zero value of T.
func (a *Accumulator[T]) Result() (T, error) {
	if a.err != nil {
		return 0, a.err
	}

	return a.value, nil
}

func (a *Accumulator[T]) apply(v T, op func(T, T) (T, error)) *Accumulator[T] {
	if a.err != nil {
		return a // short-circuit after the first failure
	}
	a.value, a.err = op(a.value, v)

	return a
}
