package expect

import (
	"errors"
	"reflect"
)

// Computation is a zero-argument, caller-supplied operation whose
// result determines an expectation's outcome. A computation raises
// by panicking; every panic is recovered by the engine and turned
// into a failure, it never propagates past the expectation call.
type Computation func() any

// ExpectTrue executes a test that is expected to produce a truthy
// value: booleans are taken as-is, numbers count as true when
// non-zero, strings, slices, and maps when non-empty, nil never. The
// coerced result is compared against the boolean literal true on the
// value-equality path, under a scoped boolean formatting verb on the
// sink which is restored on every exit path.
//
//	ut := expect.New()
//	ut.ExpectTrue("1+1 equals 2", func() any { return 1+1 == 2 })
//
// It returns true if the test succeeded.
func (ut *Tester) ExpectTrue(id string, test Computation) bool {
	if ut.skipFiltered(id) {
		return false
	}
	prev := ut.out.Verb()
	ut.out.SetVerb("%t")
	defer ut.out.SetVerb(prev)
	return ut.ExpectValue(id, true, func() any {
		return truthy(test())
	})
}

// ExpectFalse executes a test that is expected to produce a falsy
// value. See ExpectTrue for the coercion rules; the coerced result
// is compared against the boolean literal false.
func (ut *Tester) ExpectFalse(id string, test Computation) bool {
	if ut.skipFiltered(id) {
		return false
	}
	prev := ut.out.Verb()
	ut.out.SetVerb("%t")
	defer ut.out.SetVerb(prev)
	return ut.ExpectValue(id, false, func() any {
		return truthy(test())
	})
}

// ExpectValue executes a test that is expected to produce the given
// value. A PASS or FAIL line is written to the tester's sink. A
// panic raised by the test fails the expectation: a panic value
// implementing error is reported with its message, any other panic
// value is reported generically.
//
//	ut.ExpectValue("1+1 equals 2", 2, func() any { return 1 + 1 })
//
// It returns true if the test succeeded.
func (ut *Tester) ExpectValue(
	id string, value any, test Computation,
) (passed bool) {
	if ut.skipFiltered(id) {
		return false
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ut.fail(id)
		if err, ok := r.(error); ok {
			ut.out.Printf(
				"  expected value %s, got exception: %s\n",
				ut.render(value), err.Error(),
			)
		} else {
			ut.out.Printf(
				"  expected value %s, got exception not derived from error\n",
				ut.render(value),
			)
		}
		passed = false
	}()
	found := test()
	if equalValues(value, found) {
		ut.pass(id)
		return true
	}
	ut.fail(id)
	ut.out.Printf(
		"  expected value %s, found %s instead.\n",
		ut.render(value), ut.render(found),
	)
	return false
}

// ExpectInRange executes a test whose result is expected to fall
// within [min, max], bounds included. Numeric results are compared
// numerically across integer and float kinds, strings
// lexicographically; a result that cannot be ordered against the
// bounds fails. Panics raised by the test are contained like in
// ExpectValue, with the bounds substituted into the message.
//
// Use with caution for random results: one pass is no guarantee.
// Mainly useful for floating point results.
//
//	ut.ExpectInRange("one third", 0.333, 0.334, func() any {
//	    return 1.0 / 3.0
//	})
func (ut *Tester) ExpectInRange(
	id string, min, max any, test Computation,
) (passed bool) {
	if ut.skipFiltered(id) {
		return false
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ut.fail(id)
		if err, ok := r.(error); ok {
			ut.out.Printf(
				"  expected a value in [%s, %s], got exception: %s\n",
				ut.render(min), ut.render(max), err.Error(),
			)
		} else {
			ut.out.Printf(
				"  expected a value in [%s, %s], got exception not derived from error\n",
				ut.render(min), ut.render(max),
			)
		}
		passed = false
	}()
	found := test()
	lo, okLo := compareValues(min, found)
	hi, okHi := compareValues(found, max)
	if okLo && okHi && lo <= 0 && hi <= 0 {
		ut.pass(id)
		return true
	}
	ut.fail(id)
	ut.out.Printf(
		"  value %s is not in expected range [%s, %s]\n",
		ut.render(found), ut.render(min), ut.render(max),
	)
	return false
}

// ExpectPanic executes a test that is expected to panic with any
// value.
//
//	ut.ExpectPanic("panic example", func() { panic("something") })
//
// It returns true if the test panicked.
func (ut *Tester) ExpectPanic(id string, test func()) bool {
	if ut.skipFiltered(id) {
		return false
	}
	raised := didPanic(test)
	if raised {
		ut.pass(id)
	} else {
		ut.fail(id)
		ut.out.Printf("  expected exception was not thrown.\n")
	}
	return raised
}

// ExpectPanicIs executes a test that is expected to panic with an
// error matching target in the sense of errors.Is. A panic carrying
// anything else, error or not, fails with a distinct message, as
// does a test that does not panic at all.
//
//	var ErrBoom = errors.New("boom")
//
//	ut.ExpectPanicIs("typed panic", ErrBoom, func() {
//	    panic(fmt.Errorf("exploded: %w", ErrBoom))
//	})
func (ut *Tester) ExpectPanicIs(
	id string, target error, test func(),
) bool {
	if ut.skipFiltered(id) {
		return false
	}
	raised, matched := false, false
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			raised = true
			if err, ok := r.(error); ok && errors.Is(err, target) {
				matched = true
			}
		}()
		test()
	}()
	switch {
	case matched:
		ut.pass(id)
	case raised:
		ut.fail(id)
		ut.out.Printf(
			"  an exception happened but not of the correct type.\n",
		)
	default:
		ut.fail(id)
		ut.out.Printf("  expected exception was not thrown.\n")
	}
	return matched
}

// didPanic reports whether running the given function panicked.
func didPanic(f func()) (raised bool) {
	defer func() {
		if recover() != nil {
			raised = true
		}
	}()
	f()
	return false
}

// truthy coerces an arbitrary value to a boolean: nil, zero numbers,
// and empty strings, slices, arrays, and maps are false, everything
// else is true.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Array,
		reflect.Map, reflect.Chan:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

// equalValues reports whether two values are considered equal:
// deeply equal, or numerically equal across integer and float
// kinds so that e.g. an untyped literal 2 matches an int64 result.
func equalValues(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

// compareValues orders a against b, returning -1, 0, or 1 and
// whether the two values are comparable at all. Numbers order
// numerically across kinds, strings lexicographically.
func compareValues(a, b any) (int, bool) {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		}
		return 0, true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	}
	return 0, true
}

// toFloat converts any integer or float value to float64.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
