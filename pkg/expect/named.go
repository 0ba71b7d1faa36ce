package expect

// Named binds an identifier to a Tester so that an expectation can
// be written with the identifier up front:
//
//	ut.Test("1+1 equals 2").ExpectValue(2, func() any { return 1 + 1 })
//
// instead of
//
//	ut.ExpectValue("1+1 equals 2", 2, func() any { return 1 + 1 })
//
// A Named value holds a borrowed reference to the tester and must
// not outlive it. It carries no other state.
type Named struct {
	ut *Tester
	id string
}

// Test returns a Named bound to this tester and the given
// identifier.
func (ut *Tester) Test(id string) Named {
	return Named{ut: ut, id: id}
}

// ExpectTrue forwards to Tester.ExpectTrue with the stored
// identifier.
func (n Named) ExpectTrue(test Computation) bool {
	return n.ut.ExpectTrue(n.id, test)
}

// ExpectFalse forwards to Tester.ExpectFalse with the stored
// identifier.
func (n Named) ExpectFalse(test Computation) bool {
	return n.ut.ExpectFalse(n.id, test)
}

// ExpectValue forwards to Tester.ExpectValue with the stored
// identifier.
func (n Named) ExpectValue(value any, test Computation) bool {
	return n.ut.ExpectValue(n.id, value, test)
}

// ExpectInRange forwards to Tester.ExpectInRange with the stored
// identifier.
func (n Named) ExpectInRange(min, max any, test Computation) bool {
	return n.ut.ExpectInRange(n.id, min, max, test)
}

// ExpectPanic forwards to Tester.ExpectPanic with the stored
// identifier.
func (n Named) ExpectPanic(test func()) bool {
	return n.ut.ExpectPanic(n.id, test)
}

// ExpectPanicIs forwards to Tester.ExpectPanicIs with the stored
// identifier.
func (n Named) ExpectPanicIs(target error, test func()) bool {
	return n.ut.ExpectPanicIs(n.id, target, test)
}
