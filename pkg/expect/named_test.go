package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamed_ForwardsWithStoredIdentifier(t *testing.T) {
	ut, buf := newCaptured()

	ok := ut.Test("1+1 equals 2").ExpectValue(2, func() any {
		return 1 + 1
	})

	assert.True(t, ok)
	assert.Equal(t, "☑  PASS  1+1 equals 2\n", buf.String())
}

func TestNamed_AllKinds(t *testing.T) {
	ut, _ := newCaptured()

	assert.True(t, ut.Test("true").ExpectTrue(func() any {
		return 1
	}))
	assert.True(t, ut.Test("false").ExpectFalse(func() any {
		return 0
	}))
	assert.True(t, ut.Test("value").ExpectValue("x", func() any {
		return "x"
	}))
	assert.True(t, ut.Test("range").ExpectInRange(0, 10, func() any {
		return 5
	}))
	assert.True(t, ut.Test("panic").ExpectPanic(func() {
		panic("x")
	}))
	assert.True(t, ut.Test("panic is").ExpectPanicIs(
		errSentinel, func() { panic(errSentinel) },
	))

	assert.Equal(t, uint64(6), ut.CountPass())
}

func TestNamed_RespectsFilter(t *testing.T) {
	ut, buf := newCaptured()
	ut.OnlyIf(func(id string) bool { return false })

	executed := false
	ok := ut.Test("filtered").ExpectTrue(func() any {
		executed = true
		return true
	})

	assert.False(t, ok)
	assert.False(t, executed)
	assert.Equal(t, uint64(1), ut.CountSkip())
	assert.Empty(t, buf.String())
}
