// Package expect provides an inline expectation-testing engine:
// small test cases are registered through Expect* calls, executed
// immediately, classified as pass, fail, or skip, and reported as
// human-readable lines to an output sink while global counters
// accumulate for a final summary.
package expect

import (
	"fmt"

	"digital.vasic.expect/pkg/sink"
)

// ANSI SGR sequences used to colorize PASS/FAIL tokens.
const (
	ansiRed   = "\x1B[31m"
	ansiGreen = "\x1B[32m"
	ansiReset = "\x1B[0m"
)

// Tester owns the pass/fail/skip counters, the optional identifier
// filter, and executes expectations against caller-supplied
// computations. It is not safe for concurrent use: counters and the
// output sink are shared mutable state with no internal locking, so
// concurrent callers must synchronize externally.
type Tester struct {
	out       sink.Sink
	countPass uint64
	countFail uint64
	countSkip uint64
	color     bool
	hidePass  bool
	filter    func(id string) bool
}

// Option configures a Tester at construction time.
type Option func(*Tester)

// WithSink sets the output sink report lines are written to. The
// sink is borrowed for the tester's lifetime, not owned.
func WithSink(s sink.Sink) Option {
	return func(ut *Tester) {
		ut.out = s
	}
}

// WithColor enables or disables ANSI colorization of report lines.
func WithColor(enabled bool) Option {
	return func(ut *Tester) {
		ut.color = enabled
	}
}

// WithHidePass suppresses PASS report lines. Passing expectations
// are still counted.
func WithHidePass(hide bool) Option {
	return func(ut *Tester) {
		ut.hidePass = hide
	}
}

// WithFilter sets the identifier filter predicate. Expectations
// whose identifier is rejected are skipped: counted, not executed,
// and not reported.
func WithFilter(f func(id string) bool) Option {
	return func(ut *Tester) {
		ut.filter = f
	}
}

// New creates a Tester reporting to standard output unless a sink
// option says otherwise. Color output starts enabled and PASS lines
// start visible.
func New(opts ...Option) *Tester {
	ut := &Tester{
		out:   sink.NewConsole(),
		color: true,
	}
	for _, opt := range opts {
		opt(ut)
	}
	return ut
}

// CountPass returns the number of expectations passed so far.
func (ut *Tester) CountPass() uint64 { return ut.countPass }

// CountFail returns the number of expectations failed so far.
func (ut *Tester) CountFail() uint64 { return ut.countFail }

// CountSkip returns the number of expectations suppressed by the
// filter so far.
func (ut *Tester) CountSkip() uint64 { return ut.countSkip }

// ColorEnabled returns whether color output is enabled.
func (ut *Tester) ColorEnabled() bool { return ut.color }

// ColorOutput enables or disables color output. Enabled by default.
func (ut *Tester) ColorOutput(enabled bool) *Tester {
	ut.color = enabled
	return ut
}

// HidePass suppresses PASS report lines. FAIL lines are always
// emitted.
func (ut *Tester) HidePass() *Tester {
	ut.hidePass = true
	return ut
}

// ShowPass re-enables PASS report lines.
func (ut *Tester) ShowPass() *Tester {
	ut.hidePass = false
	return ut
}

// OnlyIf runs subsequent expectations only when the given predicate
// accepts their identifier; rejected expectations are skipped
// without being executed or reported. A call to OnlyIf replaces any
// previous predicate.
func (ut *Tester) OnlyIf(f func(id string) bool) *Tester {
	ut.filter = f
	return ut
}

// Always removes any predicate set by OnlyIf, reverting to
// executing every expectation.
func (ut *Tester) Always() *Tester {
	ut.filter = nil
	return ut
}

// Summary writes a count of skipped tests if any were skipped, a
// count of passed tests, and a count of failed tests if any test
// failed. It reflects the current counters and never resets them,
// so it may be called repeatedly.
func (ut *Tester) Summary() {
	if ut.countSkip > 0 {
		ut.out.Printf("%d tests skipped.\n", ut.countSkip)
	}
	ut.out.Printf("%d tests passed.\n", ut.countPass)
	if ut.countFail > 0 {
		ut.out.Printf(
			"%d tests %sFAILED !%s\n",
			ut.countFail, ut.red(), ut.reset(),
		)
	}
}

func (ut *Tester) red() string {
	if ut.color {
		return ansiRed
	}
	return ""
}

func (ut *Tester) green() string {
	if ut.color {
		return ansiGreen
	}
	return ""
}

func (ut *Tester) reset() string {
	if ut.color {
		return ansiReset
	}
	return ""
}

// pass counts a PASS and prints the pass line unless suppressed.
func (ut *Tester) pass(id string) {
	ut.countPass++
	if !ut.hidePass {
		ut.out.Printf(
			"%s☑  PASS  %s%s\n", ut.green(), ut.reset(), id,
		)
	}
}

// fail counts a FAIL and prints the fail line.
func (ut *Tester) fail(id string) {
	ut.countFail++
	ut.out.Printf(
		"%s☒  FAIL  %s%s\n", ut.red(), ut.reset(), id,
	)
}

// skipFiltered applies the filter pre-step shared by every
// expectation operation: a rejected identifier is counted as
// skipped and its computation is never invoked.
func (ut *Tester) skipFiltered(id string) bool {
	if ut.filter != nil && !ut.filter(id) {
		ut.countSkip++
		return true
	}
	return false
}

// render formats a value with the sink's current formatting verb.
func (ut *Tester) render(v any) string {
	return fmt.Sprintf(ut.out.Verb(), v)
}
