package sink

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_WritesFormattedLines(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleTo(&out)

	c.Printf("%d tests passed.\n", 3)

	assert.Equal(t, "3 tests passed.\n", out.String())
}

func TestConsole_VerbRoundTrip(t *testing.T) {
	c := NewConsoleTo(&bytes.Buffer{})

	assert.Equal(t, DefaultVerb, c.Verb())

	c.SetVerb("%t")
	assert.Equal(t, "%t", c.Verb())

	c.SetVerb(DefaultVerb)
	assert.Equal(t, DefaultVerb, c.Verb())
}

func TestConsole_ConcurrentWrites(t *testing.T) {
	var out bytes.Buffer
	c := NewConsoleTo(&out)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Printf("line\n")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8*50*len("line\n"), out.Len())
}

func TestNull_DiscardsButTracksVerb(t *testing.T) {
	n := NewNull()

	n.Printf("never seen %d\n", 1)
	n.SetVerb("%t")

	assert.Equal(t, "%t", n.Verb())
	assert.NoError(t, n.Close())
}

func TestMulti_FansOutIdenticalTranscripts(t *testing.T) {
	a, b := NewBuffer(), NewBuffer()
	m := NewMulti(a, b)

	m.Printf("☑  PASS  %s\n", "fanned out")
	m.Printf("%d tests passed.\n", 1)

	require.NotEmpty(t, a.String())
	assert.Empty(t, cmp.Diff(a.String(), b.String()))
}

func TestMulti_PushesVerbToChildren(t *testing.T) {
	a, b := NewBuffer(), NewBuffer()
	m := NewMulti(a, b)

	m.SetVerb("%t")

	assert.Equal(t, "%t", m.Verb())
	assert.Equal(t, "%t", a.Verb())
	assert.Equal(t, "%t", b.Verb())
}

func TestBuffer_CapturesAndResets(t *testing.T) {
	b := NewBuffer()

	b.Printf("☒  FAIL  %s\n", "captured")
	assert.Equal(t, "☒  FAIL  captured\n", b.String())

	b.SetVerb("%t")
	b.Reset()

	assert.Empty(t, b.String())
	assert.Equal(t, "%t", b.Verb(), "reset keeps the verb")
}
