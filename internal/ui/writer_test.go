package ui

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	_, err = w.Println("b", 2)
	require.NoError(t, err)
	_, err = w.Write([]byte("c\n"))
	require.NoError(t, err)

	require.Equal(t, "a=1\nb 2\nc\n", buf.String())
}

func TestWriter_ConcurrentLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = w.Println("line")
		}()
	}
	wg.Wait()

	require.Equal(t, bytes.Repeat([]byte("line\n"), 20), buf.Bytes())
}
