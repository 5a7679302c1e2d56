package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Writer implements domain.OutputWriter. Writes are serialised so command
// output and shell redraws do not interleave mid-line.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Writer for stdout.
func NewWriter() *Writer {
	return NewWriterTo(os.Stdout)
}

// NewWriterTo returns a Writer for out.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w, args...)
}

var _ domain.OutputWriter = (*Writer)(nil)
