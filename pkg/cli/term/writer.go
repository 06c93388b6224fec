package term

import (
	"io"
	"strings"
)

// Writer represents the output to a terminal.
type Writer interface {
	// WriteString writes text unchanged, such as the prompt and echoed
	// input.
	WriteString(s string) (int, error)
	// EraseLast erases the character before the cursor.
	EraseLast()
	// Redraw replaces the current display line with prompt followed by
	// line. The old content is overwritten with width spaces first.
	Redraw(prompt, line string, width int)
}

type writer struct {
	file io.Writer
}

// NewWriter returns a Writer that writes VT100 sequences to the given
// io.Writer.
func NewWriter(f io.Writer) Writer {
	return &writer{f}
}

func (w *writer) WriteString(s string) (int, error) {
	return io.WriteString(w.file, s)
}

const eraseLast = "\b \b"

func (w *writer) EraseLast() {
	w.write(eraseLast)
}

func (w *writer) Redraw(prompt, line string, width int) {
	var sb strings.Builder
	sb.WriteByte('\r')
	sb.WriteString(strings.Repeat(" ", width))
	sb.WriteByte('\r')
	sb.WriteString(prompt)
	sb.WriteString(line)
	w.write(sb.String())
}

func (w *writer) write(s string) {
	if _, err := io.WriteString(w.file, s); err != nil {
		logger.Println("write to terminal:", err)
	}
}
