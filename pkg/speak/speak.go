// Package speak narrates text through an external text-to-speech engine.
package speak

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"src.pina.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[speak] ")

// Speaker narrates text. Speak blocks until the narration is finished.
type Speaker interface {
	Speak(text string) error
}

// Engine is a Speaker that runs an external program once per utterance, as
// Name Args... text. The text is passed as a single argument and never
// interpreted by a shell.
type Engine struct {
	Name string
	Args []string
}

// Speak runs the engine and waits for it to exit.
func (e *Engine) Speak(text string) error {
	if strings.HasPrefix(text, "-") {
		// Keep the engine from parsing the text as an option.
		text = " " + text
	}
	args := make([]string, 0, len(e.Args)+1)
	args = append(args, e.Args...)
	args = append(args, text)

	cmd := exec.Command(e.Name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("speech engine %s: %w: %s", e.Name, err, msg)
		}
		return fmt.Errorf("speech engine %s: %w", e.Name, err)
	}
	return nil
}

// Nop is a Speaker that does nothing.
var Nop Speaker = nopSpeaker{}

type nopSpeaker struct{}

func (nopSpeaker) Speak(string) error { return nil }

// Tolerant wraps a Speaker so that failures do not interrupt the caller.
// Every failure is logged; the first one is also written to w. The returned
// Speaker never returns an error.
func Tolerant(s Speaker, w io.Writer) Speaker {
	return &tolerant{s: s, w: w}
}

type tolerant struct {
	s    Speaker
	w    io.Writer
	once sync.Once
}

func (t *tolerant) Speak(text string) error {
	if err := t.s.Speak(text); err != nil {
		logger.Printf("failed to speak %q: %v", text, err)
		t.once.Do(func() {
			fmt.Fprintf(t.w, "pina: speech unavailable, continuing silently: %v\n", err)
		})
	}
	return nil
}
