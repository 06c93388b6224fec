// Package edit implements the speaking line editor.
//
// The editor reads raw bytes from the terminal and builds a single line. It
// only appends and removes at the end of the line. Every keystroke is echoed
// and narrated: characters are spoken as they are typed, a completed word is
// spoken when a space follows it, and the removed character is spoken on
// backspace. The up and down arrow keys walk the command history.
package edit

import (
	"fmt"
	"io"

	"src.pina.sh/pkg/cli/histutil"
	"src.pina.sh/pkg/cli/term"
	"src.pina.sh/pkg/errutil"
	"src.pina.sh/pkg/logutil"
	"src.pina.sh/pkg/speak"
)

var logger = logutil.GetLogger("[edit] ")

// Extra width cleared when redrawing the line.
const redrawSlack = 60

// Config keeps the dependencies of an Editor.
type Config struct {
	TTY     term.TTY
	Speaker speak.Speaker
	History histutil.Store
	// Prompt is reprinted when the line is redrawn.
	Prompt string
	// Alloc allocates the line buffer. Defaults to DefaultAllocator.
	Alloc Allocator
}

// Editor is the speaking line editor.
type Editor struct {
	tty    term.TTY
	sp     speak.Speaker
	prompt string
	alloc  Allocator
	cursor *histutil.Cursor

	buf *LineBuffer
	// A byte read past an incomplete UTF-8 sequence, to be handled next.
	pending    byte
	hasPending bool
}

// NewEditor creates a new Editor.
func NewEditor(cfg Config) *Editor {
	alloc := cfg.Alloc
	if alloc == nil {
		alloc = DefaultAllocator
	}
	sp := cfg.Speaker
	if sp == nil {
		sp = speak.Nop
	}
	return &Editor{
		tty: cfg.TTY, sp: sp, prompt: cfg.Prompt, alloc: alloc,
		cursor: histutil.NewCursor(cfg.History),
	}
}

type state int

const (
	stateReading state = iota
	stateEscapeSeen
	stateBracketSeen
)

// Keys with special meaning.
const (
	keyBackspace = 0x08
	keyEOT       = 0x04
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// ReadLine reads a line from the terminal. The terminal is in raw mode while
// reading and is restored before ReadLine returns, whatever the outcome.
//
// It returns io.EOF when the input ends or Ctrl-D is pressed on an empty
// line, and an error wrapping ErrAlloc when the line buffer cannot grow.
func (ed *Editor) ReadLine() (line string, err error) {
	ed.cursor.Reset()
	ed.hasPending = false
	ed.buf, err = NewLineBuffer(ed.alloc)
	if err != nil {
		return "", err
	}

	restore, err := ed.tty.Setup()
	if err != nil {
		return "", fmt.Errorf("set up terminal: %w", err)
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil {
			logger.Println("restore terminal:", restoreErr)
			err = errutil.Multi(err, fmt.Errorf("restore terminal: %w", restoreErr))
		}
	}()

	st := stateReading
	for {
		c, err := ed.readByte()
		if err != nil {
			return "", err
		}

		switch st {
		case stateEscapeSeen:
			if c == '[' {
				st = stateBracketSeen
			} else {
				ed.echo(string(c))
				st = stateReading
			}
			continue
		case stateBracketSeen:
			switch c {
			case 'A':
				err = ed.historyOlder()
			case 'B':
				err = ed.historyNewer()
			default:
				ed.echo(string(c))
			}
			if err != nil {
				return "", err
			}
			st = stateReading
			continue
		}

		switch c {
		case '\n', '\r':
			ed.echo("\n")
			return ed.buf.String(), nil
		case ' ':
			if err := ed.insert(" "); err != nil {
				return "", err
			}
			ed.say("space")
			if word := ed.buf.WordBefore(ed.buf.Len() - 1); word != "" {
				ed.say(word)
			}
		case '\t':
			if err := ed.insert("\t"); err != nil {
				return "", err
			}
			ed.say("tab")
		case keyBackspace, keyDelete:
			ed.backspace()
		case keyEscape:
			st = stateEscapeSeen
		case keyEOT:
			if ed.buf.Len() == 0 {
				ed.echo("\n")
				return "", io.EOF
			}
		default:
			s, err := ed.readRune(c)
			if err != nil {
				return "", err
			}
			if err := ed.insert(s); err != nil {
				return "", err
			}
			ed.say(s)
		}
	}
}

func (ed *Editor) readByte() (byte, error) {
	if ed.hasPending {
		ed.hasPending = false
		return ed.pending, nil
	}
	c, err := ed.tty.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("read terminal: %w", err)
	}
	return c, nil
}

// readRune completes a multi-byte UTF-8 sequence started by c. A byte that
// is not a continuation byte ends the sequence early and is handled as the
// next input.
func (ed *Editor) readRune(c byte) (string, error) {
	b := []byte{c}
	for len(b) < runeLen(c) {
		next, err := ed.readByte()
		if err != nil {
			return "", err
		}
		if next&0xc0 != 0x80 {
			ed.pending, ed.hasPending = next, true
			break
		}
		b = append(b, next)
	}
	return string(b), nil
}

func runeLen(c byte) int {
	switch {
	case c&0xe0 == 0xc0:
		return 2
	case c&0xf0 == 0xe0:
		return 3
	case c&0xf8 == 0xf0:
		return 4
	}
	return 1
}

func (ed *Editor) insert(s string) error {
	if err := ed.buf.Append(s); err != nil {
		return err
	}
	ed.echo(s)
	return nil
}

func (ed *Editor) backspace() {
	ed.say("backspace")
	if ed.buf.Len() == 0 {
		ed.say("Empty line")
		return
	}
	oldLen := ed.buf.Len()
	switch s := ed.buf.Pop(); s {
	case "\t":
		ed.say("tab")
		// A tab may span several columns.
		ed.tty.Redraw(ed.prompt, ed.buf.String(), oldLen+redrawSlack)
	case " ":
		ed.say("space")
		ed.tty.EraseLast()
	default:
		ed.say(s)
		ed.tty.EraseLast()
	}
}

func (ed *Editor) historyOlder() error {
	ed.say("up arrow")
	text, err := ed.cursor.Older()
	if err == histutil.ErrEndOfHistory {
		ed.say("end list")
		return nil
	}
	return ed.replaceLine(text)
}

func (ed *Editor) historyNewer() error {
	ed.say("down arrow")
	if !ed.cursor.Active() {
		return nil
	}
	text, err := ed.cursor.Newer()
	if err == histutil.ErrBeginOfHistory {
		ed.say("begin list")
		return nil
	}
	return ed.replaceLine(text)
}

func (ed *Editor) replaceLine(text string) error {
	width := ed.buf.Len() + redrawSlack
	if err := ed.buf.Set(text); err != nil {
		return err
	}
	ed.tty.Redraw(ed.prompt, text, width)
	ed.say(text)
	return nil
}

func (ed *Editor) echo(s string) {
	if _, err := ed.tty.WriteString(s); err != nil {
		logger.Println("echo:", err)
	}
}

func (ed *Editor) say(text string) {
	if err := ed.sp.Speak(text); err != nil {
		logger.Printf("speak %q: %v", text, err)
	}
}
