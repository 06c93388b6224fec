package edit

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.pina.sh/pkg/cli/clitest"
	"src.pina.sh/pkg/cli/histutil"
	"src.pina.sh/pkg/speak/speaktest"
)

const prompt = "pina_shell> "

type fixture struct {
	ed      *Editor
	ttyCtrl clitest.TTYCtrl
	rec     *speaktest.Recorder
}

func setup(input string, history ...string) fixture {
	tty, ttyCtrl := clitest.NewFakeTTY(input)
	rec := &speaktest.Recorder{}
	ed := NewEditor(Config{
		TTY: tty, Speaker: rec, Prompt: prompt,
		History: histutil.NewMemStore(15, history...),
	})
	return fixture{ed, ttyCtrl, rec}
}

func (f fixture) readLine(t *testing.T, want string) {
	t.Helper()
	line, err := f.ed.ReadLine()
	if line != want || err != nil {
		t.Errorf("ReadLine() -> (%q, %v), want (%q, nil)", line, err, want)
	}
	if f.ttyCtrl.Raw() {
		t.Errorf("terminal left in raw mode")
	}
	if f.ttyCtrl.ReadCooked() {
		t.Errorf("input read outside raw mode")
	}
}

func (f fixture) testNarration(t *testing.T, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, f.rec.Texts); diff != "" {
		t.Errorf("narration (-want +got):\n%s", diff)
	}
}

func (f fixture) testOutput(t *testing.T, want string) {
	t.Helper()
	if got := f.ttyCtrl.Output(); got != want {
		t.Errorf("output -> %q, want %q", got, want)
	}
}

func redraw(oldLen int, line string) string {
	return "\r" + strings.Repeat(" ", oldLen+redrawSlack) + "\r" + prompt + line
}

func TestReadLine_NarratesCharacters(t *testing.T) {
	f := setup("ls\n")
	f.readLine(t, "ls")
	f.testNarration(t, "l", "s")
	f.testOutput(t, "ls\n")
	if f.ttyCtrl.Setups() != 1 || f.ttyCtrl.Restores() != 1 {
		t.Errorf("setups %d restores %d, want 1 and 1",
			f.ttyCtrl.Setups(), f.ttyCtrl.Restores())
	}
}

func TestReadLine_CarriageReturnEndsLine(t *testing.T) {
	f := setup("ls\rpwd\n")
	f.readLine(t, "ls")
	if f.ttyCtrl.Remaining() != 4 {
		t.Errorf("read past the end of the line")
	}
}

func TestReadLine_SpaceNarratesPrecedingWord(t *testing.T) {
	f := setup("ls -l\n")
	f.readLine(t, "ls -l")
	f.testNarration(t, "l", "s", "space", "ls", "-", "l")
}

func TestReadLine_SpaceAfterBlankNarratesNoWord(t *testing.T) {
	f := setup("a  \t \n")
	f.readLine(t, "a  \t ")
	f.testNarration(t, "a", "space", "a", "space", "tab", "space")
}

func TestReadLine_LeadingSpace(t *testing.T) {
	f := setup(" \n")
	f.readLine(t, " ")
	f.testNarration(t, "space")
}

func TestReadLine_Tab(t *testing.T) {
	f := setup("a\tb\n")
	f.readLine(t, "a\tb")
	f.testNarration(t, "a", "tab", "b")
	f.testOutput(t, "a\tb\n")
}

func TestReadLine_BackspaceOnEmptyLine(t *testing.T) {
	f := setup("\x7f\n")
	f.readLine(t, "")
	f.testNarration(t, "backspace", "Empty line")
	f.testOutput(t, "\n")
}

func TestReadLine_BackspaceAfterSpace(t *testing.T) {
	f := setup("a \x7f\n")
	f.readLine(t, "a")
	f.testNarration(t, "a", "space", "a", "backspace", "space")
	f.testOutput(t, "a \b \b\n")
}

func TestReadLine_BackspaceKey(t *testing.T) {
	f := setup("ab\b\n")
	f.readLine(t, "a")
	f.testNarration(t, "a", "b", "backspace", "b")
}

func TestReadLine_BackspaceOverTabRedraws(t *testing.T) {
	f := setup("a\t\x7f\n")
	f.readLine(t, "a")
	f.testNarration(t, "a", "tab", "backspace", "tab")
	f.testOutput(t, "a\t"+redraw(2, "a")+"\n")
}

func TestReadLine_BackspaceMultiByte(t *testing.T) {
	f := setup("aé\x7f\n")
	f.readLine(t, "a")
	f.testNarration(t, "a", "é", "backspace", "é")
}

func TestReadLine_UpArrowWalksOlder(t *testing.T) {
	history := []string{"one", "two", "three"}

	f := setup("\x1b[A\n", history...)
	f.readLine(t, "three")
	f.testNarration(t, "up arrow", "three")

	f = setup("\x1b[A\x1b[A\n", history...)
	f.readLine(t, "two")

	f = setup("\x1b[A\x1b[A\x1b[A\n", history...)
	f.readLine(t, "one")
}

func TestReadLine_UpArrowBeyondOldest(t *testing.T) {
	f := setup("\x1b[A\x1b[A\x1b[A\n", "one", "two")
	f.readLine(t, "one")
	f.testNarration(t,
		"up arrow", "two", "up arrow", "one", "up arrow", "end list")
}

func TestReadLine_UpArrowOnEmptyHistory(t *testing.T) {
	f := setup("ab\x1b[A\n")
	f.readLine(t, "ab")
	f.testNarration(t, "a", "b", "up arrow", "end list")
	f.testOutput(t, "ab\n")
}

func TestReadLine_UpArrowRedraws(t *testing.T) {
	f := setup("xy\x1b[A\n", "three")
	f.readLine(t, "three")
	f.testOutput(t, "xy"+redraw(2, "three")+"\n")
}

func TestReadLine_TypingAfterHistoryAppends(t *testing.T) {
	f := setup("\x1b[Ax\n", "ls")
	f.readLine(t, "lsx")
}

func TestReadLine_DownArrowAtNewest(t *testing.T) {
	f := setup("\x1b[A\x1b[B\n", "one", "two", "three")
	f.readLine(t, "three")
	f.testNarration(t, "up arrow", "three", "down arrow", "begin list")
}

func TestReadLine_DownArrowWalksNewer(t *testing.T) {
	f := setup("\x1b[A\x1b[A\x1b[B\n", "one", "two", "three")
	f.readLine(t, "three")
	f.testNarration(t,
		"up arrow", "three", "up arrow", "two", "down arrow", "three")
}

func TestReadLine_DownArrowWithoutHistoryWalk(t *testing.T) {
	f := setup("ab\x1b[B\n", "one")
	f.readLine(t, "ab")
	f.testNarration(t, "a", "b", "down arrow")
	f.testOutput(t, "ab\n")
}

func TestReadLine_CursorResetsEachRead(t *testing.T) {
	f := setup("\x1b[A\x1b[A\n\x1b[A\n", "one", "two")
	f.readLine(t, "one")
	f.readLine(t, "two")
}

func TestReadLine_EscapeWithoutBracket(t *testing.T) {
	f := setup("\x1bxq\n")
	f.readLine(t, "q")
	f.testNarration(t, "q")
	f.testOutput(t, "xq\n")
}

func TestReadLine_UnknownEscapeSequence(t *testing.T) {
	f := setup("\x1b[Cq\n")
	f.readLine(t, "q")
	f.testNarration(t, "q")
	f.testOutput(t, "Cq\n")
}

func TestReadLine_MultiByteCharacter(t *testing.T) {
	f := setup("é\n")
	f.readLine(t, "é")
	f.testNarration(t, "é")
}

func TestReadLine_IncompleteMultiByteBeforeEnter(t *testing.T) {
	f := setup("\xc3\nls\n")
	f.readLine(t, "\xc3")
	f.testNarration(t, "\xc3")
	f.readLine(t, "ls")
}

func TestReadLine_IncompleteMultiByteBeforeBackspace(t *testing.T) {
	f := setup("\xe9\x7fa\n")
	f.readLine(t, "a")
	f.testNarration(t, "\xe9", "backspace", "\xe9", "a")
}

func TestReadLine_EndOfInput(t *testing.T) {
	f := setup("ab")
	line, err := f.ed.ReadLine()
	if line != "" || err != io.EOF {
		t.Errorf("ReadLine() -> (%q, %v), want (\"\", io.EOF)", line, err)
	}
	if f.ttyCtrl.Raw() || f.ttyCtrl.Restores() != 1 {
		t.Errorf("terminal not restored at end of input")
	}
}

func TestReadLine_CtrlD(t *testing.T) {
	f := setup("\x04")
	if _, err := f.ed.ReadLine(); err != io.EOF {
		t.Errorf("Ctrl-D on empty line -> %v, want io.EOF", err)
	}

	f = setup("a\x04b\n")
	f.readLine(t, "ab")
}

func TestReadLine_AllocFailureRestoresTerminal(t *testing.T) {
	tty, ttyCtrl := clitest.NewFakeTTY(strings.Repeat("x", bufIncrement+1) + "\n")
	calls := 0
	ed := NewEditor(Config{
		TTY: tty, History: histutil.NewMemStore(15),
		Alloc: func(size int) ([]byte, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("out of memory")
			}
			return make([]byte, size), nil
		},
	})

	_, err := ed.ReadLine()
	if !errors.Is(err, ErrAlloc) {
		t.Errorf("ReadLine() -> %v, want ErrAlloc", err)
	}
	if ttyCtrl.Raw() || ttyCtrl.Restores() != 1 {
		t.Errorf("terminal not restored after allocation failure")
	}
}

func TestReadLine_SetupError(t *testing.T) {
	f := setup("ls\n")
	f.ttyCtrl.SetSetupError(errors.New("bad terminal"))
	if _, err := f.ed.ReadLine(); err == nil {
		t.Errorf("ReadLine() -> nil error, want error")
	}
	if f.ttyCtrl.Remaining() != 3 {
		t.Errorf("input consumed despite setup failure")
	}
}

func TestReadLine_NilSpeaker(t *testing.T) {
	tty, _ := clitest.NewFakeTTY("ok\n")
	ed := NewEditor(Config{TTY: tty, History: histutil.NewMemStore(15)})
	if line, err := ed.ReadLine(); line != "ok" || err != nil {
		t.Errorf("ReadLine() -> (%q, %v)", line, err)
	}
}
