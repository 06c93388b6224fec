// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program implementation under test, and any number of test
// cases.
//
// Test cases are constructed using the ThatPina function, followed by method
// calls that add additional information to it.
//
// Example:
//
//	Test(t, someProgram,
//		ThatPina("-help").WritesStdoutContaining("Usage"),
//		ThatPina().WithStdin("exit\n").ExitsWith(0))
//
// Programs that need finer control can use a Fixture directly.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.pina.sh/pkg/must"
	"src.pina.sh/pkg/prog"
	"src.pina.sh/pkg/testutil"
)

// Fixture is a set of standard files for running a program, together with
// the means to feed its input and inspect its output. Output is collected
// concurrently, so programs may write more than a pipe can buffer.
type Fixture struct {
	stdin   *pipe
	outputs [2]*outputPipe
}

type pipe struct{ r, w *os.File }

type outputPipe struct {
	pipe
	ch      chan string
	content *string
}

// Setup sets up a Fixture in a temporary directory. All files are closed
// when the test finishes.
func Setup(c testutil.Cleanuper) *Fixture {
	testutil.InTempDir(c)
	r, w := must.Pipe()
	f := &Fixture{stdin: &pipe{r, w}}
	for i := range f.outputs {
		f.outputs[i] = newOutputPipe()
	}
	c.Cleanup(f.close)
	return f
}

func newOutputPipe() *outputPipe {
	r, w := must.Pipe()
	p := &outputPipe{pipe: pipe{r, w}, ch: make(chan string, 1)}
	go func() {
		b, err := io.ReadAll(r)
		if err != nil {
			panic(err)
		}
		p.ch <- string(b)
	}()
	return p
}

// Fds returns the files to pass to a program: the read end of the input pipe
// and the write ends of the output pipes.
func (f *Fixture) Fds() [3]*os.File {
	return [3]*os.File{f.stdin.r, f.outputs[0].w, f.outputs[1].w}
}

// FeedIn writes s to the input of the program and closes it, so that the
// program sees the end of input after s.
func (f *Fixture) FeedIn(s string) {
	_, err := f.stdin.w.WriteString(s)
	if err != nil {
		panic(err)
	}
	f.stdin.w.Close()
}

// Out returns everything written to the given output, 1 for stdout and 2 for
// stderr. The first call closes the output; the program must have finished.
func (f *Fixture) Out(fd int) string {
	p := f.outputs[fd-1]
	if p.content == nil {
		p.w.Close()
		s := <-p.ch
		p.content = &s
	}
	return *p.content
}

// TestOut tests that the output on fd is exactly want.
func (f *Fixture) TestOut(t *testing.T, fd int, want string) {
	t.Helper()
	if got := f.Out(fd); got != want {
		t.Errorf("got out on fd %d %q, want %q", fd, got, want)
	}
}

// TestOutSnippet tests that the output on fd contains the given snippet.
func (f *Fixture) TestOutSnippet(t *testing.T, fd int, wantSnippet string) {
	t.Helper()
	if got := f.Out(fd); !strings.Contains(got, wantSnippet) {
		t.Errorf("got out on fd %d %q, want snippet %q", fd, got, wantSnippet)
	}
}

func (f *Fixture) close() {
	f.stdin.r.Close()
	f.stdin.w.Close()
	for fd := 1; fd <= 2; fd++ {
		f.Out(fd)
		f.outputs[fd-1].r.Close()
	}
}

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	out      [2]output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + strings.TrimSuffix(o.content, "\n")
	}
	return o.content
}

func (o output) match(got string) bool {
	if o.partial {
		return strings.Contains(got, o.content)
	}
	return got == o.content
}

// ThatPina returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "pina -version" writes a version
// string reads:
//
//	ThatPina("-version").WritesStdoutContaining("0.")
func ThatPina(args ...string) Case {
	return Case{args: append([]string{"pina"}, args...)}
}

// WithStdin returns an altered Case that feeds s to the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatPina("-cpuprofile", "cpuprof").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out[0] = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out[0] = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.out[1] = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.out[1] = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			f := Setup(t)
			f.FeedIn(c.stdin)
			exitCode := prog.Run(f.Fds(), c.args, p)

			if exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", exitCode, c.want.exitCode)
			}
			for fd := 1; fd <= 2; fd++ {
				want := c.want.out[fd-1]
				if got := f.Out(fd); !want.match(got) {
					t.Errorf("got output on fd %d %q, want %s", fd, got, want)
				}
			}
		})
	}
}
