// Package launch runs command lines with the system shell and narrates their
// output.
package launch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"src.pina.sh/pkg/logutil"
	"src.pina.sh/pkg/speak"
)

var logger = logutil.GetLogger("[launch] ")

// Labels prefixed to captured output before it is narrated.
const (
	StdoutLabel = "stdout: \n"
	StderrLabel = "stderr: \n"
)

var speakableReplacer = strings.NewReplacer(
	"\n", " newline ",
	"\t", " tab ",
	" ", " space ",
)

// SpeakableForm returns the text narrated for captured output: the label
// followed by raw, with newlines, tabs and spaces spelled out.
func SpeakableForm(label, raw string) string {
	return label + speakableReplacer.Replace(raw)
}

// ErrPipe is wrapped by the error returned when the pipes capturing the
// output of a child cannot be created. Unlike a failure to start the child,
// it is not recoverable.
var ErrPipe = errors.New("cannot create output pipe")

// Launcher runs command lines as Shell -c line. It runs one child at a time
// and always waits for it.
type Launcher struct {
	Shell   string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Speaker speak.Speaker
	// Pipe creates the pipes used to capture output. Defaults to os.Pipe.
	Pipe func() (r, w *os.File, err error)
}

// Run runs line and returns its exit status. When capture is true, the
// output of the child is collected in full, then written to Stdout and
// Stderr and narrated; stderr is only narrated when it is not empty.
// Otherwise the child writes to Stdout and Stderr directly.
//
// A non-zero exit status is not an error. An error is returned when the
// child could not be started, or, wrapping ErrPipe, when the capturing pipes
// could not be created.
func (l *Launcher) Run(line string, capture bool) (int, error) {
	cmd := exec.Command(l.Shell, "-c", line)
	cmd.Stdin = l.Stdin
	if !capture {
		cmd.Stdout, cmd.Stderr = l.Stdout, l.Stderr
		logger.Printf("running %q with %s", line, l.Shell)
		if err := cmd.Start(); err != nil {
			return -1, fmt.Errorf("start %s: %w", l.Shell, err)
		}
		return l.wait(line, cmd)
	}

	outR, outW, err := l.pipe()
	if err != nil {
		return -1, err
	}
	defer outR.Close()
	errR, errW, err := l.pipe()
	if err != nil {
		outW.Close()
		return -1, err
	}
	defer errR.Close()
	cmd.Stdout, cmd.Stderr = outW, errW

	logger.Printf("running %q with %s, capturing output", line, l.Shell)
	err = cmd.Start()
	// The child has its own copies of the write ends. Closing ours lets the
	// reads below see EOF once the child is done.
	outW.Close()
	errW.Close()
	if err != nil {
		return -1, fmt.Errorf("start %s: %w", l.Shell, err)
	}

	// Drain both pipes at once, so that a child filling one of them does
	// not block forever.
	var stderr bytes.Buffer
	stderrDone := make(chan error, 1)
	go func() {
		_, err := stderr.ReadFrom(errR)
		stderrDone <- err
	}()
	var stdout bytes.Buffer
	if _, err := stdout.ReadFrom(outR); err != nil {
		logger.Println("read stdout:", err)
	}
	if err := <-stderrDone; err != nil {
		logger.Println("read stderr:", err)
	}

	status, err := l.wait(line, cmd)
	if err != nil {
		return status, err
	}
	l.write(l.Stdout, stdout.Bytes())
	l.write(l.Stderr, stderr.Bytes())
	l.say(SpeakableForm(StdoutLabel, stdout.String()))
	if stderr.Len() > 0 {
		l.say(SpeakableForm(StderrLabel, stderr.String()))
	}
	return status, nil
}

func (l *Launcher) pipe() (*os.File, *os.File, error) {
	pipe := l.Pipe
	if pipe == nil {
		pipe = os.Pipe
	}
	r, w, err := pipe()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPipe, err)
	}
	return r, w, nil
}

func (l *Launcher) wait(line string, cmd *exec.Cmd) (int, error) {
	status, err := exitStatus(cmd.Wait())
	if err != nil {
		return status, err
	}
	logger.Printf("%q exited with status %d", line, status)
	return status, nil
}

func (l *Launcher) write(w io.Writer, b []byte) {
	if _, err := w.Write(b); err != nil {
		logger.Println("write output:", err)
	}
}

func (l *Launcher) say(text string) {
	if err := l.Speaker.Speak(text); err != nil {
		logger.Printf("speak %q: %v", text, err)
	}
}

func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
