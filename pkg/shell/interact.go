package shell

import (
	"errors"
	"fmt"
	"io"

	"src.pina.sh/pkg/cli/histutil"
	"src.pina.sh/pkg/cli/term"
	"src.pina.sh/pkg/edit"
	"src.pina.sh/pkg/launch"
	"src.pina.sh/pkg/parse"
	"src.pina.sh/pkg/speak"
)

// Narrations of the shell loop.
const (
	readyNarration     = "Pina shells is ready."
	nextNarration      = "Next command!"
	emptyLineNarration = "No command to execute."
)

// Header printed above the command history after each command.
const historyHeader = "\nComand prev reverse list:\n"

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Prompt  string
	TTY     term.TTY
	Speaker speak.Speaker
	History histutil.Store
	// Launcher runs commands that are not builtins.
	Launcher *launch.Launcher
	// Capture makes the launcher collect and narrate the output of
	// commands.
	Capture bool
	// Alloc allocates the line buffer. Defaults to edit.DefaultAllocator.
	Alloc edit.Allocator

	Stdout, Stderr io.Writer
}

type session struct {
	*InteractConfig
	ed *edit.Editor
}

func (sh *session) say(text string) {
	if err := sh.Speaker.Speak(text); err != nil {
		logger.Printf("speak %q: %v", text, err)
	}
}

// Interact runs an interactive shell session. It returns nil when the input
// ends or the exit builtin is run. Any other error is fatal; the terminal has
// already been restored when Interact returns.
func Interact(cfg *InteractConfig) error {
	sh := &session{
		InteractConfig: cfg,
		ed: edit.NewEditor(edit.Config{
			TTY: cfg.TTY, Speaker: cfg.Speaker, History: cfg.History,
			Prompt: cfg.Prompt, Alloc: cfg.Alloc,
		}),
	}

	sh.say(readyNarration)
	for {
		cfg.TTY.WriteString(cfg.Prompt)
		sh.say(nextNarration)

		line, err := sh.ed.ReadLine()
		if err == io.EOF {
			logger.Println("end of input")
			return nil
		} else if err != nil {
			return fmt.Errorf("line editor: %w", err)
		}

		words := parse.Split(line)
		if len(words) == 0 {
			sh.say(emptyLineNarration)
			continue
		}
		sh.say(line)

		if err := cfg.History.AddCmd(line); err != nil {
			fmt.Fprintln(sh.Stderr, "Warning: cannot save history:", err)
		}
		writeHistory(sh.Stdout, cfg.History)

		if cont, err := sh.execute(line, words); err != nil {
			return err
		} else if !cont {
			return nil
		}
	}
}

// execute runs a builtin or launches line. It reports whether the shell
// should keep running; a non-nil error is fatal.
func (sh *session) execute(line string, words []string) (bool, error) {
	if b, ok := builtins[words[0]]; ok {
		return b(sh, words), nil
	}
	status, err := sh.Launcher.Run(line, sh.Capture)
	if errors.Is(err, launch.ErrPipe) {
		return false, fmt.Errorf("run command: %w", err)
	} else if err != nil {
		fmt.Fprintln(sh.Stderr, "pina_shell:", err)
		sh.say("pina_shell: cannot run command")
	} else if status != 0 {
		logger.Printf("command exited with status %d", status)
	}
	return true, nil
}

// writeHistory prints the history oldest first. Entries are numbered by
// their distance from the most recent one, which is numbered 0 and printed
// last.
func writeHistory(w io.Writer, h histutil.Store) {
	io.WriteString(w, historyHeader)
	for i := h.Len() - 1; i >= 0; i-- {
		fmt.Fprintf(w, " %2d : %s\n", i, h.Cmd(i))
	}
}
