package shell

import (
	"fmt"
	"io"
	"os"
)

// A builtin runs inside the shell process. It reports whether the shell
// should keep running.
type builtin func(sh *session, args []string) bool

var builtins = map[string]builtin{
	"cd":   cd,
	"help": help,
	"exit": exit,
}

// Order in which help lists the builtins.
var builtinNames = []string{"cd", "help", "exit"}

func cd(sh *session, args []string) bool {
	if len(args) < 2 {
		fmt.Fprintln(sh.Stderr, `pina_shell: expected argument to "cd"`)
		sh.say("pina_shell: expected argument to cd")
		return true
	}
	if err := os.Chdir(args[1]); err != nil {
		msg := "pina_shell: " + chdirError(err)
		fmt.Fprintln(sh.Stderr, msg)
		sh.say(msg)
	}
	return true
}

func chdirError(err error) string {
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Path + ": " + pathErr.Err.Error()
	}
	return err.Error()
}

func help(sh *session, _ []string) bool {
	writeHelp(sh.Stdout)
	return true
}

func writeHelp(w io.Writer) {
	fmt.Fprintln(w, "pina_shell")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "Every key you press and the output of every command is read aloud.")
	fmt.Fprintln(w, "Use the up and down arrows to walk through previous commands.")
	fmt.Fprintln(w, "The following are built in:")
	for _, name := range builtinNames {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, "Use the man command for information on other programs.")
}

func exit(*session, []string) bool {
	return false
}
