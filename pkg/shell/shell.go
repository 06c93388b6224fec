// Package shell is the entry point for the speaking terminal interface of
// pina.
package shell

import (
	"fmt"
	"io"
	"os"

	"src.pina.sh/pkg/cli/histutil"
	"src.pina.sh/pkg/cli/term"
	"src.pina.sh/pkg/edit"
	"src.pina.sh/pkg/launch"
	"src.pina.sh/pkg/logutil"
	"src.pina.sh/pkg/prog"
	"src.pina.sh/pkg/speak"
	"src.pina.sh/pkg/store"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct {
	// Alloc, if not nil, allocates the line buffer.
	Alloc edit.Allocator
}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("pina does not take arguments")
	}

	cfg := DefaultConfig()
	if f.RC != "" {
		if err := LoadRC(&cfg, f.RC); err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
		}
	}
	ApplyFlags(&cfg, f)
	if err := cfg.Validate(); err != nil {
		return prog.BadUsage(err.Error())
	}
	logger.Printf("config: %+v", cfg)

	cleanupSignal := initSignal(fds[2])
	defer cleanupSignal()

	history, closeHistory := openHistory(cfg, fds[2])
	defer closeHistory()

	sp := newSpeaker(cfg, fds[2])
	return Interact(&InteractConfig{
		Prompt:  cfg.Prompt,
		TTY:     term.NewTTY(fds[0], fds[1]),
		Speaker: sp,
		History: history,
		Launcher: &launch.Launcher{
			Shell: cfg.Shell, Stdin: fds[0], Stdout: fds[1], Stderr: fds[2],
			Speaker: sp,
		},
		Capture: cfg.Capture,
		Alloc:   p.Alloc,
		Stdout:  fds[1], Stderr: fds[2],
	})
}

func newSpeaker(cfg Config, stderr io.Writer) speak.Speaker {
	if cfg.Engine == "" {
		logger.Println("speech disabled")
		return speak.Nop
	}
	return speak.Tolerant(&speak.Engine{Name: cfg.Engine, Args: cfg.EngineArgs}, stderr)
}

// openHistory returns the command history, backed by the database at cfg.DB
// if one is configured. A database that cannot be used is reported and the
// history is kept in memory instead.
func openHistory(cfg Config, stderr io.Writer) (histutil.Store, func()) {
	memStore := func() (histutil.Store, func()) {
		return histutil.NewMemStore(cfg.HistorySize), func() {}
	}
	if cfg.DB == "" {
		return memStore()
	}
	db, err := store.NewStore(cfg.DB)
	if err != nil {
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "Command history will not be saved.")
		return memStore()
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Println("close database:", err)
		}
	}
	hs, err := histutil.NewDBStore(db, cfg.HistorySize)
	if err != nil {
		closeDB()
		fmt.Fprintln(stderr, "Warning:", err)
		fmt.Fprintln(stderr, "Command history will not be saved.")
		return memStore()
	}
	return hs, closeDB
}
