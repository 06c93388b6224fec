// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.pina.sh/pkg/store/storedefs"
)

// TestCmd tests the command history functionality of a Store. The store must
// be empty.
func TestCmd(t *testing.T, store storedefs.Store) {
	t.Helper()

	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (1, nil)", startSeq, err)
	}

	cmds := []string{"echo foo", "echo bar", "ls", "cd /tmp", "echo bar"}
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%q) -> (%v, %v), want (%v, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	for i, wantCmd := range cmds {
		seq := i + startSeq
		cmd, err := store.Cmd(seq)
		if cmd != wantCmd || err != nil {
			t.Errorf("store.Cmd(%v) -> (%v, %v), want (%v, nil)",
				seq, cmd, err, wantCmd)
		}
	}

	all, err := store.CmdsWithSeq(startSeq, endSeq)
	if err != nil {
		t.Errorf("store.CmdsWithSeq -> error %v", err)
	}
	if len(all) != len(cmds) {
		t.Errorf("store.CmdsWithSeq returned %d commands, want %d", len(all), len(cmds))
	}

	last, err := store.LastCmds(2)
	wantLast := []storedefs.Cmd{{Text: "cd /tmp", Seq: 4}, {Text: "echo bar", Seq: 5}}
	if diff := cmp.Diff(wantLast, last); diff != "" || err != nil {
		t.Errorf("store.LastCmds(2) -> error %v, diff (-want +got):\n%s", err, diff)
	}

	if err := store.DelCmd(1); err != nil {
		t.Errorf("store.DelCmd(1) -> %v, want nil", err)
	}
	if cmd, err := store.Cmd(1); err != storedefs.ErrNoMatchingCmd {
		t.Errorf("store.Cmd(1) after deletion -> (%q, %v), want (\"\", %v)",
			cmd, err, storedefs.ErrNoMatchingCmd)
	}

	all, _ = store.LastCmds(100)
	if len(all) != len(cmds)-1 {
		t.Errorf("store.LastCmds(100) after deletion returned %d commands, want %d",
			len(all), len(cmds)-1)
	}

	if err := store.DelCmdsBefore(4); err != nil {
		t.Errorf("store.DelCmdsBefore(4) -> %v, want nil", err)
	}
	all, _ = store.LastCmds(100)
	if diff := cmp.Diff(wantLast, all); diff != "" {
		t.Errorf("store.LastCmds(100) after DelCmdsBefore(4) (-want +got):\n%s", diff)
	}
}
