package histutil

import (
	"src.pina.sh/pkg/store/storedefs"
)

// DB is the part of the storage database used by the history.
type DB interface {
	AddCmd(cmd string) (int, error)
	DelCmd(seq int) error
	DelCmdsBefore(seq int) error
	LastCmds(n int) ([]storedefs.Cmd, error)
}

// TestDB is an implementation of the DB interface that can be used for testing.
type TestDB struct {
	AllCmds []string
	Deleted []int

	OneOffError error
}

func (s *TestDB) error() error {
	err := s.OneOffError
	s.OneOffError = nil
	return err
}

func (s *TestDB) AddCmd(cmd string) (int, error) {
	if s.OneOffError != nil {
		return -1, s.error()
	}
	s.AllCmds = append(s.AllCmds, cmd)
	return len(s.AllCmds) - 1, nil
}

func (s *TestDB) DelCmd(seq int) error {
	if s.OneOffError != nil {
		return s.error()
	}
	s.Deleted = append(s.Deleted, seq)
	return nil
}

func (s *TestDB) DelCmdsBefore(seq int) error {
	if s.OneOffError != nil {
		return s.error()
	}
	for i := 0; i < seq && i < len(s.AllCmds); i++ {
		s.Deleted = append(s.Deleted, i)
	}
	return nil
}

func (s *TestDB) LastCmds(n int) ([]storedefs.Cmd, error) {
	if s.OneOffError != nil {
		return nil, s.error()
	}
	from := len(s.AllCmds) - n
	if from < 0 {
		from = 0
	}
	var cmds []storedefs.Cmd
	for i := from; i < len(s.AllCmds); i++ {
		cmds = append(cmds, storedefs.Cmd{Text: s.AllCmds[i], Seq: i})
	}
	return cmds, nil
}
