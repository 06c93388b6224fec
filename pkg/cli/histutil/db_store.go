package histutil

import (
	"fmt"

	"src.pina.sh/pkg/store/storedefs"
)

// NewDBStore returns a Store seeded with the most recent capacity commands of
// db. Older commands are deleted from db. Commands added later are written
// through to db, and commands evicted from the store are deleted from it, so
// that the database never holds more than the store does.
func NewDBStore(db DB, capacity int) (Store, error) {
	s := &dbStore{db, newRing[storedefs.Cmd](capacity)}
	cmds, err := db.LastCmds(len(s.r.buf))
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if len(cmds) > 0 {
		if err := db.DelCmdsBefore(cmds[0].Seq); err != nil {
			return nil, fmt.Errorf("prune history: %w", err)
		}
	}
	for _, cmd := range cmds {
		s.r.push(cmd)
	}
	logger.Printf("loaded %d commands from database", len(cmds))
	return s, nil
}

type dbStore struct {
	db DB
	r  *ring[storedefs.Cmd]
}

func (s *dbStore) AddCmd(text string) error {
	seq, err := s.db.AddCmd(text)
	if err != nil {
		seq = -1
		err = fmt.Errorf("save command: %w", err)
	}
	evicted, ok := s.r.push(storedefs.Cmd{Text: text, Seq: seq})
	if ok && evicted.Seq >= 0 {
		if delErr := s.db.DelCmd(evicted.Seq); delErr != nil && err == nil {
			err = fmt.Errorf("delete evicted command: %w", delErr)
		}
	}
	if err != nil {
		logger.Println(err)
	}
	return err
}

func (s *dbStore) Len() int { return s.r.len() }

func (s *dbStore) Cmd(i int) string { return s.r.at(i).Text }
