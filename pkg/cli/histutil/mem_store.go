package histutil

// NewMemStore returns a Store that keeps at most capacity entries in memory.
// The given texts are added oldest first.
func NewMemStore(capacity int, texts ...string) Store {
	s := &memStore{newRing[string](capacity)}
	for _, text := range texts {
		s.AddCmd(text)
	}
	return s
}

type memStore struct{ r *ring[string] }

func (s *memStore) AddCmd(text string) error {
	s.r.push(text)
	return nil
}

func (s *memStore) Len() int { return s.r.len() }

func (s *memStore) Cmd(i int) string { return s.r.at(i) }
