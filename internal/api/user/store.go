package user

import "sync"

// Store keeps all user records in memory for the lifetime of the process.
// A single mutex guards both the map and the id counter, so allocating an
// id and inserting the record is one atomic step.
type Store struct {
	mu     sync.RWMutex
	users  map[int]User
	nextID int
}

func NewStore() *Store {
	return &Store{
		users:  make(map[int]User),
		nextID: 1,
	}
}

// List returns a point-in-time snapshot of all records.
func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

func (s *Store) Get(id int) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, &NotFoundError{ID: id}
	}
	return u, nil
}

// Create allocates the next id and inserts the record. Ids are strictly
// increasing and never reused, even after a delete.
func (s *Store) Create(input UserInput) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{
		ID:    s.nextID,
		Name:  input.Name,
		Email: input.Email,
	}
	s.nextID++
	s.users[u.ID] = u
	return u
}

// Update installs a whole new record under the existing id. Callers holding
// a previously returned User never observe a partial write.
func (s *Store) Update(id int, input UserInput) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return User{}, &NotFoundError{ID: id}
	}

	u := User{
		ID:    id,
		Name:  input.Name,
		Email: input.Email,
	}
	s.users[id] = u
	return u, nil
}

// Delete reports whether a record was actually removed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[id]
	if ok {
		delete(s.users, id)
	}
	return ok
}
