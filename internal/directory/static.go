package directory

import "context"

// Static serves users from a fixed in-memory table. It is the default
// directory when no database is configured.
type Static struct {
	users map[string]UserRecord
}

// NewStatic returns a directory preloaded with the built-in sample users.
func NewStatic() *Static {
	return NewStaticFrom([]UserRecord{
		{
			Username: "admin",
			Password: "password",
			Email:    "admin@example.com",
			FullName: "System Administrator",
		},
		{
			Username: "user1",
			Password: "123456",
			Email:    "user1@example.com",
			FullName: "Sample User One",
		},
	})
}

// NewStaticFrom builds a directory from the given records.
func NewStaticFrom(records []UserRecord) *Static {
	m := make(map[string]UserRecord, len(records))
	for _, r := range records {
		m[r.Username] = r
	}
	return &Static{users: m}
}

func (s *Static) Lookup(_ context.Context, username string) (*UserRecord, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}
