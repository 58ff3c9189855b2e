package credentials

import (
	"context"
	"errors"

	"github.com/JavadTorabiKh/microservices-k8s-lab/internal/directory"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service verifies username/password pairs against the user directory.
// It is read-only.
type Service struct {
	dir directory.Directory
}

func NewService(dir directory.Directory) *Service {
	return &Service{dir: dir}
}

// Verify returns the user record when the supplied password matches the
// stored one. Unknown users and wrong passwords both come back as
// ErrInvalidCredentials so responses cannot be used to enumerate usernames.
func (s *Service) Verify(
	ctx context.Context,
	username string,
	password string,
) (*directory.UserRecord, error) {

	user, err := s.dir.Lookup(ctx, username)
	if err != nil {
		// hide whether user exists or not
		return nil, ErrInvalidCredentials
	}

	// Stored secrets are plain text and compared directly. Known gap
	// inherited from the data model; do not paper over it here.
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
