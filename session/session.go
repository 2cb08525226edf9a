package session

import "github.com/google/uuid"

// ID is a correlation id: it ties an emit that requested an
// acknowledgement to the eventual server reply.
type ID string

func (id ID) String() string { return string(id) }

// GenerateID returns a fresh correlation id. Declared as a variable so
// tests can pin the ids a client hands out.
var GenerateID = func() ID {
	return ID("sio-" + uuid.NewString())
}
