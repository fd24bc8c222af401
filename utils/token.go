package utils

import (
	"github.com/google/uuid"
)

// NewSessionToken mints the opaque token handed to a client at registration.
func NewSessionToken() string {
	return uuid.NewString()
}
