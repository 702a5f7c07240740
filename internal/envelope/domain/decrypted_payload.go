package domain

import (
	"github.com/google/uuid"
)

// DecryptedPayload carries a successfully decrypted payload together with
// the identity of the record it was recovered from.
type DecryptedPayload struct {
	// ID is the identifier of the source record.
	ID uuid.UUID
	// PartyID is the owning party copied from the source record.
	PartyID string
	// Payload is the deserialized payload value.
	Payload any
}
