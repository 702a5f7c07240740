package dto

import (
	"time"

	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
)

// RecordResponse represents an encrypted record in API responses.
// All binary fields are hex-encoded strings.
type RecordResponse struct {
	ID                string    `json:"id"`
	PartyID           string    `json:"partyId"`
	CreatedAt         time.Time `json:"createdAt"`
	PayloadNonce      string    `json:"payloadNonce"`
	PayloadCiphertext string    `json:"payloadCiphertext"`
	PayloadTag        string    `json:"payloadTag"`
	DekWrapNonce      string    `json:"dekWrapNonce"`
	DekWrapped        string    `json:"dekWrapped"`
	DekWrapTag        string    `json:"dekWrapTag"`
	Alg               string    `json:"alg"`
	MkVersion         int       `json:"mkVersion"`
}

// MapRecordToResponse converts a domain encrypted record to an API response.
func MapRecordToResponse(record *envelopeDomain.EncryptedRecord) RecordResponse {
	return RecordResponse{
		ID:                record.ID.String(),
		PartyID:           record.PartyID,
		CreatedAt:         record.CreatedAt,
		PayloadNonce:      record.PayloadNonce,
		PayloadCiphertext: record.PayloadCiphertext,
		PayloadTag:        record.PayloadTag,
		DekWrapNonce:      record.DekWrapNonce,
		DekWrapped:        record.DekWrapped,
		DekWrapTag:        record.DekWrapTag,
		Alg:               record.Alg,
		MkVersion:         record.MkVersion,
	}
}

// DecryptedPayloadResponse contains the result of a decryption operation.
// SECURITY: The payload field contains sensitive data and should be transmitted over HTTPS.
type DecryptedPayloadResponse struct {
	ID      string `json:"id"`
	PartyID string `json:"partyId"`
	Payload any    `json:"payload"`
}

// MapDecryptedPayloadToResponse converts a decrypted payload to an API response.
func MapDecryptedPayloadToResponse(payload *envelopeDomain.DecryptedPayload) DecryptedPayloadResponse {
	return DecryptedPayloadResponse{
		ID:      payload.ID.String(),
		PartyID: payload.PartyID,
		Payload: payload.Payload,
	}
}
