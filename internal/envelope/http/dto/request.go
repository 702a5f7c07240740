// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
	customValidation "github.com/Arpan-gl/mirfa-test-app/internal/validation"
)

// EncryptRequest contains the parameters for encrypting a payload into a new record.
type EncryptRequest struct {
	PartyID string          `json:"partyId"`
	Payload json.RawMessage `json:"payload"` // Arbitrary JSON document
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PartyID,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Payload,
			validation.Required,
		),
	)
}

// DecryptRecordRequest carries a full encrypted record in the request body for
// direct decryption without a storage lookup. The cryptographic fields are
// validated by the use case, not here, so that malformed records produce the
// same errors on every decryption path.
type DecryptRecordRequest struct {
	ID                uuid.UUID `json:"id"`
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

// ToRecord converts the request into a domain encrypted record.
func (r *DecryptRecordRequest) ToRecord() *envelopeDomain.EncryptedRecord {
	return &envelopeDomain.EncryptedRecord{
		ID:                r.ID,
		PartyID:           r.PartyID,
		CreatedAt:         r.CreatedAt,
		PayloadNonce:      r.PayloadNonce,
		PayloadCiphertext: r.PayloadCiphertext,
		PayloadTag:        r.PayloadTag,
		DekWrapNonce:      r.DekWrapNonce,
		DekWrapped:        r.DekWrapped,
		DekWrapTag:        r.DekWrapTag,
		Alg:               r.Alg,
		MkVersion:         r.MkVersion,
	}
}
