package service

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
	cryptoService "github.com/Arpan-gl/mirfa-test-app/internal/crypto/service"
	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
)

// recordCipher is the cipher suite behind the record's alg tag. Records carry
// the tag as a string so stored data stays self-describing; this constant maps
// it to the AEAD implementation used for both payload and DEK encryption.
const recordCipher = cryptoDomain.AESGCM

// envelopeService implements EnvelopeService using a master key resolved at
// startup. The key is injected once and reused for the process lifetime.
type envelopeService struct {
	masterKey   *cryptoDomain.MasterKey
	keyManager  cryptoService.KeyManager
	aeadManager cryptoService.AEADManager
	logger      *slog.Logger
}

// Encrypt seals payload into a new encrypted record owned by partyID.
//
// The payload is serialized to JSON, encrypted under a fresh 32-byte DEK with
// a fresh nonce, and the DEK is wrapped under the master key with a second,
// independent nonce. Nothing is cached between calls, so nonce reuse across
// records cannot occur.
func (s *envelopeService) Encrypt(partyID string, payload any) (*envelopeDomain.EncryptedRecord, error) {
	if err := s.checkMasterKey(); err != nil {
		return nil, err
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", envelopeDomain.ErrPayloadSerialization, err)
	}

	dek, err := s.keyManager.GenerateDek()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(dek)

	payloadCipher, err := s.aeadManager.CreateCipher(dek, recordCipher)
	if err != nil {
		return nil, err
	}

	sealed, payloadNonce, err := payloadCipher.Encrypt(plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt payload: %w", err)
	}
	payloadCiphertext, payloadTag := splitSealed(sealed)

	wrapped, err := s.keyManager.WrapDek(s.masterKey, dek, recordCipher)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap DEK: %w", err)
	}
	dekWrapped, dekWrapTag := splitSealed(wrapped.EncryptedKey)

	return &envelopeDomain.EncryptedRecord{
		ID:                uuid.Must(uuid.NewV7()),
		PartyID:           partyID,
		CreatedAt:         time.Now().UTC(),
		PayloadNonce:      hex.EncodeToString(payloadNonce),
		PayloadCiphertext: hex.EncodeToString(payloadCiphertext),
		PayloadTag:        hex.EncodeToString(payloadTag),
		DekWrapNonce:      hex.EncodeToString(wrapped.Nonce),
		DekWrapped:        hex.EncodeToString(dekWrapped),
		DekWrapTag:        hex.EncodeToString(dekWrapTag),
		Alg:               envelopeDomain.SupportedAlgorithm,
		MkVersion:         s.masterKey.Version,
	}, nil
}

// Decrypt recovers the payload from record.
//
// The record is structurally validated before any cryptographic work. The DEK
// is unwrapped first, then the payload decrypted under it. Both stages report
// the same ErrDecryptionFailed on authentication failure; the failing stage is
// only visible in debug logs, never to the caller.
func (s *envelopeService) Decrypt(record *envelopeDomain.EncryptedRecord) (*envelopeDomain.DecryptedPayload, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkMasterKey(); err != nil {
		return nil, err
	}

	dekWrapNonce, err := decodeHex(envelopeDomain.FieldDekWrapNonce, record.DekWrapNonce)
	if err != nil {
		return nil, err
	}
	dekWrapped, err := decodeHex(envelopeDomain.FieldDekWrapped, record.DekWrapped)
	if err != nil {
		return nil, err
	}
	dekWrapTag, err := decodeHex(envelopeDomain.FieldDekWrapTag, record.DekWrapTag)
	if err != nil {
		return nil, err
	}

	wrappedDek := cryptoDomain.WrappedDek{
		EncryptedKey: append(dekWrapped, dekWrapTag...),
		Nonce:        dekWrapNonce,
	}

	dek, err := s.keyManager.UnwrapDek(s.masterKey, wrappedDek, recordCipher)
	if err != nil {
		s.logger.Debug("envelope decryption failed",
			slog.String("stage", "dek_unwrap"),
			slog.String("record_id", record.ID.String()),
			slog.Any("error", err),
		)
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(dek)

	payloadNonce, err := decodeHex(envelopeDomain.FieldPayloadNonce, record.PayloadNonce)
	if err != nil {
		return nil, err
	}
	payloadCiphertext, err := decodeHex(envelopeDomain.FieldPayloadCiphertext, record.PayloadCiphertext)
	if err != nil {
		return nil, err
	}
	payloadTag, err := decodeHex(envelopeDomain.FieldPayloadTag, record.PayloadTag)
	if err != nil {
		return nil, err
	}

	payloadCipher, err := s.aeadManager.CreateCipher(dek, recordCipher)
	if err != nil {
		return nil, err
	}

	plaintext, err := payloadCipher.Decrypt(append(payloadCiphertext, payloadTag...), payloadNonce, nil)
	if err != nil {
		s.logger.Debug("envelope decryption failed",
			slog.String("stage", "payload"),
			slog.String("record_id", record.ID.String()),
			slog.Any("error", err),
		)
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(plaintext)

	var payload any
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", envelopeDomain.ErrPayloadDeserialization, err)
	}

	return &envelopeDomain.DecryptedPayload{
		ID:      record.ID,
		PartyID: record.PartyID,
		Payload: payload,
	}, nil
}

// checkMasterKey guards against a missing or closed master key. A missing key
// is a configuration fault, reported distinctly from any payload-related error.
func (s *envelopeService) checkMasterKey() error {
	if s.masterKey == nil || len(s.masterKey.Key) == 0 {
		return cryptoDomain.ErrMasterKeyNotSet
	}
	return nil
}

// splitSealed separates an AEAD sealed output into ciphertext and the trailing
// authentication tag. The record stores them as separate fields.
func splitSealed(sealed []byte) (ciphertext, tag []byte) {
	split := len(sealed) - cryptoDomain.TagSize
	return sealed[:split], sealed[split:]
}

// decodeHex decodes a record field, reporting the field name on failure.
func decodeHex(field, value string) ([]byte, error) {
	data, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", envelopeDomain.ErrInvalidHex, field)
	}
	return data, nil
}

// NewEnvelopeService creates an EnvelopeService bound to the given master key.
// The key must already be decoded and exactly 32 bytes; resolution and
// validation happen at startup via crypto domain master key loading.
func NewEnvelopeService(
	masterKey *cryptoDomain.MasterKey,
	keyManager cryptoService.KeyManager,
	aeadManager cryptoService.AEADManager,
	logger *slog.Logger,
) EnvelopeService {
	return &envelopeService{
		masterKey:   masterKey,
		keyManager:  keyManager,
		aeadManager: aeadManager,
		logger:      logger,
	}
}
