package domain_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
	apperrors "github.com/Arpan-gl/mirfa-test-app/internal/errors"
)

// validRecord returns a structurally valid record with correctly sized hex fields.
func validRecord() domain.EncryptedRecord {
	return domain.EncryptedRecord{
		ID:                uuid.Must(uuid.NewV7()),
		PartyID:           "party-123",
		CreatedAt:         time.Now().UTC(),
		PayloadNonce:      strings.Repeat("0a", 12),
		PayloadCiphertext: strings.Repeat("1b", 42),
		PayloadTag:        strings.Repeat("2c", 16),
		DekWrapNonce:      strings.Repeat("3d", 12),
		DekWrapped:        strings.Repeat("4e", 32),
		DekWrapTag:        strings.Repeat("5f", 16),
		Alg:               domain.SupportedAlgorithm,
		MkVersion:         domain.SupportedMasterKeyVersion,
	}
}

func TestEncryptedRecord_Validate_Success(t *testing.T) {
	t.Run("ValidRecord_LowercaseHex", func(t *testing.T) {
		// Arrange
		record := validRecord()

		// Act
		err := record.Validate()

		// Assert
		assert.NoError(t, err)
	})

	t.Run("ValidRecord_UppercaseHex", func(t *testing.T) {
		// Arrange - mixed-case hex is accepted on input
		record := validRecord()
		record.PayloadNonce = strings.Repeat("AB", 12)
		record.PayloadTag = strings.Repeat("Cd", 16)

		// Act
		err := record.Validate()

		// Assert
		assert.NoError(t, err)
	})

	t.Run("ValidRecord_EmptyVariableFields", func(t *testing.T) {
		// Arrange - ciphertext and wrapped DEK are variable length, empty included
		record := validRecord()
		record.PayloadCiphertext = ""
		record.DekWrapped = ""

		// Act
		err := record.Validate()

		// Assert
		assert.NoError(t, err)
	})

	t.Run("ValidRecord_LargeVariableFields", func(t *testing.T) {
		// Arrange
		record := validRecord()
		record.PayloadCiphertext = strings.Repeat("ff", 10000)
		record.DekWrapped = strings.Repeat("ee", 64)

		// Act
		err := record.Validate()

		// Assert
		assert.NoError(t, err)
	})
}

func TestEncryptedRecord_Validate_Errors(t *testing.T) {
	t.Run("Error_UnsupportedAlgorithm", func(t *testing.T) {
		// Arrange
		record := validRecord()
		record.Alg = "aes-128-gcm"

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "aes-128-gcm")
	})

	t.Run("Error_UnsupportedKeyVersion", func(t *testing.T) {
		// Arrange
		record := validRecord()
		record.MkVersion = 2

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedKeyVersion)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_InvalidHex_PayloadNonce", func(t *testing.T) {
		// Arrange
		record := validRecord()
		record.PayloadNonce = "zz" + strings.Repeat("0a", 11)

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidHex)
		assert.Contains(t, err.Error(), "payloadNonce")
	})

	t.Run("Error_InvalidHex_DekWrapTag", func(t *testing.T) {
		// Arrange
		record := validRecord()
		record.DekWrapTag = strings.Repeat("0g", 16)

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidHex)
		assert.Contains(t, err.Error(), "dekWrapTag")
	})

	t.Run("Error_OddHexLength_PayloadCiphertext", func(t *testing.T) {
		// Arrange
		record := validRecord()
		record.PayloadCiphertext = "abc"

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidHexLength)
		assert.Contains(t, err.Error(), "payloadCiphertext")
	})

	t.Run("Error_PayloadNonceTooShort", func(t *testing.T) {
		// Arrange - 11 bytes instead of 12
		record := validRecord()
		record.PayloadNonce = strings.Repeat("0a", 11)

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidFieldLength)
		assert.Contains(t, err.Error(), "payloadNonce")
		assert.Contains(t, err.Error(), "must be 12 bytes, got 11")
	})

	t.Run("Error_PayloadNonceTooLong", func(t *testing.T) {
		// Arrange - 13 bytes instead of 12
		record := validRecord()
		record.PayloadNonce = strings.Repeat("0a", 13)

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidFieldLength)
		assert.Contains(t, err.Error(), "payloadNonce")
		assert.Contains(t, err.Error(), "must be 12 bytes, got 13")
	})

	t.Run("Error_DekWrapNonceWrongSize", func(t *testing.T) {
		// Arrange
		record := validRecord()
		record.DekWrapNonce = strings.Repeat("0a", 16)

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidFieldLength)
		assert.Contains(t, err.Error(), "dekWrapNonce")
		assert.Contains(t, err.Error(), "must be 12 bytes, got 16")
	})

	t.Run("Error_PayloadTagWrongSize", func(t *testing.T) {
		// Arrange
		record := validRecord()
		record.PayloadTag = strings.Repeat("2c", 15)

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidFieldLength)
		assert.Contains(t, err.Error(), "payloadTag")
		assert.Contains(t, err.Error(), "must be 16 bytes, got 15")
	})

	t.Run("Error_AlgorithmCheckedFirst", func(t *testing.T) {
		// Arrange - broken alg and broken hex together: alg wins
		record := validRecord()
		record.Alg = "unknown"
		record.PayloadNonce = "not-hex"

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm)
		assert.NotErrorIs(t, err, domain.ErrInvalidHex)
	})

	t.Run("Error_HexCheckedBeforeLength", func(t *testing.T) {
		// Arrange - odd-length payloadNonce and non-hex dekWrapTag: hex check runs first
		record := validRecord()
		record.PayloadNonce = "abc"
		record.DekWrapTag = "xyz!"

		// Act
		err := record.Validate()

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidHex)
		assert.Contains(t, err.Error(), "dekWrapTag")
	})
}

func TestEncryptedRecord_JSONFieldNames(t *testing.T) {
	// Arrange
	record := validRecord()

	// Act
	data, err := json.Marshal(record)

	// Assert - wire format field names are a contract with stored records
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, name := range []string{
		"id", "partyId", "createdAt",
		"payloadNonce", "payloadCiphertext", "payloadTag",
		"dekWrapNonce", "dekWrapped", "dekWrapTag",
		"alg", "mkVersion",
	} {
		assert.Contains(t, decoded, name)
	}
	assert.Len(t, decoded, 11)
}
