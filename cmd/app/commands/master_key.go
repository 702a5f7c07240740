package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	cryptoDomain "github.com/Arpan-gl/mirfa-test-app/internal/crypto/domain"
)

// RunCreateMasterKey generates a fresh 32-byte master key and writes it as
// the 64-character hex value expected in MASTER_KEY.
func RunCreateMasterKey(w io.Writer) error {
	masterKey := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(masterKey); err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}
	defer cryptoDomain.Zero(masterKey)

	fmt.Fprintln(w, "# Master Key Configuration")
	fmt.Fprintln(w, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "MASTER_KEY=%q\n", hex.EncodeToString(masterKey))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# The server loads MASTER_KEY at startup and refuses to start when it is")
	fmt.Fprintln(w, "# missing, not valid hex, or not exactly 32 bytes.")

	return nil
}
