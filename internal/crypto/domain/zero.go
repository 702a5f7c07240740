package domain

// Zero overwrites a byte slice with zeros so key material does not linger in
// memory after use. Safe on nil and empty slices.
func Zero(b []byte) {
	clear(b)
}
