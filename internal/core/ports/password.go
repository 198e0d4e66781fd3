package ports

// PasswordHasher hashes plaintext passwords and verifies them against stored
// digests. Verify must delegate to a constant-time-safe comparison; raw
// string equality is never acceptable. Implementations never log either
// argument.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
