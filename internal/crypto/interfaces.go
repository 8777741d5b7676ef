package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing, salted
// digests and checks plaintexts against stored digests.
//
// It knows nothing about users, storage or transport.
//
// Digests produced by Hash:
//
//	$2a$12$<22 chars salt><31 chars hash>                (bcrypt)
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>         (argon2id, PHC string)
//
// Digests only accepted by Verify (written by earlier versions of the service):
//
//	$pbkdf2-sha256$<rounds>$<ab64 salt>$<ab64 hash>
//	<64 hex chars>                                       (HMAC-SHA256 with a server key)
type PasswordHasher interface {
	// Hash returns a new digest of password with a fresh random salt, so two
	// calls with the same password give different digests.
	// Returns ErrPasswordTooLong when bcrypt is configured and password is
	// longer than 72 bytes.
	Hash(password string) (string, error)

	// Verify reports whether digest was produced from password. Malformed or
	// unknown digests yield false; Verify never panics.
	Verify(password, digest string) bool

	// NeedsRehash reports whether digest uses a legacy scheme, a scheme other
	// than the configured one, or outdated parameters.
	NeedsRehash(digest string) bool
}
