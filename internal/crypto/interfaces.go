package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_codec_mock.go -package=mock

// EnvelopeCodec owns all client-side credential cryptography. It knows
// nothing about the network, the database, or vault sessions; its only job
// is turning plaintext secrets into self-describing envelopes and back.
//
// Envelope layout (base64, standard encoding):
//
//	bytes [0,16)  salt   - PBKDF2 salt, fresh per envelope
//	bytes [16,32) iv     - AES-CBC initialization vector, fresh per envelope
//	bytes [32,..) ciphertext - AES-256-CBC, PKCS#7 padding
//
// The key is always re-derived from the master password plus the embedded
// salt, so the master password is the only external state needed to decrypt.
// The format carries no authentication tag; wrong keys are detected through
// padding and UTF-8 checks. That is a documented limitation of the wire
// format, kept for compatibility with already-stored envelopes.
type EnvelopeCodec interface {
	// GenerateSalt returns 16 random bytes from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches masterPassword and salt into a 256-bit key with
	// PBKDF2-SHA256 at 10,000 iterations. Deterministic: the same
	// password+salt pair always yields the same key.
	DeriveKey(masterPassword string, salt []byte) []byte

	// Encrypt seals plaintext under a key derived from masterPassword and a
	// fresh salt. It returns the envelope plus the base64 IV; the IV is also
	// embedded in the envelope and is returned separately only for
	// informational storage.
	Encrypt(plaintext, masterPassword string) (envelope, iv string, err error)

	// Decrypt opens an envelope produced by Encrypt. Failures (bad base64,
	// truncated envelope, wrong password, corrupted padding) wrap
	// ErrDecryptionFailed.
	Decrypt(envelope, masterPassword string) (string, error)
}
