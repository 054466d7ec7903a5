package encrypter

import (
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// ErrDecryptFailed is returned when a ciphertext cannot be verified.
var ErrDecryptFailed = errors.New("failed to decrypt value")

// Encrypter encrypts and decrypts short secrets, e.g. OAuth refresh
// tokens at rest.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type fernetEncrypter struct {
	key *fernet.Key
}

// New creates a Fernet encrypter from a base64url-encoded 32-byte key.
func New(key string) (Encrypter, error) {
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("invalid encryption key: %w", err)
	}
	return &fernetEncrypter{key: k}, nil
}

func (e *fernetEncrypter) Encrypt(plaintext string) (string, error) {
	tok, err := fernet.EncryptAndSign([]byte(plaintext), e.key)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return string(tok), nil
}

// Decrypt verifies and decrypts a token. Tokens never expire here;
// lifetime is governed by the remote provider, not the ciphertext age.
func (e *fernetEncrypter) Decrypt(ciphertext string) (string, error) {
	msg := fernet.VerifyAndDecrypt([]byte(ciphertext), 0, []*fernet.Key{e.key})
	if msg == nil {
		return "", ErrDecryptFailed
	}
	return string(msg), nil
}
