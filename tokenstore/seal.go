package tokenstore

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	saltLength  = 16
	nonceLength = 24
	keyLength   = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// seal returns salt || nonce || secretbox(plain). A fresh salt is used on every write.
func seal(passphrase string, plain []byte) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("[tokenstore seal] salt: %w", err)
	}

	var nonce [nonceLength]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("[tokenstore seal] nonce: %w", err)
	}

	key := deriveKey(passphrase, salt)
	out := make([]byte, 0, saltLength+nonceLength+len(plain)+secretbox.Overhead)
	out = append(out, salt...)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plain, &nonce, &key), nil
}

func open(passphrase string, sealed []byte) ([]byte, bool) {
	if len(sealed) < saltLength+nonceLength+secretbox.Overhead {
		return nil, false
	}

	salt := sealed[:saltLength]
	var nonce [nonceLength]byte
	copy(nonce[:], sealed[saltLength:saltLength+nonceLength])

	key := deriveKey(passphrase, salt)
	return secretbox.Open(nil, sealed[saltLength+nonceLength:], &nonce, &key)
}

func deriveKey(passphrase string, salt []byte) [keyLength]byte {
	var key [keyLength]byte
	copy(key[:], argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, keyLength))
	return key
}
