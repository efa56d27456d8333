package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Well-known file name under the state directory, the moral
	// equivalent of the browser's tech_expo_user storage key.
	fileStoreName = "tech_expo_session.bin"

	kdfIterations = 100_000
	kdfSaltLen    = 16
	kdfKeyLen     = 32
)

// FileStore persists the session to a single file, encrypted at rest
// with AES-GCM under a key derived from the configured secret. A
// missing or unreadable file reads as "no session" rather than an
// error, matching how the browser console behaves without storage.
type FileStore struct {
	mu     sync.Mutex
	path   string
	secret []byte
}

func NewFileStore(dir, secret string) *FileStore {
	return &FileStore{
		path:   filepath.Join(dir, fileStoreName),
		secret: []byte(secret),
	}
}

func (f *FileStore) Save(s Session) error {
	plain, err := json.Marshal(s)
	if err != nil {
		return err
	}

	sealed, err := f.seal(plain)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) User() (AuthUser, bool) {
	s, ok := f.load()
	if !ok || !tokenUsable(s.Token) {
		return AuthUser{}, false
	}
	return s.User, true
}

func (f *FileStore) Token() string {
	s, ok := f.load()
	if !ok {
		return ""
	}
	return s.Token
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *FileStore) IsAuthenticated() bool {
	_, ok := f.User()
	return ok
}

func (f *FileStore) load() (Session, bool) {
	f.mu.Lock()
	sealed, err := os.ReadFile(f.path)
	f.mu.Unlock()
	if err != nil {
		return Session{}, false
	}

	plain, err := f.open(sealed)
	if err != nil {
		return Session{}, false
	}

	var s Session
	if err := json.Unmarshal(plain, &s); err != nil {
		return Session{}, false
	}
	return s, true
}

// seal produces salt || nonce || ciphertext.
func (f *FileStore) seal(plain []byte) ([]byte, error) {
	salt := make([]byte, kdfSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	gcm, err := f.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(salt)+len(nonce)+len(plain)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plain, nil), nil
}

func (f *FileStore) open(sealed []byte) ([]byte, error) {
	if len(sealed) < kdfSaltLen {
		return nil, errors.New("session file too short")
	}

	salt := sealed[:kdfSaltLen]
	gcm, err := f.aead(salt)
	if err != nil {
		return nil, err
	}

	rest := sealed[kdfSaltLen:]
	if len(rest) < gcm.NonceSize() {
		return nil, errors.New("session file too short")
	}

	nonce := rest[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, rest[gcm.NonceSize():], nil)
}

func (f *FileStore) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(f.secret, salt, kdfIterations, kdfKeyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
