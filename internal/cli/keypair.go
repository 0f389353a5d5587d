package cli

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
)

// Keypair is an owner signing key. On disk it is a JSON array of the 64
// private key bytes, the same layout Solana keypair files use.
type Keypair struct {
	Private ed25519.PrivateKey
	Public  domain.PublicKey
}

// GenerateKeypair creates a fresh random keypair.
func GenerateKeypair() (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return keypairFromPrivate(priv)
}

func keypairFromPrivate(priv ed25519.PrivateKey) (*Keypair, error) {
	pub, err := domain.PublicKeyFromEd25519(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	return &Keypair{Private: priv, Public: pub}, nil
}

// LoadKeypair reads a keypair file.
func LoadKeypair(path string) (*Keypair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keypair: %w", err)
	}
	var ints []int
	if err := json.Unmarshal(raw, &ints); err != nil {
		return nil, fmt.Errorf("parse keypair %s: %w", path, err)
	}
	if len(ints) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("keypair %s has %d bytes, want %d", path, len(ints), ed25519.PrivateKeySize)
	}
	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("keypair %s: byte %d out of range", path, i)
		}
		priv[i] = byte(v)
	}
	// The trailing half must be the public key of the seed.
	kp, err := keypairFromPrivate(ed25519.NewKeyFromSeed(priv.Seed()))
	if err != nil {
		return nil, err
	}
	if !kp.Private.Equal(priv) {
		return nil, fmt.Errorf("keypair %s: public half does not match seed", path)
	}
	return kp, nil
}

// Save writes the keypair to path with owner-only permissions. It refuses to
// overwrite an existing file unless force is set.
func (k *Keypair) Save(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	ints := make([]int, len(k.Private))
	for i, b := range k.Private {
		ints[i] = int(b)
	}
	raw, err := json.Marshal(ints)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create keypair dir: %w", err)
	}
	return os.WriteFile(path, raw, 0o600)
}
