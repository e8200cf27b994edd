package account

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/ed25519"
)

type Keypair struct {
	public  PublicKey
	private ed25519.PrivateKey
}

func NewKeypair() (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	kp := &Keypair{private: priv}
	copy(kp.public[:], pub)
	return kp, nil
}

func (k *Keypair) PublicKey() PublicKey {
	return k.public
}

func (k *Keypair) PrivateKey() ed25519.PrivateKey {
	return k.private
}
