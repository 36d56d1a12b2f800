package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}
