package cipher

import (
	"context"
	"vic/pkg/domain"
	"vic/pkg/vic"
)

//go:generate mockgen -package mockcipher -source=interface.go -destination=mock/mockcipher.go *
type Cipher interface {
	Decrypt(ctx context.Context, rec domain.Record) (*domain.Decryption, error)
	Encrypt(ctx context.Context, rec domain.Record) (string, error)
	Board(ctx context.Context, rec domain.Record) (*vic.Checkerboard, error)
}
