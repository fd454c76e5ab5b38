package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/tienchinh21/bkasim-cms/internal/domain"
	"github.com/tienchinh21/bkasim-cms/internal/service/ports"
)

const (
	checkInCodeLength   = 8
	checkInCodeAttempts = 10
	// Ambiguous characters (0/O, 1/I/L) are left out for codes read aloud at the door.
	checkInCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// CodeGenerator issues check-in codes unique across registrations and guest lists.
type CodeGenerator struct {
	repo ports.CheckInCodeRepo
	next func() (string, error)
}

func NewCodeGenerator(repo ports.CheckInCodeRepo) *CodeGenerator {
	return &CodeGenerator{repo: repo, next: randomCode}
}

func (g *CodeGenerator) Generate(ctx context.Context) (string, error) {
	for range checkInCodeAttempts {
		code, err := g.next()
		if err != nil {
			return "", fmt.Errorf("random code: %w", err)
		}
		exists, err := g.repo.CheckInCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", domain.ErrCheckInCodeExhausted
}

func randomCode() (string, error) {
	buf := make([]byte, checkInCodeLength)
	limit := big.NewInt(int64(len(checkInCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = checkInCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
