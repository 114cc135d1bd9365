package booking

import (
	"crypto/rand"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	suffixLength   = 6
	suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Largest multiple of 36 that fits in a byte; bytes at or above it are redrawn.
	suffixCutoff = 252
)

// ConfirmationGenerator builds display-only order numbers of the form
// PREFIX-<base36 unix millis>-<6 uppercase alphanumerics>. Numbers are not
// checked for collisions anywhere.
type ConfirmationGenerator struct {
	Prefix string
	Now    func() time.Time
	Rand   io.Reader
}

func NewConfirmationGenerator(prefix string) *ConfirmationGenerator {
	if prefix == "" {
		prefix = "TB"
	}
	return &ConfirmationGenerator{Prefix: prefix, Now: time.Now, Rand: rand.Reader}
}

// Next returns a fresh confirmation number.
func (g *ConfirmationGenerator) Next() (string, error) {
	suffix, err := g.suffix()
	if err != nil {
		return "", fmt.Errorf("failed to generate confirmation suffix: %w", err)
	}
	stamp := strconv.FormatInt(g.Now().UnixMilli(), 36)
	return g.Prefix + "-" + stamp + "-" + suffix, nil
}

func (g *ConfirmationGenerator) suffix() (string, error) {
	var sb strings.Builder
	buf := make([]byte, suffixLength*2)
	for sb.Len() < suffixLength {
		if _, err := io.ReadFull(g.Rand, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= suffixCutoff {
				continue
			}
			sb.WriteByte(suffixAlphabet[int(b)%len(suffixAlphabet)])
			if sb.Len() == suffixLength {
				break
			}
		}
	}
	return sb.String(), nil
}
