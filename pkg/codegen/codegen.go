// Package codegen mints the human-readable entity codes used across the
// platform: a two-letter prefix followed by 8 decimal digits (10 characters
// total). Codes are distinct from the numeric primary keys and are shown to
// end users, so they must be unique per entity kind at issuance time.
package codegen

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Entity code prefixes.
const (
	PrefixAdmin       = "AD"
	PrefixCompany     = "DN"
	PrefixCandidate   = "UV"
	PrefixJob         = "VL"
	PrefixCV          = "CV"
	PrefixApplication = "DX"
)

const (
	maxAttempts = 100
	codeDigits  = 8
	maxValue    = 99_999_999
)

// ErrExhausted is returned when no unique code could be drawn within
// maxAttempts. It implies the code space is saturated or the uniqueness
// check is broken; callers should surface it as an internal error.
var ErrExhausted = errors.New("codegen: code space exhausted")

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generate draws random codes of the form prefix+8 digits until one passes
// the uniqueness check. The generated code is not reserved; the caller must
// persist the owning entity promptly (the store's unique constraint closes
// the remaining race window).
func Generate(ctx context.Context, prefix string, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := generateOnce(prefix)
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: prefix %q after %d attempts", ErrExhausted, prefix, maxAttempts)
}

func generateOnce(prefix string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxValue+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, codeDigits, n.Int64()), nil
}

// AdminCode returns the fixed administrator code. It is assigned once
// during seeding, never drawn randomly.
func AdminCode() string {
	return PrefixAdmin + "00000001"
}
