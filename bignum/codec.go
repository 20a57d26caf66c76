package bignum

import (
	"strings"

	"github.com/anbrusi/nanocas/caserr"
)

// maxCodecLen bounds the toy cipher below to the scenario spec.md §8
// exercises (strings up to 30 characters).
const maxCodecLen = 30

// CipherText is the result of Encrypt: one fixed-width digit per source
// character. Unlike NatBig, it is never canonicalized — stripping a
// trailing zero digit here would silently truncate the plaintext, so this
// type intentionally does not reuse NatBig's normalize-on-construction
// invariant.
type CipherText struct {
	digits []int
}

// Encrypt implements the small base-B digit-packing cipher spec.md §1
// keeps around as an existing exerciser of the bignum layer: each
// character code becomes one digit, shifted by key modulo B. It is not
// meant to be cryptographically meaningful.
func (r Radix) Encrypt(plain string, key int) (CipherText, error) {
	if len(plain) > maxCodecLen {
		return CipherText{}, caserr.New(caserr.IllegalChar, "text longer than %d characters", maxCodecLen)
	}
	digits := make([]int, len(plain))
	for i := 0; i < len(plain); i++ {
		c := int(plain[i])
		if c >= r.b {
			return CipherText{}, caserr.New(caserr.IllegalChar, "character code %d does not fit radix %d", c, r.b)
		}
		digits[i] = Mod(c+key, r.b)
	}
	return CipherText{digits: digits}, nil
}

// Decrypt reverses Encrypt and trims the trailing spaces a caller used to
// pad the plaintext to a fixed width before encrypting.
func (r Radix) Decrypt(ct CipherText, key int) string {
	buf := make([]byte, len(ct.digits))
	for i, d := range ct.digits {
		buf[i] = byte(Mod(d-key, r.b))
	}
	return strings.TrimRight(string(buf), " ")
}
