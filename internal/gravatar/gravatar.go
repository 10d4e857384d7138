// Package gravatar derives avatar URLs from email addresses.
package gravatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Fixed query parameters: size 200px, PG rating, "mystery man" fallback.
const params = "s=200&r=pg&d=mm"

// URL returns the gravatar URL for the given email. The derivation is
// deterministic: the hash is the md5 hex digest of the trimmed,
// lowercased address, so equal emails always yield equal URLs.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("//www.gravatar.com/avatar/%s?%s", hex.EncodeToString(sum[:]), params)
}
