package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// artifactKey builds "kind:digest", where the digest covers the input and
// the JSON form of opts. Option structs hold plain fields only, so encoding
// them cannot fail.
func artifactKey(kind string, input []byte, opts any) string {
	h := sha256.New()
	h.Write(input)
	h.Write([]byte{0})
	_ = json.NewEncoder(h).Encode(opts)
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}
