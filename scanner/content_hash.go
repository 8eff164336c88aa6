package scanner

import (
	"bufio"
	"bytes"
	"encoding/hex"

	"github.com/glaslos/tlsh"
	"lukechampine.com/blake3"
)

// contentDigest returns a blake3 digest of file content, used to detect exact
// duplicates within a batch.
func contentDigest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// fuzzyHash returns a TLSH locality-sensitive hash for near-duplicate
// investigation. TLSH needs a minimum amount of input; too-small or
// low-entropy content yields an empty string.
func fuzzyHash(data []byte) string {
	hash, err := tlsh.HashReader(bufio.NewReader(bytes.NewReader(data)))
	if err != nil {
		return ""
	}
	return hash.String()
}
