package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

var (
	tagAdjectives = []string{
		"amber", "brisk", "calm", "deft", "eager", "fleet",
		"keen", "lucid", "noble", "quiet", "swift", "vivid",
	}
	tagNouns = []string{
		"falcon", "heron", "lynx", "maple", "otter", "pine",
		"raven", "sparrow", "tern", "vole", "willow", "wren",
	}
)

// DisplayTag synthesizes a short human-readable name for
// identities whose provider supplies none, e.g. "brisk-otter-3f2a".
func DisplayTag() string {
	b := make([]byte, 4)
	rand.Read(b)

	adj := tagAdjectives[int(b[0])%len(tagAdjectives)]
	noun := tagNouns[int(b[1])%len(tagNouns)]

	return fmt.Sprintf("%s-%s-%s", adj, noun, hex.EncodeToString(b[2:4]))
}
