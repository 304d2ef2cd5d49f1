package block

import (
	"encoding/hex"

	"github.com/zeebo/sha256"
)

const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// MerkleRoot returns the root of the binary hash tree over the
// transactions as 64 hex characters. A leaf is the digest of 0x00 followed
// by the transaction, a parent is the digest of 0x01 followed by its two
// children's raw digests, and a node without a sibling moves up a level
// unchanged. No transactions give the digest of the empty message.
func MerkleRoot(transactions []string) string {
	if len(transactions) == 0 {
		root := sha256.Sum256(nil)
		return hex.EncodeToString(root[:])
	}

	level := make([][sha256.Size]byte, len(transactions))
	for i, tx := range transactions {
		level[i] = hashLeaf(tx)
	}

	for len(level) > 1 {
		next := level[:0]
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, hashNode(&level[i], &level[i+1]))
		}
		level = next
	}

	return hex.EncodeToString(level[0][:])
}

func hashLeaf(tx string) [sha256.Size]byte {
	buf := make([]byte, 0, 1+len(tx))
	buf = append(buf, leafPrefix)
	buf = append(buf, tx...)
	return sha256.Sum256(buf)
}

func hashNode(a, b *[sha256.Size]byte) [sha256.Size]byte {
	var buf [1 + 2*sha256.Size]byte
	buf[0] = nodePrefix
	copy(buf[1:1+sha256.Size], a[:])
	copy(buf[1+sha256.Size:], b[:])
	return sha256.Sum256(buf[:])
}
