// Package block holds the block container built on top of the SHA-256
// primitive: a header linking to the previous block, a Merkle root over
// the transactions and the header hash.
package block

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"github.com/zeebo/sha256"
)

// GenesisHash is the previous hash of the first block of a chain.
const GenesisHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Block is a container of transactions.
type Block struct {
	PreviousHash string
	Timestamp    time.Time
	Transactions []string
	MerkleRoot   string
	Nonce        uint64
	Hash         string
}

// New returns a block with its Merkle root and hash filled in.
func New(previousHash string, timestamp time.Time, transactions []string) (*Block, error) {
	if err := checkDigest(previousHash); err != nil {
		return nil, errors.Wrap(err, "previous hash")
	}

	b := &Block{
		PreviousHash: previousHash,
		Timestamp:    timestamp,
		Transactions: transactions,
		MerkleRoot:   MerkleRoot(transactions),
	}

	var err error
	if b.Hash, err = b.ComputeHash(); err != nil {
		return nil, err
	}
	return b, nil
}

// Header returns the serialized header the block hash is computed over:
// the previous hash and the Merkle root as their 64 hex characters, the
// timestamp as big endian Unix nanoseconds and the nonce as a big endian
// uint64, in the order previous hash, timestamp, Merkle root, nonce.
func (b *Block) Header() []byte {
	buf := make([]byte, 0, 2*2*sha256.Size+8+8)
	buf = append(buf, b.PreviousHash...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(b.Timestamp.UnixNano()))
	buf = append(buf, b.MerkleRoot...)
	buf = binary.BigEndian.AppendUint64(buf, b.Nonce)
	return buf
}

// ComputeHash returns the hash of the block header.
func (b *Block) ComputeHash() (string, error) {
	digest, err := sha256.Hash(b.Header())
	if err != nil {
		return "", errors.Wrap(err, "hash header")
	}
	return digest, nil
}

// Verify recomputes the Merkle root and the hash and reports the first
// that does not match the stored value.
func (b *Block) Verify() error {
	if root := MerkleRoot(b.Transactions); root != b.MerkleRoot {
		return errors.Errorf("merkle root mismatch: stored %s, computed %s", b.MerkleRoot, root)
	}

	digest, err := b.ComputeHash()
	if err != nil {
		return err
	}
	if digest != b.Hash {
		return errors.Errorf("hash mismatch: stored %s, computed %s", b.Hash, digest)
	}
	return nil
}

// Follows reports whether b links to prev.
func (b *Block) Follows(prev *Block) bool {
	return prev != nil && b.PreviousHash == prev.Hash
}

func checkDigest(s string) error {
	if len(s) != 2*sha256.Size {
		return errors.Errorf("digest %q has %d characters, want %d", s, len(s), 2*sha256.Size)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return errors.Wrapf(err, "digest %q", s)
	}
	return nil
}
