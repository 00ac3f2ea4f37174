// Package shapecache persists built storage-tree snapshots on disk so
// repeated inspections of the same alternative set skip the build step.
package shapecache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"vartree/altset"
	"vartree/shape"
)

// Current schema version - increment when Payload format changes.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 fingerprint of an alternative set.
type Digest [sha256.Size]byte

// Cache stores shape snapshots keyed by set fingerprint.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is the on-disk record for one built set.
type Payload struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16

	SetName string
	Count   int
	Depth   int
	TagBits int

	Root  uint32
	Nodes []shape.SnapshotNode
}

// Open initializes a cache at the standard location for app.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenAt initializes a cache rooted at an explicit directory.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Fingerprint hashes the set's name-independent identity: alternative
// count plus each payload type in declaration order.
func Fingerprint(set *altset.Set) Digest {
	h := sha256.New()
	for i := 0; i < set.Len(); i++ {
		alt, _ := set.At(i)
		h.Write([]byte(alt.Type.String()))
		h.Write([]byte{0})
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Snapshot builds the cache payload for a built set.
func Snapshot(name string, set *altset.Set, tree *shape.Tree) *Payload {
	snap := tree.ToSnapshot()
	return &Payload{
		Schema:  cacheSchemaVersion,
		SetName: name,
		Count:   set.Len(),
		Depth:   tree.Depth(),
		TagBits: set.TagBits(),
		Root:    snap.Root,
		Nodes:   snap.Nodes,
	}
}

// Tree reconstructs the stored shape.
func (p *Payload) Tree() (*shape.Tree, error) {
	if p == nil {
		return nil, &shape.Error{Kind: shape.ErrBadSnapshot, Detail: "nil payload"}
	}
	return shape.FromSnapshot(shape.Snapshot{Root: p.Root, Nodes: p.Nodes})
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// A "sets" subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "sets", hexKey+".mp")
}

// Put serializes and writes a payload to the cache.
func (c *Cache) Put(key Digest, payload *Payload) error {
	if c == nil || payload == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace
	return os.Rename(f.Name(), p)
}

// Get reads a payload from the cache. A missing entry or a payload written
// under a different schema version reports (false, nil): stale records are
// rebuilt, never trusted.
func (c *Cache) Get(key Digest, out *Payload) (bool, error) {
	if c == nil || out == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}
