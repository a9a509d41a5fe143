// Package session implements the session cache: negotiated parameters
// remembered under a string key so a later connection can attempt an
// abbreviated handshake. The client keys it by server name; the server
// reuses the same type keyed by hex-encoded session id.
package session

import (
	"sync"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/tlsconst"
)

// Entry is an immutable snapshot of the parameters needed to resume a
// session: there is no partial update, entries are always replaced
// wholesale under the cache's single mutex.
type Entry struct {
	SessionID   []byte
	TLSVersion  tlsconst.ProtocolVersion
	Suite       *ciphersuite.Suite
	Compression byte
	MasterSecret [48]byte
}

// Cache is a shared session cache: one instance is owned by a Client (or
// Server) object and referenced by every Connection it creates.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry // keyed by server name (client) or session id (server)
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Lookup returns the cached entry for serverName, if any.
func (c *Cache) Lookup(serverName string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[serverName]
	return e, ok
}

// Store replaces the cached entry for serverName with entry, added when a
// new session reaches OPEN.
func (c *Cache) Store(serverName string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[serverName] = entry
}

// Evict removes the cached entry for serverName, called when the server
// declines resumption and returns a session id different from the one
// offered.
func (c *Cache) Evict(serverName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, serverName)
}
