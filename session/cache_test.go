package session

import (
	"testing"

	"github.com/vlet/tls12/ciphersuite"
	"github.com/vlet/tls12/tlsconst"
)

func TestCacheStoreAndLookup(t *testing.T) {
	c := NewCache()
	_, ok := c.Lookup("example.com")
	if ok {
		t.Fatal("empty cache should not have an entry")
	}

	entry := Entry{
		SessionID:  []byte{1, 2, 3},
		TLSVersion: tlsconst.VersionTLS12,
		Suite:      ciphersuite.Null,
	}
	c.Store("example.com", entry)

	got, ok := c.Lookup("example.com")
	if !ok {
		t.Fatal("expected an entry after Store")
	}
	if string(got.SessionID) != string(entry.SessionID) {
		t.Errorf("SessionID = %v, want %v", got.SessionID, entry.SessionID)
	}
}

func TestCacheStoreReplacesExistingEntry(t *testing.T) {
	c := NewCache()
	c.Store("example.com", Entry{SessionID: []byte{1}})
	c.Store("example.com", Entry{SessionID: []byte{2}})
	got, ok := c.Lookup("example.com")
	if !ok || len(got.SessionID) != 1 || got.SessionID[0] != 2 {
		t.Errorf("Store did not replace wholesale, got %+v", got)
	}
}

func TestCacheEvict(t *testing.T) {
	c := NewCache()
	c.Store("example.com", Entry{SessionID: []byte{1}})
	c.Evict("example.com")
	if _, ok := c.Lookup("example.com"); ok {
		t.Fatal("entry should be gone after Evict")
	}
	c.Evict("never-there.example") // must not panic
}

func TestCacheIsIndependentPerServerName(t *testing.T) {
	c := NewCache()
	c.Store("a.example", Entry{SessionID: []byte{1}})
	c.Store("b.example", Entry{SessionID: []byte{2}})
	a, _ := c.Lookup("a.example")
	b, _ := c.Lookup("b.example")
	if a.SessionID[0] == b.SessionID[0] {
		t.Fatal("entries for different server names should not collide")
	}
}
