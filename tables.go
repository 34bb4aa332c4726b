package lz32

import "sync"

// balancedTables holds the single hash table used by the balanced engine.
// Each slot holds the most recent input position that hashed to it, or
// htbNoMatch if the slot has never been written.
type balancedTables struct {
	htb [1 << hashLogBalanced]uint32
}

// highTables holds the hash table and chain table used by the high-ratio
// engine. ctb maps a window-relative slot (position mod windowLimit) to the
// back-distance from that position to the previous position that hashed to
// the same htb bucket, chaining candidates together.
type highTables struct {
	htb [1 << hashLogHigh]uint32
	ctb [windowLimit]uint16
}

var balancedTablePool = sync.Pool{
	New: func() any { return &balancedTables{} },
}

var highTablePool = sync.Pool{
	New: func() any { return &highTables{} },
}

// acquireBalancedTables gets a balancedTables from the pool and resets its
// hash table to all-sentinel. Callers must release it on every exit path.
func acquireBalancedTables() *balancedTables {
	t := balancedTablePool.Get().(*balancedTables)
	fillUint32(t.htb[:], htbNoMatch)
	return t
}

func releaseBalancedTables(t *balancedTables) {
	balancedTablePool.Put(t)
}

// acquireHighTables is acquireBalancedTables for the high-ratio engine's
// pair of tables.
func acquireHighTables() *highTables {
	t := highTablePool.Get().(*highTables)
	fillUint32(t.htb[:], htbNoMatch)
	fillUint16(t.ctb[:], ctbNoMatch)
	return t
}

func releaseHighTables(t *highTables) {
	highTablePool.Put(t)
}
