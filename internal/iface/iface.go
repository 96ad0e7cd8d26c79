package iface

// MapI is the capability set shared by every hashmap under test.
// Scan order is implementation defined and differs between backends;
// callers must never rely on it.
type MapI interface {
	// Set assigns val to key, inserting the key if absent.
	Set(key, val int64)
	// Get reports the value stored under key, if any.
	Get(key int64) (int64, bool)
	// Incr adds one to the counter stored under key, inserting the
	// key with count 1 if absent, and returns the new count.
	Incr(key int64) int64
	// Remove deletes key, reporting whether it was present.
	Remove(key int64) bool
	Len() int
	Scan(fn func(key, val int64))
}
