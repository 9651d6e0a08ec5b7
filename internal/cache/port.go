package cache

// Cache is the port the fetch services read and write through.
// Implementations must be safe for concurrent use and never fail;
// a value that cannot be kept is simply absent on the next Get.
type Cache[V any] interface {
	// Get returns the value stored under key and marks it recently used.
	Get(key string) (V, bool)

	// Put stores value under key, replacing any previous value.
	Put(key string, value V)

	Clear()

	Len() int
}
