// Package cache provides the sharded LRU cache used to memoize shaped runs.
//
// Keys are spread over 16 shards by a caller-supplied hash so concurrent
// layouts rarely contend on the same lock. Each shard evicts its least
// recently used entry once it reaches capacity.
//
//	c := cache.NewSharded[string, []int](256, cache.StringHasher)
//	v, err := c.GetOrCompute("key", func() ([]int, error) { return compute() })
//
// Sharded is safe for concurrent use and must not be copied after creation.
package cache
