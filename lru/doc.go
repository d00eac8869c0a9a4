/*
Package lru implements a fixed-capacity Least Recently Used (LRU) cache.

Entries live in an index-addressed arena linked in recency order, and a map
points each key at its slot. Get, Put and eviction are O(1). Slots freed by
eviction or removal are reused, so the arena never grows beyond the capacity.

[Cache] is not safe for concurrent access. Wrap it with [Synced] or hold a lock
around every call when it is shared between goroutines.

# Example Usage

## Basic

	type User struct {
		ID   int
		Name string
	}

	func basicExample() {
		userCache := lru.New[int, User](2)

		userCache.Put(1, User{ID: 1, Name: "John Doe"})
		userCache.Put(2, User{ID: 2, Name: "Jane Doe"})

		// Get marks user 1 as most recently used.
		user, ok := userCache.Get(1)
		if !ok {
			// Handle miss.
		}

		fmt.Printf("Got user: %+v\n", user) // Got user: {ID:1 Name:John Doe}

		// The cache is full, so user 2 (least recently used) is evicted.
		userCache.Put(3, User{ID: 3, Name: "Jim Doe"})

		_, ok = userCache.Get(2) // ok == false

		fmt.Println(userCache.Len(), userCache.EvictionCount()) // 2 1
	}

## Eviction callback

	userCache := lru.New(100,
		lru.WithOnEvict(func(id int, u User) {
			log.Printf("evicted user %d", id)
		}),
		lru.WithLogger[int, User](logger),
	)

New panics when the capacity is not positive.
*/
package lru
