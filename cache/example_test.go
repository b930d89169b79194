package cache_test

import (
	"errors"
	"fmt"

	"github.com/IvanBrykalov/lru/cache"
)

func Example() {
	c, err := cache.New(cache.Options[int, string]{
		Capacity: 1,
		OnEvict: cache.ObserverFunc[int, string](func(k int, v string) {
			fmt.Printf("evicted %d=%q\n", k, v)
		}),
	})
	if err != nil {
		panic(err)
	}

	c.Put(10, "My String")
	c.Put(20, "test string")

	fmt.Println(c.Exists(10), c.Exists(20))

	if _, err := c.Get(10); errors.Is(err, cache.ErrKeyNotFound) {
		fmt.Println("10 is gone")
	}
	// Output:
	// evicted 10="My String"
	// false true
	// 10 is gone
}

func ExampleLRU_Keys() {
	c, _ := cache.New(cache.Options[string, int]{Capacity: 3})
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)
	_, _ = c.Get("a")

	fmt.Println(c.Keys())
	// Output: [a c b]
}
