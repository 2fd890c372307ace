package oid_test

import (
	"fmt"
	"os"

	oid "github.com/ahrav/go-tensoroid"
)

func ExampleFromString() {
	id := oid.FromString("hello world")
	fmt.Println(id)
	// Output: 2aae6c35c94fcfb415dbe95f408b9ce91ee846ed
}

func ExamplePath() {
	id := oid.FromString("hello world")
	fmt.Println(oid.Shard(id))
	fmt.Println(oid.Path(id))
	// Output:
	// 2aae
	// 2aae/6c35c94fcfb415dbe95f408b9ce91ee846ed
}

func ExampleObjectID_WriteTo() {
	id := oid.FromBytes(nil)
	if _, err := id.WriteTo(os.Stdout); err != nil {
		fmt.Println(err)
	}
	fmt.Println()
	// Output: da39a3ee5e6b4b0d3255bfef95601890afd80709
}

func ExampleStore() {
	s, err := oid.NewStore(oid.WithCapacity(16))
	if err != nil {
		fmt.Println(err)
		return
	}
	id := s.Put([]byte("hello world"))
	data, ok := s.Get(id)
	if !ok {
		fmt.Println("not resident:", id)
		return
	}
	fmt.Println(s.Shards(), string(data))
	// Output: [2aae] hello world
}
