package main

import (
	"fmt"
	"log"
	"os"

	oid "github.com/ahrav/go-tensoroid"
)

func main() {
	fmt.Println("=== Tensor Object ID Example ===")
	fmt.Println()

	demonstrateParse()
	fmt.Println()

	demonstrateStore()
}

// demonstrateParse shows how Parse treats different inputs.
func demonstrateParse() {
	fmt.Println("--- Parse Examples ---")

	examples := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "SHA-1 of \"hello world\"", input: "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", valid: true},
		{name: "BLAKE3 of empty input", input: "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", valid: true},
		{name: "Invalid - too short", input: "abcdef123456"},
		{name: "Invalid - upper case", input: "2AAE6C35C94FCFB415DBE95F408B9CE91EE846ED"},
		{name: "Invalid - non-hex", input: "ghijkl1234567890abcdef1234567890abcdef12"},
	}

	for _, example := range examples {
		fmt.Printf("Testing: %s\n", example.name)
		fmt.Printf("  Input: %s\n", example.input)

		id, err := oid.Parse(example.input)
		switch {
		case example.valid && err != nil:
			fmt.Printf("  ❌ Expected success but got error: %v\n", err)
		case example.valid:
			fmt.Printf("  ✅ Parsed %s id\n", id.Algorithm())
			fmt.Printf("  Storage path: %s\n", oid.Path(id))
		case err != nil:
			fmt.Printf("  ✅ Correctly rejected: %v\n", err)
		default:
			fmt.Printf("  ❌ Expected error but parsing succeeded\n")
		}
		fmt.Println()
	}
}

// demonstrateStore hashes a few tensor buffers into an in-memory store and
// prints the sharded layout they would occupy on disk.
func demonstrateStore() {
	fmt.Println("--- Store Example ---")

	s, err := oid.NewStore(oid.WithCapacity(64))
	if err != nil {
		log.Fatal("Failed to create store:", err)
	}

	for _, tensor := range []string{"weights.0", "weights.1", "bias.0", "bias.1"} {
		id := s.Put([]byte(tensor))
		fmt.Printf("  %-10s -> ", tensor)
		if _, err := id.WriteTo(os.Stdout); err != nil {
			log.Fatal("Failed to write id:", err)
		}
		fmt.Println()
	}

	fmt.Println()
	for _, shard := range s.Shards() {
		for _, id := range s.List(shard) {
			fmt.Printf("  objects/%s\n", oid.Path(id))
		}
	}
}
