package powgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/powgo"
	"github.com/hupe1980/powgo/power"
)

// Example_search demonstrates the full triplet-combination search.
func Example_search() {
	engine, err := powgo.New(
		powgo.WithTripletCount(12), // Minimum triplet pool size
		powgo.WithLevels(1),        // Partition prefix length
	)
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Search(context.Background(), 3)
	if err != nil {
		log.Fatal(err)
	}

	valid := true
	for _, p := range result.Pairs {
		valid = valid && power.IsPowerOfTwo(p.Sum())
	}

	fmt.Printf("%d numbers, all pair sums are powers of two: %t\n", len(result.Numbers), valid)
	// Output: 3 numbers, all pair sums are powers of two: true
}

// Example_simple demonstrates the simplified odd-ladder search.
func Example_simple() {
	engine, err := powgo.New()
	if err != nil {
		log.Fatal(err)
	}

	result, err := engine.Simple(context.Background(), 4)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("found %d numbers with %d power pairs\n", len(result.Numbers), result.PairCount)
	// Output: found 4 numbers with 4 power pairs
}
