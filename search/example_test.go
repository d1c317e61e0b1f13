// SPDX-License-Identifier: MIT

package search_test

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/search"
)

func ExampleBinary() {
	primes := []int{2, 3, 5, 7, 11, 13}
	fmt.Println(search.Binary(primes, 11), search.Binary(primes, 4))
	// Output: 4 -1
}

func ExampleOccurrences() {
	for _, c := range search.Occurrences([]string{"x", "y"}, []string{"y", "x", "y"}) {
		fmt.Println(c)
	}
	// Output:
	// x: 1 occ
	// y: 2 occ
}
