// SPDX-License-Identifier: MIT

package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/algoshelf/sequence"
)

func ExampleLCS() {
	s, n := sequence.LCS("AGGTAB", "GXTXAYB")
	fmt.Printf("%s (%d)\n", s, n)
	// Output: GTAB (4)
}

func ExampleDivergenceIndex() {
	fmt.Println(sequence.DivergenceIndex("prefix", "prefab"))
	fmt.Println(sequence.DivergenceIndex("go", "gopher"))
	fmt.Println(sequence.DivergenceIndex("go", "go"))
	// Output:
	// 4
	// 2
	// -1
}
