package exact_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/monotone/exact"
)

// ExampleBinomial counts the ways to choose 5 draft picks out of 30
// candidates. The result is exact no matter how large it grows.
func ExampleBinomial() {
	c, err := exact.Binomial(30, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output: 142506
}

// ExampleBinomial_zeroExtension shows that choosing more items than
// exist yields zero rather than an error.
func ExampleBinomial_zeroExtension() {
	c, err := exact.Binomial(2, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output: 0
}

// ExampleQuoExact divides two big integers that are known to divide
// evenly and reports when they do not.
func ExampleQuoExact() {
	q, err := exact.QuoExact(big.NewInt(5040), big.NewInt(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(q)

	_, err = exact.QuoExact(big.NewInt(10), big.NewInt(4))
	fmt.Println(err)
	// Output:
	// 720
	// exact: division is not exact
}
