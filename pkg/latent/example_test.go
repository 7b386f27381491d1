package latent_test

import (
	"fmt"
	"math"

	"github.com/matzehuels/latent/pkg/latent"
)

func Example() {
	add := latent.Wrap("add", func(args []any, _ latent.Kwargs) (any, error) {
		return args[0].(int) + args[1].(int), nil
	})
	multiply := latent.Wrap("multiply", func(args []any, _ latent.Kwargs) (any, error) {
		return args[0].(int) * args[1].(int), nil
	})
	power := latent.Wrap("power", func(args []any, _ latent.Kwargs) (any, error) {
		return int(math.Pow(float64(args[0].(int)), float64(args[1].(int)))), nil
	})

	// Nothing executes yet: the graph is just deferred calls.
	mul := multiply.New(2, 3)
	result := add.New(mul, power.New(4, 5))

	v, _ := result.Compute()
	fmt.Println(v)

	// Mutating a dependency invalidates only the affected branch.
	mul.UpdateArgs(3, 3)
	v, _ = result.Compute()
	fmt.Println(v)
	// Output:
	// 1030
	// 1033
}

func ExampleNode_ClearCache() {
	calls := 0
	double := latent.Wrap("double", func(args []any, _ latent.Kwargs) (any, error) {
		calls++
		return args[0].(int) * 2, nil
	})

	n := double.New(21)
	v, _ := n.Compute()
	fmt.Println(v, calls)

	n.ClearCache(latent.ClearOptions{})
	v, _ = n.Compute()
	fmt.Println(v, calls)
	// Output:
	// 42 1
	// 42 2
}
