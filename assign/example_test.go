package assign_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kmnpairs/assign"
)

// ExampleNew builds the k=1, m=3, n=4 assignment.
func ExampleNew() {
	e, err := assign.New(1, 3, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(e.P())
	fmt.Println(e.RealizedPairs())
	fmt.Println(e.Validate())
	// Output:
	// 2
	// [(L_0, R_0) (L_1, R_1) (L_2, R_2) (L_0, R_3) (L_1, R_0) (L_2, R_1)]
	// <nil>
}

// ExampleEngine_AddForbidden shows the duplicate rejection.
func ExampleEngine_AddForbidden() {
	e, _ := assign.New(1, 3, 4)
	fmt.Println(e.AddForbidden(0, 1))
	fmt.Println(e.AddForbidden(0, 1))
	fmt.Println(len(e.Forbidden()))
	// Output:
	// <nil>
	// AddForbidden(L_0, R_1): assign: forbidden pair already present
	// 1
}

// ExampleEngine_BreakSkeleton removes one forbidden pair by switching.
func ExampleEngine_BreakSkeleton() {
	e, _ := assign.New(1, 3, 4)
	_ = e.AddForbidden(0, 0)
	res, err := e.BreakSkeleton()
	fmt.Println(res.Before, res.After, err)
	fmt.Println(e.Validate())
	// Output:
	// 1 0 <nil>
	// <nil>
}

// ExampleEngine_Feasible asks the flow model first.
func ExampleEngine_Feasible() {
	e, _ := assign.New(1, 3, 4)
	_ = e.AddForbidden(0, 0)
	_ = e.AddForbidden(0, 1)
	_ = e.AddForbidden(0, 2)
	ok, _ := e.Feasible(context.Background())
	fmt.Println(ok)
	// Output:
	// false
}
