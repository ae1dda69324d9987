package depends_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gps/depends"
)

func ExampleDepends_BuildOrder() {
	d := depends.New()
	_ = d.AddRule(depends.Rule{Target: "app", Prereqs: []string{"lib.o", "main.o"}, Commands: []string{"ld -o app lib.o main.o"}})
	_ = d.AddRule(depends.Rule{Target: "lib.o", Prereqs: []string{"lib.c"}})
	_ = d.AddRule(depends.Rule{Target: "main.o", Prereqs: []string{"main.c", "lib.h"}})

	order, err := d.BuildOrder("app")
	fmt.Println(order, err)

	_ = d.AddRule(depends.Rule{Target: "lib.c", Prereqs: []string{"app"}})
	_, err = d.BuildOrder("app")
	fmt.Println(errors.Is(err, depends.ErrCycle))
	// Output:
	// [lib.c lib.o main.c lib.h main.o app] <nil>
	// true
}
