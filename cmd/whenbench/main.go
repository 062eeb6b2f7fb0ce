// Command whenbench exercises the when package's combinators against a
// running GoroutineEnvironment and prints each result's fulfillment value or
// rejection reason as it settles. It has
// no business logic of its own — it only wires the library up and reports
// what comes out.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gideonairex/when"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	env := when.NewGoroutineEnvironment(when.WithLogger(when.NewZerologLogger(logger)))
	defer env.Shutdown()

	f := when.New(env)

	var wg sync.WaitGroup
	report := func(name string, p *when.Promise) {
		wg.Add(1)
		p.Done(func(v any) {
			fmt.Printf("%-16s fulfilled: %v\n", name, v)
			wg.Done()
		}, func(r any) {
			fmt.Printf("%-16s rejected:  %v\n", name, r)
			wg.Done()
		})
	}

	report("all", f.All([]any{f.Of(1), f.Of(2), f.Of(3)}))
	report("any", f.Any([]any{f.Reject("a"), f.Reject("b"), f.Of(42)}))

	slow := f.Promise(func(resolve, reject, notify func(any)) {
		env.SetTimer(func() { resolve("slow") }, 20*time.Millisecond)
	})
	report("race", f.Race([]any{slow, f.Of("fast")}))

	report("unfold", f.Unfold(
		func(seed any) (any, any) { n := seed.(int); return n, n + 1 },
		func(seed any) any { return seed.(int) >= 5 },
		func(item any) any { fmt.Printf("unfold item: %v\n", item); return nil },
		0,
	))

	wg.Wait()
}
