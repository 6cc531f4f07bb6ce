/*
Command reducedemo walks through reduction and composition idioms over the mock
users and numbers of package users.

Each section prints the result of the naive approach next to the idiomatic one.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/npillmayer/fncomb"
	"github.com/npillmayer/fncomb/pred"
	"github.com/npillmayer/fncomb/reduce"
	"github.com/npillmayer/fncomb/users"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fncomb.demo'.
func tracer() tracing.Trace {
	return tracing.Select("fncomb.demo")
}

func main() {
	if err := run(os.Stdout, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "reducedemo: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, now time.Time) error {
	us := users.Sample()
	if len(us) == 0 {
		return errors.New("no sample users")
	}
	tracer().Infof("running demo on %d users", len(us))
	numbers := users.Numbers()

	section(w, "Using Reduce instead of an extra variable")
	result := 0
	for _, n := range numbers {
		result = users.Sum2(result, n)
	}
	fmt.Fprintln(w, "all values sum, without reduce:", result)
	fmt.Fprintln(w, "all values sum, with reduce:   ", reduce.Reduce(numbers, users.Sum2).WithDefault(0))

	section(w, "Using FilterFold to reduce the number of iterations")
	fmt.Fprintln(w, "filtered sum, 2 iterations:", reduce.Sum(reduce.Filter(numbers, users.IsMoreThan5000)))
	fmt.Fprintln(w, "filtered sum, 1 iteration: ", reduce.FilterFold(numbers, users.IsMoreThan5000, 0, users.Sum2))

	section(w, "Splitting users in a single pass")
	retiredMales := reduce.Map(reduce.Filter(reduce.Filter(us, users.IsMale), users.IsRetiredMale), users.FullName)
	retiredFemales := reduce.Map(reduce.Filter(reduce.Filter(us, users.IsFemale), users.IsRetiredFemale), users.FullName)
	fmt.Fprintln(w, "retired males:  ", len(retiredMales))
	fmt.Fprintln(w, "retired females:", len(retiredFemales))
	byGender := users.RetiredNamesByGender(us)
	fmt.Fprintln(w, "retired males, single pass:  ", len(byGender[users.Male]))
	fmt.Fprintln(w, "retired females, single pass:", len(byGender[users.Female]))

	section(w, "Function composition")
	ages := reduce.Map(us, users.AgeAt(now))
	fmt.Fprintf(w, "average age: %.1f\n", reduce.Mean(ages).WithDefault(0))

	section(w, "Beyond reduce")
	isMaleAndRetired := fncomb.Every(users.IsMale, users.IsRetiredMale)
	isFemaleAndRetired := fncomb.Every(users.IsFemale, users.IsRetiredFemale)
	isRetiredUser := fncomb.Some(isMaleAndRetired, isFemaleAndRetired)
	fmt.Fprintln(w, "retired users, using composition:", reduce.Count(us, isRetiredUser))
	fmt.Fprintf(w, "why %s counts as retired:\n%s", users.FullName(us[0]), pred.Explain(users.RetiredExpr(), us[0]))
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}
