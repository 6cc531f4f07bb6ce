/*
Package users holds a static list of mock user records together with predicates
and accessors over them.

The records are embedded into the package. They serve as input for demonstrating
reductions and predicate combinators.
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package users

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fncomb.users'.
func tracer() tracing.Trace {
	return tracing.Select("fncomb.users")
}
