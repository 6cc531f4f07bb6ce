/*
Package reduce collects reduction idioms over slices.

Most loops which accumulate into an extra variable are folds. Fold and FoldRight
make the accumulator explicit, Reduce seeds it with the first element. FilterFold
and GroupBy do in a single pass what would otherwise be a chain of filters and
maps, each iterating over the input again.

Reductions with no sensible result for empty input return a maybe.Maybe.
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package reduce

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fncomb.reduce'.
func tracer() tracing.Trace {
	return tracing.Select("fncomb.reduce")
}
