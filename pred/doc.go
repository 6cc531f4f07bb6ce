/*
Package pred builds named predicate expressions.

A predicate built with fncomb.Every and fncomb.Some is opaque: it is just a
function. An Expr additionally remembers how it was put together, so it can be
printed and its evaluation for a given value can be explained node by node.

	retired := pred.Any("retired",
		pred.All("retired male", pred.Leaf("male", isMale), pred.Leaf("age ≥ 65", over65)),
		pred.All("retired female", pred.Leaf("female", isFemale), pred.Leaf("age ≥ 60", over60)),
	)
	fmt.Println(retired.Tree())

Evaluation is delegated to the fncomb combinators, therefore short-circuit rules
are identical to those of Every and Some.
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pred

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fncomb.pred'.
func tracer() tracing.Trace {
	return tracing.Select("fncomb.pred")
}
