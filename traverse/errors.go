package traverse

import "errors"

// ErrUnknownOrder indicates an Order value outside RowMajorOrder/ColMajorOrder.
var ErrUnknownOrder = errors.New("traverse: unknown order")
