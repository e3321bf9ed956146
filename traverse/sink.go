package traverse

// Sink receives the last accumulator published by a traversal. It is exported
// and written through a non-inlinable function, which keeps the folded loads
// observable to the compiler.
var Sink int32

// publish stores v into Sink.
//
//go:noinline
func publish(v int32) {
	Sink = v
}
