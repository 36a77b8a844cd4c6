// Package protocol defines the operation names, wire records, and
// sentinel errors of the request/reply boundary.
package protocol

import (
	"errors"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cetz-package/cetz/geom"
	"github.com/cetz-package/cetz/layout"
)

// Operation names as the host sends them.
const (
	OpLayoutTree   = "layout_tree"
	OpCubicExtrema = "cubic_extrema"
	OpAABB         = "aabb"
	OpMulVec       = "mul4x4_vec3"
	OpMulVecs      = "mul4x4_vecs"
)

// Sentinel errors for dispatch.
var (
	// ErrUnknownOp indicates an operation name outside the dispatch table.
	ErrUnknownOp = errors.New("protocol: unknown operation")
)

// Reply is the frame returned for every request. OK distinguishes
// success from failure: on success Data holds the encoded result, on
// failure Err holds a human-readable message.
type Reply struct {
	OK   bool               `msgpack:"ok"`
	Data msgpack.RawMessage `msgpack:"data,omitempty"`
	Err  string             `msgpack:"error,omitempty"`
}

// layoutArgs is the argument record of layout_tree.
type layoutArgs struct {
	Tree             layout.InputTree `msgpack:"tree"`
	VerticalMargin   float64          `msgpack:"vertical_margin"`
	HorizontalMargin float64          `msgpack:"horizontal_margin"`
}

// cubicExtremaArgs is the argument record of cubic_extrema.
type cubicExtremaArgs struct {
	S  geom.Point `msgpack:"s"`
	E  geom.Point `msgpack:"e"`
	C1 geom.Point `msgpack:"c1"`
	C2 geom.Point `msgpack:"c2"`
}

// aabbArgs is the argument record of aabb. Init is optional; absent
// means seed from the first point.
type aabbArgs struct {
	Init   *geom.AABB   `msgpack:"init"`
	Points []geom.Point `msgpack:"pts"`
}

// mulVecArgs is the argument record of mul4x4_vec3.
type mulVecArgs struct {
	Mat geom.Mat4  `msgpack:"mat"`
	Vec geom.Point `msgpack:"vec"`
	W   float64    `msgpack:"w"`
}

// mulVecsArgs is the argument record of mul4x4_vecs.
type mulVecsArgs struct {
	Mat  geom.Mat4    `msgpack:"mat"`
	Vecs []geom.Point `msgpack:"vecs"`
}
