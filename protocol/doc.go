// Package protocol is the transport glue between the host and the
// kernel's numerical primitives.
//
// 🚀 What is protocol?
//
//	The host talks to the kernel with binary-encoded, self-describing
//	request records. Each exposed operation:
//
//	  1. decodes a typed argument record from a MessagePack blob
//	  2. invokes the underlying layout or geometry function
//	  3. encodes the result into a reply frame
//
// The five operations:
//
//	layout_tree   — tidy-tree layout with vertical/horizontal margins
//	cubic_extrema — interior extrema of a cubic Bézier
//	aabb          — axis-aligned bounding box merge
//	mul4x4_vec3   — single 4×4 matrix × vector transform
//	mul4x4_vecs   — batch transform with w = 1
//
// ✨ Failure model:
//
//   - Decode errors surface verbatim in the reply's error string
//   - Validation errors carry the numeric packages' sentinel text
//   - Layout-internal failures arrive as descriptive strings, never panics
//   - Dispatch itself never fails: every outcome is a reply frame, and a
//     frame's ok flag distinguishes success from failure
//
// ⚙️ Usage:
//
//	import "github.com/cetz-package/cetz/protocol"
//
//	k := protocol.New()
//	frame := k.Dispatch(protocol.OpLayoutTree, payload)
//	reply, err := protocol.DecodeReply(frame)
//
// Requests are served strictly sequentially and share no state; every
// request builds, uses, and drops its own working memory.
package protocol
