// Package cetz is the numerical kernel behind the CeTZ drawing tool.
//
// 🚀 What is the kernel?
//
//	A small, deterministic computation core the host calls across a binary
//	boundary with serialized requests:
//
//	  • Tidy-tree layout: van der Ploeg's linear-time algorithm for
//	    non-layered trees with arbitrary node sizes
//	  • Bézier geometry: cubic extrema and bounding boxes
//	  • Affine geometry: 4×4 matrix × vector transforms
//
// ✨ Why a separate kernel?
//
//   - Deterministic  — pure functions, bit-identical replies for identical requests
//   - Linear-time    — contour threads + delayed modifiers keep layout O(n)
//   - Cache-friendly — layout works on a contiguous arena, not a pointer web
//   - Self-contained — every request owns its state; nothing persists
//
// Everything is organized under three subpackages plus a host shim:
//
//	layout/          — arena, three-walk tidy-tree engine, input/output trees
//	geom/            — cubic extrema, AABB merge, Mat4 transforms
//	protocol/        — msgpack request decoding, dispatch, reply framing
//	cmd/cetz-kernel/ — framed stdin/stdout loop for the host process
//
// Dive into each package's doc.go for the algorithmic details; layout/ is
// where the hard engineering lives.
//
//	go get github.com/cetz-package/cetz
package cetz
