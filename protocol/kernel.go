// Package protocol - the dispatch table and reply framing.
package protocol

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/cetz-package/cetz/geom"
	"github.com/cetz-package/cetz/layout"
)

// handler decodes one operation's argument record, invokes the primitive,
// and returns the value to encode into the reply.
type handler func(payload []byte) (any, error)

// Kernel dispatches binary requests to the numerical primitives. The
// operation table is fixed at construction; a Kernel holds no per-request
// state and requests run strictly one after another.
type Kernel struct {
	ops map[string]handler
	log zerolog.Logger
}

// New returns a Kernel with a disabled logger.
func New() *Kernel {
	return NewWithLogger(zerolog.Nop())
}

// NewWithLogger returns a Kernel that logs one debug event per request,
// tagged with a fresh ksuid so the host can correlate frames with log
// lines.
func NewWithLogger(log zerolog.Logger) *Kernel {
	return &Kernel{
		log: log,
		ops: map[string]handler{
			OpLayoutTree:   handleLayoutTree,
			OpCubicExtrema: handleCubicExtrema,
			OpAABB:         handleAABB,
			OpMulVec:       handleMulVec,
			OpMulVecs:      handleMulVecs,
		},
	}
}

// Dispatch runs one request and always returns an encoded reply frame:
// failures of any category — unknown operation, decode error, validation
// error, layout-internal failure — are reported inside the frame, never
// as a Go error.
func (k *Kernel) Dispatch(op string, payload []byte) []byte {
	id := ksuid.New().String()

	h, ok := k.ops[op]
	if !ok {
		k.log.Debug().Str("request", id).Str("op", op).Msg("unknown operation")
		return encodeReply(Reply{Err: ErrUnknownOp.Error()})
	}

	res, err := h(payload)
	if err != nil {
		k.log.Debug().Str("request", id).Str("op", op).Err(err).Msg("request failed")
		return encodeReply(Reply{Err: err.Error()})
	}

	data, err := msgpack.Marshal(res)
	if err != nil {
		k.log.Debug().Str("request", id).Str("op", op).Err(err).Msg("reply encoding failed")
		return encodeReply(Reply{Err: err.Error()})
	}

	k.log.Debug().
		Str("request", id).
		Str("op", op).
		Int("request_bytes", len(payload)).
		Int("reply_bytes", len(data)).
		Msg("request served")

	return encodeReply(Reply{OK: true, Data: data})
}

// encodeReply marshals a reply frame. The frame is three scalar fields;
// its encoding cannot fail on conforming inputs, so a failure here is a
// programming error worth stopping on.
func encodeReply(r Reply) []byte {
	b, err := msgpack.Marshal(&r)
	if err != nil {
		panic(fmt.Sprintf("protocol: reply encoding: %v", err))
	}
	return b
}

// DecodeReply parses a reply frame. Hosts and tests use it to read
// Dispatch output.
func DecodeReply(frame []byte) (Reply, error) {
	var r Reply
	if err := msgpack.Unmarshal(frame, &r); err != nil {
		return Reply{}, err
	}
	return r, nil
}

// handleLayoutTree decodes layoutArgs and runs the tidy-tree engine.
func handleLayoutTree(payload []byte) (any, error) {
	var args layoutArgs
	if err := msgpack.Unmarshal(payload, &args); err != nil {
		return nil, err
	}
	out, err := layout.Layout(args.Tree, layout.Options{
		VerticalMargin:   args.VerticalMargin,
		HorizontalMargin: args.HorizontalMargin,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// handleCubicExtrema decodes cubicExtremaArgs and computes the interior
// extrema. The result is always a list, possibly empty.
func handleCubicExtrema(payload []byte) (any, error) {
	var args cubicExtremaArgs
	if err := msgpack.Unmarshal(payload, &args); err != nil {
		return nil, err
	}
	pts := geom.CubicExtrema(args.S, args.E, args.C1, args.C2)
	if pts == nil {
		pts = []geom.Point{}
	}
	return pts, nil
}

// handleAABB decodes aabbArgs and merges the box.
func handleAABB(payload []byte) (any, error) {
	var args aabbArgs
	if err := msgpack.Unmarshal(payload, &args); err != nil {
		return nil, err
	}
	box, err := geom.Merge(args.Init, args.Points)
	if err != nil {
		return nil, err
	}
	return box, nil
}

// handleMulVec decodes mulVecArgs and transforms one vector.
func handleMulVec(payload []byte) (any, error) {
	var args mulVecArgs
	if err := msgpack.Unmarshal(payload, &args); err != nil {
		return nil, err
	}
	return geom.MulVec(args.Mat, args.Vec, args.W), nil
}

// handleMulVecs decodes mulVecsArgs and transforms the batch.
func handleMulVecs(payload []byte) (any, error) {
	var args mulVecsArgs
	if err := msgpack.Unmarshal(payload, &args); err != nil {
		return nil, err
	}
	out := geom.MulVecs(args.Mat, args.Vecs)
	if out == nil {
		out = []geom.Point{}
	}
	return out, nil
}
