// Command cetz-kernel serves the kernel's operations to a host process
// over length-prefixed frames on stdin/stdout.
//
// Each request is two frames — operation name, then argument payload —
// and produces exactly one reply frame. Frames are a big-endian uint32
// byte count followed by that many bytes. Requests run strictly one
// after another; EOF between requests is a clean shutdown.
package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/cetz-package/cetz/protocol"
)

func main() {
	app := &cli.App{
		Name:  "cetz-kernel",
		Usage: "serve layout and geometry requests over framed stdin/stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zerolog level: trace, debug, info, warn, error",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "human-readable console logging on stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cetz-kernel:", err)
		os.Exit(1)
	}
}

// run builds the logger and kernel, then serves until EOF.
func run(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("parse log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if c.Bool("pretty") {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	log := zerolog.New(out).Level(level).With().Timestamp().Logger()

	kernel := protocol.NewWithLogger(log)
	return serve(kernel, bufio.NewReader(os.Stdin), bufio.NewWriter(os.Stdout))
}

// serve is the request loop: read op frame + payload frame, dispatch,
// write the reply frame, flush so the host never blocks on a buffered
// reply.
func serve(kernel *protocol.Kernel, r io.Reader, w *bufio.Writer) error {
	for {
		op, payload, err := readRequest(r)
		if errors.Is(err, io.EOF) {
			return w.Flush()
		}
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}

		if err = writeFrame(w, kernel.Dispatch(op, payload)); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
		if err = w.Flush(); err != nil {
			return fmt.Errorf("flush reply: %w", err)
		}
	}
}

// readRequest reads one op-name frame and one payload frame. EOF before
// the op frame is a clean end of stream; EOF inside a request is a
// protocol violation.
func readRequest(r io.Reader) (string, []byte, error) {
	op, err := readFrame(r)
	if err != nil {
		return "", nil, err
	}

	payload, err := readFrame(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", nil, err
	}
	return string(op), payload, nil
}

// readFrame reads a uint32 big-endian length and that many bytes. EOF
// before the length is io.EOF; EOF after it is io.ErrUnexpectedEOF.
func readFrame(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

// writeFrame writes a uint32 big-endian length and the frame bytes.
func writeFrame(w io.Writer, frame []byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(frame))); err != nil {
		return err
	}
	_, err := w.Write(frame)
	return err
}
