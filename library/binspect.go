// Package binspect resolves a file path to its canonical absolute form,
// reads the whole file into memory, and writes a debug rendering of both
// the path and the bytes. It is a single fail-fast pipeline: the first
// step that fails ends the run, and the error says which step it was and
// which input it choked on.
package binspect

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

// Config contains the information required to set up a Dumper
type Config struct {
	// Output is where the resolved path and the file contents get
	// written on a successful run
	Output io.Writer
}

// Valid tests the config to ensure it's valid. If it's not valid, an
// error is returned.
func (c Config) Valid() error {
	if c.Output == nil {
		return fmt.Errorf("output can't be nil")
	}
	return nil
}

// Dumper runs the collect -> resolve -> load -> report pipeline. It
// holds no state between runs.
type Dumper struct {
	out io.Writer
}

// NewDumper validates the config and builds a Dumper from it
func NewDumper(conf Config) (*Dumper, error) {
	if err := conf.Valid(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Dumper{out: conf.Output}, nil
}

// Run takes the positional arguments from the command line and runs the
// pipeline to completion. Nothing is written to the output unless every
// step succeeds; any step's error comes back unmodified so the caller
// can turn it into an exit status.
func (d *Dumper) Run(args []string) error {
	target, err := Target(args)
	if err != nil {
		return err
	}
	zap.L().Debug("target collected", zap.String("target", target))

	resolved, err := Resolve(target)
	if err != nil {
		return err
	}

	data, err := Load(resolved)
	if err != nil {
		return err
	}

	return d.report(resolved, data)
}

// report writes the quoted resolved path on its own line, then a spew
// dump of the bytes
func (d *Dumper) report(resolved string, data []byte) error {
	if _, err := fmt.Fprintf(d.out, "%q\n", resolved); err != nil {
		return fmt.Errorf("unable to write resolved path: %w", err)
	}

	spew.Fdump(d.out, data)
	return nil
}
