// SPDX-License-Identifier: MIT

// Package display runs named units of work, times them and renders the
// outcome. Durations go to the context logger; rendering is left to Fprint
// or to the caller's encoder.
package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algoshelf/internal/ctxlog"
)

// ErrNilRun is reported for a Demo without a Run function.
var ErrNilRun = errors.New("display: demo has no Run function")

// Demo is one named, timed unit of work.
type Demo struct {
	Name  string
	Input any // shown as-is; Run must not rely on it being untouched
	Size  int // number of input items, for the log line
	Run   func(ctx context.Context) (any, error)
}

// Report is the outcome of one Demo.
type Report struct {
	Name    string        `json:"name" yaml:"name"`
	Input   any           `json:"input,omitempty" yaml:"input,omitempty"`
	Result  any           `json:"result" yaml:"result"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// Of wraps fn(in) as a Demo.
func Of[In, Out any](name string, fn func(In) Out, in In, size int) Demo {
	return Demo{
		Name:  name,
		Input: in,
		Size:  size,
		Run: func(context.Context) (any, error) {
			return fn(in), nil
		},
	}
}

// Run executes d once and logs its duration at Info level.
func Run(ctx context.Context, d Demo) (Report, error) {
	rep := Report{Name: d.Name, Input: d.Input}
	if d.Run == nil {
		return rep, fmt.Errorf("%s: %w", d.Name, ErrNilRun)
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	start := time.Now()
	res, err := d.Run(ctx)
	rep.Elapsed = time.Since(start)
	rep.Result = res

	logger := ctxlog.FromContext(ctx)
	if err != nil {
		logger.Error("demo failed", "name", d.Name, "elapsed", rep.Elapsed, "err", err)
		return rep, fmt.Errorf("%s: %w", d.Name, err)
	}
	logger.Info("demo finished",
		"name", d.Name,
		"size", humanize.Comma(int64(d.Size)),
		"elapsed", rep.Elapsed,
	)

	return rep, nil
}

// RunAll runs demos with at most parallel in flight (unbounded when ≤ 0).
// Reports come back in the order of demos. The first failure cancels the
// demos that have not started yet and is returned; finished reports are
// kept either way.
func RunAll(ctx context.Context, parallel int, demos ...Demo) ([]Report, error) {
	reports := make([]Report, len(demos))
	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, d := range demos {
		g.Go(func() error {
			rep, err := Run(gctx, d)
			reports[i] = rep

			return err
		})
	}

	return reports, g.Wait()
}

// Fprint renders r as a framed text block.
func Fprint(w io.Writer, r Report) error {
	_, err := fmt.Fprintf(w,
		"******* %s *******\ninput:   %v\nresult:  %v\nelapsed: %s\n**** end of %s ****\n",
		r.Name, r.Input, r.Result, r.Elapsed, r.Name,
	)

	return err
}
