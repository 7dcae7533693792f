// SPDX-License-Identifier: MIT

// Package det: functional options for Compute.
//
// Design goals:
//   - Deterministic behavior: options never change the arithmetic or the
//     order of the trace, only what is reported while it is produced.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package det

import (
	"time"

	"go.uber.org/zap"
)

// DefaultPace is the pause between top-level columns; zero disables pacing.
const DefaultPace time.Duration = 0

const panicPaceNegative = "det: WithPace: pace must be >= 0"

// StepObserver receives the column just processed by the top-level
// expansion and a copy of the trace accumulated so far (col+1 steps).
// It is the integration point for progress displays.
type StepObserver func(col int, partial []ExpansionStep)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	observer StepObserver
	pace     time.Duration
	sleep    func(time.Duration)
	logger   *zap.Logger
	label    string
}

func defaultOptions() options {
	return options{
		pace:   DefaultPace,
		sleep:  time.Sleep,
		logger: zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithObserver registers fn to be called once per top-level column, in
// column order, after the column's step has been appended. A nil fn
// disables observation.
func WithObserver(fn StepObserver) Option {
	return func(o *options) { o.observer = fn }
}

// WithPace inserts a pause of d after each top-level column, letting a
// presentation layer show progress. The column loop stays sequential.
// Panics if d is negative.
func WithPace(d time.Duration) Option {
	if d < 0 {
		panic(panicPaceNegative)
	}

	return func(o *options) { o.pace = d }
}

// WithLogger routes per-step debug logs to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLabel names the top-level matrix in the rendered derivation.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}
