// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"fmt"
	"io"
	"os"
)

// LogLevel controls the granularity of the diagnostic output.
type LogLevel int

const (
	// LogNoop prints nothing; equivalent to Problem.Quiet.
	LogNoop LogLevel = -1
	// LogLast prints only the final status line.
	LogLast LogLevel = 0
	// LogEval prints one line per iteration: iter, r_pri, eps_pri,
	// r_dual, eps_dual, objective.
	LogEval LogLevel = 1
	// LogTrace prints the same lines as LogEval; no per-stage timing
	// is reported.
	LogTrace LogLevel = 99
)

// Logger handles the per-iteration diagnostic output. The writer must be
// safe to use from a single goroutine driving one Solve call; Solve
// never writes to it concurrently.
type Logger struct {
	Level LogLevel
	Out   io.Writer
}

func defaultLogger(quiet bool) *Logger {
	level := LogEval
	if quiet {
		level = LogNoop
	}
	return &Logger{Level: level, Out: os.Stdout}
}

func (l *Logger) enabled(level LogLevel) bool {
	return l != nil && l.Level >= level
}

func (l *Logger) printf(format string, a ...any) {
	if l == nil || l.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(l.Out, format, a...)
}

func (l *Logger) header() {
	if !l.enabled(LogEval) {
		return
	}
	l.printf("%6s %12s %12s %12s %12s %12s\n", "iter", "r_pri", "eps_pri", "r_dual", "eps_dual", "objective")
}

func (l *Logger) iteration(iter int, rPri, epsPri, rDual, epsDual, objective float64) {
	if !l.enabled(LogEval) {
		return
	}
	l.printf("%6d %12.4e %12.4e %12.4e %12.4e %12.4e\n", iter, rPri, epsPri, rDual, epsDual, objective)
}

func (l *Logger) final(status Status, iter int) {
	if !l.enabled(LogLast) {
		return
	}
	l.printf("status: %-16s iterations: %d\n", status, iter)
}
