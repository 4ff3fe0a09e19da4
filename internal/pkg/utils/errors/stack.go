package errors

import (
	"fmt"
	"runtime"
)

const stackDepth = 32

// StackTrace is a list of program counters.
type StackTrace []uintptr

// callers skips runtime.Callers, callers and the constructor itself.
func callers() StackTrace {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}

// Frames returns formatted "function file:line" lines.
func (s StackTrace) Frames() []string {
	if len(s) == 0 {
		return nil
	}

	var out []string
	frames := runtime.CallersFrames(s)
	for {
		frame, more := frames.Next()
		out = append(out, fmt.Sprintf("%s %s:%d", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return out
}
