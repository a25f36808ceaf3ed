package core

import (
	"path/filepath"
	"runtime"
)

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller returns a call site. skip counts like runtime.Caller: 0 is
// GetCaller itself, 1 its caller.
func GetCaller(skip int) CallerInfo {
	var pcs [1]uintptr
	// +1 skips runtime.Callers itself
	if runtime.Callers(skip+1, pcs[:]) == 0 {
		return CallerInfo{}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}
