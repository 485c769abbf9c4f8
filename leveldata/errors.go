package leveldata

import (
	"fmt"

	"github.com/automoto/notmarioland/gamemath"
)

// LoadError reports a malformed level, levelset or theme file.
type LoadError struct {
	Path string
	Line int // 0 when the problem is not tied to a line
	Msg  string
	Err  error
}

func (e *LoadError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", loc, e.Msg)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(path string, line int, format string, args ...any) *LoadError {
	return &LoadError{Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// GraphError reports a screen link that cannot be traversed: a missing
// exit anchor or an exit that does not lead back. Side is NoDirection for
// door links.
type GraphError struct {
	From, To int
	Side     gamemath.Direction
	Msg      string
}

func (e *GraphError) Error() string {
	if e.Side == gamemath.NoDirection {
		return fmt.Sprintf("level %d door to level %d: %s", e.From, e.To, e.Msg)
	}
	return fmt.Sprintf("level %d %s exit to level %d: %s", e.From, e.Side, e.To, e.Msg)
}
