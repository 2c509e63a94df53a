package shader

import "fmt"

// SourceError reports a shader source that could not be read. It is the only
// failure that prevents a program from being created.
type SourceError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to open %s shader file %q: %v", e.Stage, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

type CompileError struct {
	Stage Stage
	Path  string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader %q failed to compile:\n%s", e.Stage, e.Path, e.Log)
}

type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program failed to link:\n%s", e.Log)
}
