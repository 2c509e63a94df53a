package shader

import "fmt"

type Status int

const (
	Linked Status = iota
	CompileFailed
	LinkFailed
	SourceUnreadable
)

func (s Status) String() string {
	switch s {
	case Linked:
		return "linked"
	case CompileFailed:
		return "compile failed"
	case LinkFailed:
		return "link failed"
	case SourceUnreadable:
		return "source unreadable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

type DiagnosticKind int

const (
	CompileDiagnostic DiagnosticKind = iota
	LinkDiagnostic
)

// Diagnostic is one nonempty compiler or linker log. Failed is false for
// logs that came with a success status, i.e. warnings.
type Diagnostic struct {
	Kind   DiagnosticKind
	Stage  Stage // only meaningful for CompileDiagnostic
	Path   string
	Failed bool
	Log    string
}

func (d Diagnostic) String() string {
	if d.Kind == LinkDiagnostic {
		return "Shader program linking error:\n" + d.Log
	}
	switch d.Stage {
	case Vertex:
		return "Vertex shader error:\n" + d.Log
	default:
		return "Fragment shader error:\n" + d.Log
	}
}

// Result is the outcome of one Load call.
//
// Program is nil only for SourceUnreadable, or in strict mode for
// CompileFailed and LinkFailed. Otherwise the caller owns Program and must
// call Release on it, even when Status is not Linked.
type Result struct {
	Program     *Program
	Status      Status
	Err         error
	Diagnostics []Diagnostic
}

// Handle returns the program handle, or Invalid when no program was produced.
func (r *Result) Handle() Handle {
	if r == nil {
		return Invalid
	}
	return r.Program.Handle()
}

// Warnings reports whether any log was emitted without an accompanying
// failure.
func (r *Result) Warnings() bool {
	if r == nil {
		return false
	}
	for _, d := range r.Diagnostics {
		if !d.Failed {
			return true
		}
	}
	return false
}
