package shader

import (
	"errors"
	"log/slog"
)

// Loader compiles and links a vertex/fragment source pair into a program.
//
// Compile and link failures are logged and, unless Strict is set, the
// program handle is still handed back to the caller. Only an unreadable
// source file stops the pipeline early.
type Loader struct {
	Driver Driver
	Reader SourceReader
	Logger *slog.Logger
	Strict bool
}

func NewLoader(drv Driver) *Loader {
	return &Loader{Driver: drv, Reader: FileReader{}}
}

// LoadShaders compiles and links the two files with a default Loader and
// returns the program handle, or Invalid if either file could not be read.
// The caller releases the handle with drv.DeleteProgram.
func LoadShaders(drv Driver, vertexPath, fragmentPath string) Handle {
	return NewLoader(drv).Load(vertexPath, fragmentPath).Handle()
}

type unit struct {
	stage    Stage
	handle   Handle
	path     string
	compiled bool
	log      string
}

func (l *Loader) Load(vertexPath, fragmentPath string) *Result {
	log := l.logger()

	stages := stageScope{compiler: l.Driver}
	defer stages.release()

	vs := &unit{stage: Vertex, handle: stages.acquire(Vertex), path: vertexPath}
	fs := &unit{stage: Fragment, handle: stages.acquire(Fragment), path: fragmentPath}

	vertexSource, err := l.read(vs)
	if err != nil {
		return &Result{Status: SourceUnreadable, Err: err}
	}
	fragmentSource, err := l.read(fs)
	if err != nil {
		return &Result{Status: SourceUnreadable, Err: err}
	}

	res := &Result{Status: Linked}

	log.Info("compiling vertex shader", "path", vertexPath)
	l.compile(vs, vertexSource, res)
	log.Info("compiling fragment shader", "path", fragmentPath)
	l.compile(fs, fragmentSource, res)

	log.Info("linking shader program")
	prg := &Program{handle: l.Driver.CreateProgram(), linker: l.Driver}
	l.Driver.Attach(prg.handle, vs.handle)
	l.Driver.Attach(prg.handle, fs.handle)
	l.Driver.Link(prg.handle)
	prg.linked = l.Driver.LinkStatus(prg.handle)
	if n := l.Driver.ProgramLogLength(prg.handle); n > 0 {
		prg.log = l.Driver.ProgramLog(prg.handle)
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:   LinkDiagnostic,
			Failed: !prg.linked,
			Log:    prg.log,
		})
		log.Error("shader program linking error", "log", prg.log)
	}

	l.Driver.Detach(prg.handle, vs.handle)
	l.Driver.Detach(prg.handle, fs.handle)
	stages.release()

	var compileErrs []error
	for _, u := range []*unit{vs, fs} {
		if !u.compiled {
			compileErrs = append(compileErrs, &CompileError{Stage: u.stage, Path: u.path, Log: u.log})
		}
	}
	switch {
	case len(compileErrs) > 0:
		res.Status = CompileFailed
		res.Err = errors.Join(compileErrs...)
	case !prg.linked:
		res.Status = LinkFailed
		res.Err = &LinkError{Log: prg.log}
	}

	if l.Strict && res.Status != Linked {
		log.Warn("strict mode: discarding shader program", "status", res.Status)
		prg.Release()
		return res
	}
	res.Program = prg
	return res
}

func (l *Loader) read(u *unit) (string, error) {
	reader := l.Reader
	if reader == nil {
		reader = FileReader{}
	}
	text, err := reader.ReadSource(u.path)
	if err != nil {
		err = &SourceError{Stage: u.stage, Path: u.path, Err: err}
		l.logger().Error("failed to open shader file", "stage", u.stage, "path", u.path, "err", err)
		return "", err
	}
	return text, nil
}

// compile never aborts the pipeline; a nonempty log is surfaced even when
// the driver reports success.
func (l *Loader) compile(u *unit, text string, res *Result) {
	l.Driver.SetSource(u.handle, text)
	l.Driver.Compile(u.handle)
	u.compiled = l.Driver.CompileStatus(u.handle)
	if n := l.Driver.ShaderLogLength(u.handle); n > 0 {
		u.log = l.Driver.ShaderLog(u.handle)
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind:   CompileDiagnostic,
			Stage:  u.stage,
			Path:   u.path,
			Failed: !u.compiled,
			Log:    u.log,
		})
		l.logger().Error(u.stage.String()+" shader error", "path", u.path, "log", u.log)
	}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}
