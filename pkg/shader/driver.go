package shader

// Compiler is the part of the graphics driver that turns source text into
// compiled stage objects.
type Compiler interface {
	CreateStage(stage Stage) Handle
	SetSource(stage Handle, text string)
	Compile(stage Handle)
	CompileStatus(stage Handle) bool
	ShaderLogLength(stage Handle) int
	ShaderLog(stage Handle) string
	DeleteStage(stage Handle)
}

// Linker is the part of the graphics driver that combines compiled stages
// into a program.
type Linker interface {
	CreateProgram() Handle
	Attach(program, stage Handle)
	Link(program Handle)
	LinkStatus(program Handle) bool
	ProgramLogLength(program Handle) int
	ProgramLog(program Handle) string
	Detach(program, stage Handle)
	DeleteProgram(program Handle)
}

// Driver must only be used from the goroutine that owns the graphics context.
type Driver interface {
	Compiler
	Linker
}
