package shader

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vertexSrc = `#version 330 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec2 uv;
out vec2 UV;
void main() {}
`
	fragmentSrc = `#version 330 core
in vec2 UV;
out vec4 fragmentColour;
void main() {}
`
	brokenVertexSrc = `#version 330 core
out vec2 UV;
#error syntax error, unexpected IDENTIFIER
void main() {}
`
	mismatchedFragmentSrc = `#version 330 core
in vec3 Normal;
out vec4 fragmentColour;
void main() {}
`
	warningFragmentSrc = `#version 330 core
#warning implicit cast from int to float
in vec2 UV;
out vec4 fragmentColour;
void main() {}
`
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"vertex.glsl":            {Data: []byte(vertexSrc)},
		"fragment.glsl":          {Data: []byte(fragmentSrc)},
		"broken_vertex.glsl":     {Data: []byte(brokenVertexSrc)},
		"mismatch_fragment.glsl": {Data: []byte(mismatchedFragmentSrc)},
		"warning_fragment.glsl":  {Data: []byte(warningFragmentSrc)},
	}
}

func newTestLoader(t *testing.T) (*Loader, *fakeDriver, *bytes.Buffer) {
	t.Helper()
	drv := newFakeDriver()
	var buf bytes.Buffer
	l := NewLoader(drv)
	l.Reader = FSReader{FS: testFS()}
	l.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l, drv, &buf
}

func TestLoad_CleanPair(t *testing.T) {
	l, drv, logs := newTestLoader(t)

	res := l.Load("vertex.glsl", "fragment.glsl")

	require.NotNil(t, res.Program)
	assert.NotEqual(t, Invalid, res.Handle())
	assert.Equal(t, Linked, res.Status)
	assert.NoError(t, res.Err)
	assert.Empty(t, res.Diagnostics)
	assert.False(t, res.Warnings())
	assert.True(t, res.Program.Linked())
	assert.NotContains(t, logs.String(), "level=ERROR")

	assert.Equal(t, 0, drv.liveStages())
	assert.Equal(t, 1, drv.livePrograms())

	res.Program.Release()
	assert.Equal(t, 0, drv.livePrograms())
}

func TestLoad_CallOrder(t *testing.T) {
	l, drv, _ := newTestLoader(t)

	res := l.Load("vertex.glsl", "fragment.glsl")
	defer res.Program.Release()

	assert.Equal(t, []string{
		"CreateStage vertex",
		"CreateStage fragment",
		"SetSource vertex",
		"Compile vertex",
		"SetSource fragment",
		"Compile fragment",
		"CreateProgram",
		"Attach vertex",
		"Attach fragment",
		"Link",
		"Detach vertex",
		"Detach fragment",
		"DeleteStage vertex",
		"DeleteStage fragment",
	}, drv.calls)
}

func TestLoad_SourceUnreadable(t *testing.T) {
	tests := []struct {
		name     string
		vertex   string
		fragment string
		stage    Stage
		path     string
	}{
		{name: "vertex missing", vertex: "missing.glsl", fragment: "fragment.glsl", stage: Vertex, path: "missing.glsl"},
		{name: "fragment missing", vertex: "vertex.glsl", fragment: "missing.glsl", stage: Fragment, path: "missing.glsl"},
		{name: "both missing", vertex: "nope.glsl", fragment: "missing.glsl", stage: Vertex, path: "nope.glsl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, drv, logs := newTestLoader(t)

			res := l.Load(tt.vertex, tt.fragment)

			assert.Nil(t, res.Program)
			assert.Equal(t, Invalid, res.Handle())
			assert.Equal(t, SourceUnreadable, res.Status)

			var srcErr *SourceError
			require.True(t, errors.As(res.Err, &srcErr))
			assert.Equal(t, tt.stage, srcErr.Stage)
			assert.Equal(t, tt.path, srcErr.Path)
			assert.Contains(t, logs.String(), tt.path)
			assert.Contains(t, logs.String(), "level=ERROR")

			assert.Equal(t, 0, drv.liveStages())
			assert.Equal(t, 0, drv.livePrograms())
			assert.NotContains(t, drv.calls, "SetSource vertex")
			assert.NotContains(t, drv.calls, "CreateProgram")
		})
	}
}

func TestLoad_VertexCompileErrorIsNotFatal(t *testing.T) {
	l, drv, logs := newTestLoader(t)

	res := l.Load("broken_vertex.glsl", "fragment.glsl")
	defer res.Program.Release()

	assert.NotEqual(t, Invalid, res.Handle())
	assert.Equal(t, CompileFailed, res.Status)
	assert.False(t, res.Program.Linked())

	var compileErr *CompileError
	require.True(t, errors.As(res.Err, &compileErr))
	assert.Equal(t, Vertex, compileErr.Stage)
	assert.Contains(t, compileErr.Log, "syntax error")

	require.NotEmpty(t, res.Diagnostics)
	first := res.Diagnostics[0]
	assert.Equal(t, CompileDiagnostic, first.Kind)
	assert.Equal(t, Vertex, first.Stage)
	assert.True(t, first.Failed)
	assert.Contains(t, first.String(), "Vertex shader error:")

	assert.Contains(t, drv.calls, "Compile fragment")
	assert.Contains(t, drv.calls, "Link")
	assert.Contains(t, logs.String(), "vertex shader error")

	assert.Equal(t, 0, drv.liveStages())
	assert.Equal(t, 1, drv.livePrograms())
}

func TestLoad_LinkErrorIsNotFatal(t *testing.T) {
	l, drv, logs := newTestLoader(t)

	res := l.Load("vertex.glsl", "mismatch_fragment.glsl")
	defer res.Program.Release()

	assert.NotEqual(t, Invalid, res.Handle())
	assert.Equal(t, LinkFailed, res.Status)

	var linkErr *LinkError
	require.True(t, errors.As(res.Err, &linkErr))
	assert.Contains(t, linkErr.Log, "Normal")
	assert.Contains(t, res.Program.Log(), "Normal")

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, LinkDiagnostic, res.Diagnostics[0].Kind)
	assert.Contains(t, logs.String(), "shader program linking error")

	assert.Equal(t, 0, drv.liveStages())
	assert.Equal(t, 1, drv.livePrograms())
}

func TestLoad_WarningsAreSurfaced(t *testing.T) {
	l, _, logs := newTestLoader(t)

	res := l.Load("vertex.glsl", "warning_fragment.glsl")
	defer res.Program.Release()

	assert.Equal(t, Linked, res.Status)
	assert.NoError(t, res.Err)
	assert.True(t, res.Warnings())
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, Fragment, res.Diagnostics[0].Stage)
	assert.False(t, res.Diagnostics[0].Failed)
	assert.Contains(t, logs.String(), "implicit cast")
	assert.Contains(t, logs.String(), "level=ERROR")
}

func TestLoad_IndependentCalls(t *testing.T) {
	l, drv, _ := newTestLoader(t)

	a := l.Load("vertex.glsl", "fragment.glsl")
	b := l.Load("vertex.glsl", "fragment.glsl")

	assert.NotEqual(t, a.Handle(), b.Handle())
	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, 0, drv.liveStages())
	assert.Equal(t, 2, drv.livePrograms())

	a.Program.Release()
	assert.Equal(t, 1, drv.livePrograms())
	b.Program.Release()
	assert.Equal(t, 0, drv.livePrograms())
}

func TestLoad_Strict(t *testing.T) {
	tests := []struct {
		name     string
		vertex   string
		fragment string
		status   Status
	}{
		{name: "compile failure", vertex: "broken_vertex.glsl", fragment: "fragment.glsl", status: CompileFailed},
		{name: "link failure", vertex: "vertex.glsl", fragment: "mismatch_fragment.glsl", status: LinkFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, drv, _ := newTestLoader(t)
			l.Strict = true

			res := l.Load(tt.vertex, tt.fragment)

			assert.Nil(t, res.Program)
			assert.Equal(t, Invalid, res.Handle())
			assert.Equal(t, tt.status, res.Status)
			assert.Error(t, res.Err)
			assert.NotEmpty(t, res.Diagnostics)
			assert.Equal(t, 0, drv.liveStages())
			assert.Equal(t, 0, drv.livePrograms())
		})
	}

	t.Run("clean pair", func(t *testing.T) {
		l, drv, _ := newTestLoader(t)
		l.Strict = true

		res := l.Load("vertex.glsl", "fragment.glsl")
		require.NotNil(t, res.Program)
		res.Program.Release()
		assert.Equal(t, 0, drv.livePrograms())
	})
}

func TestProgram_ReleaseOnce(t *testing.T) {
	l, drv, _ := newTestLoader(t)

	res := l.Load("vertex.glsl", "fragment.glsl")
	res.Program.Release()
	res.Program.Release()

	assert.False(t, res.Program.Valid())
	assert.Equal(t, 1, countCalls(drv.calls, "DeleteProgram"))

	var nilProgram *Program
	assert.NotPanics(t, nilProgram.Release)
}

func TestLoadShaders_Files(t *testing.T) {
	dir := t.TempDir()
	vertexPath := filepath.Join(dir, "vertexShader.glsl")
	fragmentPath := filepath.Join(dir, "fragmentShader.glsl")
	require.NoError(t, os.WriteFile(vertexPath, []byte(vertexSrc), 0o644))
	require.NoError(t, os.WriteFile(fragmentPath, []byte(fragmentSrc), 0o644))

	drv := newFakeDriver()

	h := LoadShaders(drv, vertexPath, fragmentPath)
	assert.NotEqual(t, Invalid, h)
	assert.Equal(t, 1, drv.livePrograms())
	drv.DeleteProgram(h)

	assert.Equal(t, Invalid, LoadShaders(drv, filepath.Join(dir, "missing.glsl"), fragmentPath))
	assert.Equal(t, 0, drv.liveStages())
	assert.Equal(t, 0, drv.livePrograms())
}

func countCalls(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}
