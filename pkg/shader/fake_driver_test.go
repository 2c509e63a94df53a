package shader

import (
	"fmt"
	"strings"
)

// fakeDriver records every call and keeps count of live stage and program
// objects. Compile and link outcomes are derived from the source text:
//
//	"#error <msg>"   compile fails with <msg> in the log
//	"#warning <msg>" compile succeeds with <msg> in the log
//	"out <name>"     (vertex) / "in <name>" (fragment): every fragment
//	                 input must have a matching vertex output to link
type fakeDriver struct {
	next     Handle
	stages   map[Handle]*fakeStage
	programs map[Handle]*fakeProgram
	calls    []string
}

type fakeStage struct {
	stage    Stage
	source   string
	compiled bool
	log      string
}

type fakeProgram struct {
	attached []Handle
	linked   bool
	log      string
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		stages:   make(map[Handle]*fakeStage),
		programs: make(map[Handle]*fakeProgram),
	}
}

func (d *fakeDriver) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDriver) liveStages() int { return len(d.stages) }
func (d *fakeDriver) livePrograms() int { return len(d.programs) }

func (d *fakeDriver) CreateStage(stage Stage) Handle {
	d.next++
	d.stages[d.next] = &fakeStage{stage: stage}
	d.record("CreateStage %s", stage)
	return d.next
}

func (d *fakeDriver) SetSource(h Handle, text string) {
	d.stages[h].source = text
	d.record("SetSource %s", d.stages[h].stage)
}

func (d *fakeDriver) Compile(h Handle) {
	s := d.stages[h]
	s.compiled = true
	var logs []string
	for _, line := range strings.Split(s.source, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "#error"):
			s.compiled = false
			logs = append(logs, "ERROR: "+strings.TrimSpace(strings.TrimPrefix(line, "#error")))
		case strings.HasPrefix(line, "#warning"):
			logs = append(logs, "WARNING: "+strings.TrimSpace(strings.TrimPrefix(line, "#warning")))
		}
	}
	s.log = strings.Join(logs, "\n")
	d.record("Compile %s", s.stage)
}

func (d *fakeDriver) CompileStatus(h Handle) bool { return d.stages[h].compiled }
func (d *fakeDriver) ShaderLogLength(h Handle) int {
	if d.stages[h].log == "" {
		return 0
	}
	return len(d.stages[h].log) + 1
}
func (d *fakeDriver) ShaderLog(h Handle) string { return d.stages[h].log }

func (d *fakeDriver) DeleteStage(h Handle) {
	d.record("DeleteStage %s", d.stages[h].stage)
	delete(d.stages, h)
}

func (d *fakeDriver) CreateProgram() Handle {
	d.next++
	d.programs[d.next] = &fakeProgram{}
	d.record("CreateProgram")
	return d.next
}

func (d *fakeDriver) Attach(p, s Handle) {
	d.programs[p].attached = append(d.programs[p].attached, s)
	d.record("Attach %s", d.stages[s].stage)
}

func (d *fakeDriver) Link(p Handle) {
	prg := d.programs[p]
	d.record("Link")
	outs := make(map[string]bool)
	var ins []string
	for _, h := range prg.attached {
		s := d.stages[h]
		if !s.compiled {
			prg.linked = false
			prg.log = "ERROR: one or more attached shaders not successfully compiled"
			return
		}
		for _, line := range strings.Split(s.source, "\n") {
			f := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(f) != 3 {
				continue
			}
			switch {
			case s.stage == Vertex && f[0] == "out":
				outs[f[2]] = true
			case s.stage == Fragment && f[0] == "in":
				ins = append(ins, f[2])
			}
		}
	}
	prg.linked = true
	for _, in := range ins {
		if !outs[in] {
			prg.linked = false
			prg.log += fmt.Sprintf("ERROR: input %s not written by vertex shader\n", in)
		}
	}
}

func (d *fakeDriver) LinkStatus(p Handle) bool { return d.programs[p].linked }
func (d *fakeDriver) ProgramLogLength(p Handle) int {
	if d.programs[p].log == "" {
		return 0
	}
	return len(d.programs[p].log) + 1
}
func (d *fakeDriver) ProgramLog(p Handle) string { return d.programs[p].log }

func (d *fakeDriver) Detach(p, s Handle) {
	prg := d.programs[p]
	for i, h := range prg.attached {
		if h == s {
			prg.attached = append(prg.attached[:i], prg.attached[i+1:]...)
			break
		}
	}
	d.record("Detach %s", d.stages[s].stage)
}

func (d *fakeDriver) DeleteProgram(p Handle) {
	delete(d.programs, p)
	d.record("DeleteProgram")
}
