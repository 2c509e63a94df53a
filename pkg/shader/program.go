package shader

// Program owns a linked (or attempted) GPU program.
type Program struct {
	handle Handle
	linker Linker
	linked bool
	log    string
}

func (p *Program) Handle() Handle {
	if p == nil {
		return Invalid
	}
	return p.handle
}

func (p *Program) Valid() bool {
	return p.Handle() != Invalid
}

func (p *Program) Linked() bool {
	return p != nil && p.linked
}

func (p *Program) Log() string {
	if p == nil {
		return ""
	}
	return p.log
}

// Release deletes the program. Calls after the first are no-ops.
func (p *Program) Release() {
	if p == nil || p.handle == Invalid {
		return
	}
	p.linker.DeleteProgram(p.handle)
	p.handle = Invalid
	p.linked = false
}

// stageScope tracks stage handles created during a single Load so that every
// return path deletes them exactly once, in creation order.
type stageScope struct {
	compiler Compiler
	handles  []Handle
}

func (s *stageScope) acquire(stage Stage) Handle {
	h := s.compiler.CreateStage(stage)
	s.handles = append(s.handles, h)
	return h
}

func (s *stageScope) release() {
	for _, h := range s.handles {
		if h != Invalid {
			s.compiler.DeleteStage(h)
		}
	}
	s.handles = nil
}
