package lispster

// callStack counts nested evaluations. It is shared by all the frames of a
// root environment, so callbacks invoked from primitives are counted as well.
type callStack struct {
	depth int
	max   int
}

func (s *callStack) push() error {
	if s.max > 0 && s.depth >= s.max {
		return ErrMaxDepth
	}
	s.depth++
	return nil
}

func (s *callStack) pop() {
	s.depth--
}

// Depth returns the current evaluation depth.
func (s *callStack) Depth() int {
	return s.depth
}
