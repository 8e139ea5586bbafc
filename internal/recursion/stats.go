package recursion

// Stats counts the work done by one top-level call.
//
// All methods are nil-safe, so the plain (non-Stats) entry points pass a nil
// *Stats and pay only a nil check per frame.
type Stats struct {
	Calls    int64 `json:"calls"`     // function invocations, including the top-level one
	MaxDepth int64 `json:"max_depth"` // deepest simultaneous frame count
	Mults    int64 `json:"mults"`     // integer multiplications performed

	depth int64
}

func (s *Stats) enter() {
	if s == nil {
		return
	}
	s.Calls++
	s.depth++
	if s.depth > s.MaxDepth {
		s.MaxDepth = s.depth
	}
}

func (s *Stats) leave() {
	if s == nil {
		return
	}
	s.depth--
}

func (s *Stats) mul(k int64) {
	if s == nil {
		return
	}
	s.Mults += k
}
