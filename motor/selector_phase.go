package motor

// PhaseSelector permutes logical drive channels onto physical output
// wires according to a PhasePattern. The pattern packs one source index
// per output, two bits each, so remapping is four array reads per tick.
type PhaseSelector struct {
	idxs [4]int
}

// NewPhaseSelector builds a selector for the given wiring order.
func NewPhaseSelector(pattern PhasePattern) *PhaseSelector {
	s := &PhaseSelector{}
	s.SetPattern(pattern)
	return s
}

// SetPattern changes the wiring order.
func (s *PhaseSelector) SetPattern(pattern PhasePattern) {
	for i := 0; i < 4; i++ {
		s.idxs[i] = int(pattern>>(2*i)) & 0b11
	}
}

// Tick routes the logical channel values onto the physical outputs.
func (s *PhaseSelector) Tick(channels [4]int16) [4]int16 {
	return [4]int16{
		channels[s.idxs[0]],
		channels[s.idxs[1]],
		channels[s.idxs[2]],
		channels[s.idxs[3]],
	}
}
