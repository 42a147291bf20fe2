package filter

// FilterState is the session shared by every proxy field during one Replay.
// Slot values persist across passes; conditions and the slot index are rebuilt
// on every pass.
//
// A FilterState is owned by a single Replay call and must not be shared between
// goroutines.
type FilterState struct {
	slots      []bool
	index      int
	conditions []Condition
	pass       uint64
}

// consumeSlot advances to the next slot and returns its value, creating it as
// true if this is the first time the slot is reached.
func (s *FilterState) consumeSlot(pass uint64) bool {
	if pass != s.pass {
		panic("filter: proxy field used outside of the predicate pass it was bound to")
	}
	s.index++
	if s.index <= len(s.slots) {
		return s.slots[s.index-1]
	}
	s.slots = append(s.slots, true)
	return true
}

func (s *FilterState) record(c Condition) {
	s.conditions = append(s.conditions, c)
}

// flipLast negates the most recently appended slot. It reports false when
// there is no slot to flip.
func (s *FilterState) flipLast() bool {
	if len(s.slots) == 0 {
		return false
	}
	last := len(s.slots) - 1
	s.slots[last] = !s.slots[last]
	return true
}

// restart prepares the state for the next pass. Proxies bound to the previous
// pass become unusable.
func (s *FilterState) restart() {
	s.conditions = nil
	s.index = 0
	s.pass++
}

// Slots returns a copy of the recorded slot values.
func (s *FilterState) Slots() []bool {
	return append([]bool(nil), s.slots...)
}

// Conditions returns a copy of the conditions recorded by the current pass.
func (s *FilterState) Conditions() []Condition {
	return append([]Condition(nil), s.conditions...)
}
