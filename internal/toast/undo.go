package toast

// UndoStack holds dismissed records, most recent first.
type UndoStack struct {
	items []Record
	limit int // 0 = unbounded
}

// NewUndoStack creates a stack keeping at most limit records (0 = no cap).
func NewUndoStack(limit int) *UndoStack {
	return &UndoStack{limit: max(limit, 0)}
}

// Push puts r on top. Beyond the cap the oldest record is dropped.
func (s *UndoStack) Push(r Record) {
	s.items = append([]Record{r}, s.items...)
	if s.limit > 0 && len(s.items) > s.limit {
		s.items = s.items[:s.limit]
	}
}

// Pop removes and returns the most recently pushed record.
func (s *UndoStack) Pop() (Record, bool) {
	if len(s.items) == 0 {
		return Record{}, false
	}
	r := s.items[0]
	s.items = s.items[1:]
	return r, true
}

// Len returns the number of records on the stack.
func (s *UndoStack) Len() int {
	return len(s.items)
}

// Items returns a copy of the stack, most recent first.
func (s *UndoStack) Items() []Record {
	return append([]Record(nil), s.items...)
}
