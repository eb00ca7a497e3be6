package polls

// SelectionTable holds the viewer's tentative, not yet submitted choice for
// each poll in a feed. Slots are keyed by poll id so a slot can never drift
// away from the record it belongs to.
type SelectionTable struct {
	slots map[ID]ID
}

func NewSelectionTable() *SelectionTable {
	return &SelectionTable{slots: make(map[ID]ID)}
}

// add opens an empty slot for pollID. An existing slot keeps its choice.
func (t *SelectionTable) add(pollID ID) {
	if _, ok := t.slots[pollID]; !ok {
		t.slots[pollID] = ""
	}
}

func (t *SelectionTable) set(pollID, choiceID ID) {
	t.slots[pollID] = choiceID
}

func (t *SelectionTable) get(pollID ID) ID {
	return t.slots[pollID]
}

func (t *SelectionTable) reset() {
	t.slots = make(map[ID]ID)
}

func (t *SelectionTable) Len() int {
	return len(t.slots)
}
