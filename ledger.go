package polyclip

// Ledger holds the ordered step trace of one Clip call and a playback cursor. The cursor starts before the first step; Next advances it one step at a time and Reset rewinds it, so the same ledger drives both a one-shot replay and a manual step-by-step walkthrough. A Ledger must not be shared between goroutines without external synchronization.
type Ledger struct {
	steps  []ClipStep
	cursor int
}

// Len returns the number of recorded steps, which equals the number of processed clip edges.
func (l *Ledger) Len() int {
	return len(l.steps)
}

// Steps returns all recorded steps in order.
func (l *Ledger) Steps() []ClipStep {
	return l.steps
}

// StepAt returns the i'th step, or false when i is out of range. It does not move the cursor.
func (l *Ledger) StepAt(i int) (ClipStep, bool) {
	if i < 0 || len(l.steps) <= i {
		return ClipStep{}, false
	}
	return l.steps[i], true
}

// Next advances the cursor and returns the step it lands on, or false when playback is past the last step.
func (l *Ledger) Next() (ClipStep, bool) {
	if len(l.steps) <= l.cursor+1 {
		return ClipStep{}, false
	}
	l.cursor++
	return l.steps[l.cursor], true
}

// Reset rewinds the cursor to before the first step.
func (l *Ledger) Reset() {
	l.cursor = -1
}
