package view

// SessionKind tags the single dialog slot of a screen.
type SessionKind int

const (
	SessionNone SessionKind = iota
	SessionEditing
	SessionConfirmingDelete
)

// ActiveSession is the one dialog a screen may have open: nothing, a
// create/edit form carrying a draft, or a delete confirmation carrying the
// pending target id. Holding all three cases in one value makes "only one
// dialog open at a time" structural rather than convention.
//
// For an edit session the target id names the entity being edited; an empty
// id means the draft is a new record. For a delete session the target id is
// captured when the confirmation opens and stays stable even if the
// collection is refetched while the dialog is up.
type ActiveSession[D any] struct {
	kind     SessionKind
	targetID string
	draft    D
}

func (s ActiveSession[D]) Kind() SessionKind { return s.kind }
func (s ActiveSession[D]) TargetID() string  { return s.targetID }
func (s ActiveSession[D]) Draft() D          { return s.draft }

func noSession[D any]() ActiveSession[D] {
	return ActiveSession[D]{}
}

func editing[D any](targetID string, draft D) ActiveSession[D] {
	return ActiveSession[D]{kind: SessionEditing, targetID: targetID, draft: draft}
}

func confirmingDelete[D any](targetID string) ActiveSession[D] {
	return ActiveSession[D]{kind: SessionConfirmingDelete, targetID: targetID}
}
