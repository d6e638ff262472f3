// Package view implements the list/CRUD view-state core shared by every
// management screen of the admin CLI.
//
// Each screen instantiates one Controller parameterized with its entity
// type, its draft type, and a small Config (endpoints, searchable fields,
// status field, create policy). The controller owns the fetched collection,
// the filter criteria, the page window and the single active dialog
// session; filtering and pagination are pure functions layered on top.
package view

import "errors"

// Entity is one record of a managed resource. Identifiers are assigned by
// the backend and are immutable after creation.
type Entity interface {
	EntityID() string
}

// CreatePolicy decides how the collection absorbs a successful create.
type CreatePolicy int

const (
	// AppendCreated appends the entity returned by the create call. Used
	// when the response carries the full record.
	AppendCreated CreatePolicy = iota

	// RefetchAfterCreate reloads the whole collection. Used when the list
	// representation contains server-side derived fields (e.g. a
	// notification's resolved receiver username) that the create response
	// does not include.
	RefetchAfterCreate
)

var (
	// ErrNoSession is returned when a submit or confirm arrives without an
	// open dialog.
	ErrNoSession = errors.New("no open dialog")

	// ErrSessionOpen is returned when a dialog is opened while another one
	// is active. Screens support one dialog at a time.
	ErrSessionOpen = errors.New("another dialog is open")
)
