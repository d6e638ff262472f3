package view

import (
	"context"
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmitrijs2005/rentadmin/internal/common"
)

// Phase is the lifecycle state of a screen's collection.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseErrored
)

// Config parameterizes a Controller for one entity family.
//
// List is the only required operation. Create/Update/Delete are nil for
// screens that do not offer the corresponding dialog (reports have neither;
// posts have delete only). SearchFields and StatusOf are nil when a screen
// has no text search or no status filter.
type Config[E Entity, D any] struct {
	List   func(ctx context.Context) ([]E, error)
	Create func(ctx context.Context, draft D) (E, error)
	Update func(ctx context.Context, id string, draft D) (E, error)
	Delete func(ctx context.Context, id string) error

	// NewDraft yields the create-dialog defaults; DraftOf snapshots an
	// entity for editing. Both are required when Create/Update are set.
	NewDraft func() D
	DraftOf  func(E) D

	SearchFields func(E) []string
	StatusOf     func(E) string

	CreatePolicy CreatePolicy
	PageSize     int   // defaults to DefaultPageSize
	PageSizes    []int // defaults to PageSizes
}

// Controller drives one management screen: it owns the fetched collection,
// the filter criteria, the page window and the active dialog session.
//
// The controller follows the dashboard's single-threaded event model: all
// methods are called from the one goroutine driving the UI, so there is no
// internal locking. Close marks the controller dead; a Load completing
// after Close discards its result instead of mutating torn-down state.
type Controller[E Entity, D any] struct {
	cfg Config[E, D]

	phase   Phase
	items   []E
	loadErr error

	criteria Criteria
	window   PageWindow
	active   ActiveSession[D]

	// gen counts collection replacements and in-place mutations; it keys
	// the filter memo so stale results are never served.
	gen  uint64
	memo *lru.Cache[filterKey, []E]

	closed bool
}

type filterKey struct {
	gen    uint64
	query  string
	status string
}

const filterMemoSize = 8

// NewController validates cfg and returns a controller in the Loading
// phase; the caller is expected to Load immediately (fetch-on-mount).
func NewController[E Entity, D any](cfg Config[E, D]) (*Controller[E, D], error) {
	if cfg.List == nil {
		return nil, errors.New("view: Config.List is required")
	}
	if cfg.Create != nil && cfg.NewDraft == nil {
		return nil, errors.New("view: Config.NewDraft is required when Create is set")
	}
	if cfg.Update != nil && cfg.DraftOf == nil {
		return nil, errors.New("view: Config.DraftOf is required when Update is set")
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
	if len(cfg.PageSizes) == 0 {
		cfg.PageSizes = PageSizes
	}
	if !slices.Contains(cfg.PageSizes, cfg.PageSize) {
		return nil, fmt.Errorf("view: page size %d not in %v", cfg.PageSize, cfg.PageSizes)
	}

	memo, err := lru.New[filterKey, []E](filterMemoSize)
	if err != nil {
		return nil, err
	}

	return &Controller[E, D]{
		cfg:      cfg,
		phase:    PhaseLoading,
		criteria: Criteria{Status: StatusAll},
		window:   PageWindow{Page: 0, Size: cfg.PageSize},
		memo:     memo,
	}, nil
}

func (c *Controller[E, D]) Phase() Phase       { return c.phase }
func (c *Controller[E, D]) Err() error         { return c.loadErr }
func (c *Controller[E, D]) Items() []E         { return c.items }
func (c *Controller[E, D]) Criteria() Criteria { return c.criteria }
func (c *Controller[E, D]) Window() PageWindow { return c.window }

// Load fetches the collection, replacing it wholesale. On failure the
// collection is emptied and the error retained for display; there is no
// automatic retry.
func (c *Controller[E, D]) Load(ctx context.Context) error {
	c.phase = PhaseLoading
	c.loadErr = nil

	items, err := c.cfg.List(ctx)
	if c.closed {
		return nil
	}
	if err != nil {
		c.phase = PhaseErrored
		c.items = nil
		c.loadErr = err
		c.gen++
		return err
	}

	c.items = items
	c.gen++
	c.phase = PhaseReady
	return nil
}

// Close marks the owning view as torn down. An in-flight Load observes the
// flag and drops its result.
func (c *Controller[E, D]) Close() { c.closed = true }

// SetQuery updates the text filter and rewinds to the first page, since the
// filtered collection may shrink below the current window.
func (c *Controller[E, D]) SetQuery(q string) {
	if c.criteria.Query == q {
		return
	}
	c.criteria.Query = q
	c.window.Page = 0
}

// SetStatus updates the status-equality filter ("all" disables it) and
// rewinds to the first page.
func (c *Controller[E, D]) SetStatus(status string) error {
	if c.cfg.StatusOf == nil && status != "" && status != StatusAll {
		return common.ErrUnsupported
	}
	if c.criteria.Status == status {
		return nil
	}
	c.criteria.Status = status
	c.window.Page = 0
	return nil
}

// SetPage moves the window. Out-of-range pages are allowed and simply show
// an empty slice.
func (c *Controller[E, D]) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	c.window.Page = page
}

// SetPageSize switches rows-per-page and always rewinds to the first page.
func (c *Controller[E, D]) SetPageSize(size int) error {
	if !slices.Contains(c.cfg.PageSizes, size) {
		return fmt.Errorf("page size %d not in %v", size, c.cfg.PageSizes)
	}
	c.window.Size = size
	c.window.Page = 0
	return nil
}

// Filtered returns the collection narrowed by the current criteria,
// memoized per (collection generation, criteria).
func (c *Controller[E, D]) Filtered() []E {
	if c.criteria.Empty() {
		return c.items
	}

	key := filterKey{gen: c.gen, query: c.criteria.Query, status: c.criteria.Status}
	if cached, ok := c.memo.Get(key); ok {
		return cached
	}

	filtered := Filter(c.items, c.criteria, c.cfg.SearchFields, c.cfg.StatusOf)
	c.memo.Add(key, filtered)
	return filtered
}

// Visible returns the slice of the filtered collection inside the current
// page window.
func (c *Controller[E, D]) Visible() []E {
	return Paginate(c.Filtered(), c.window)
}

// TotalPages is the page count for the current filter and page size.
func (c *Controller[E, D]) TotalPages() int {
	return TotalPages(len(c.Filtered()), c.window.Size)
}

// Session exposes the active dialog for rendering.
func (c *Controller[E, D]) Session() ActiveSession[D] { return c.active }

// BeginCreate opens the create dialog with entity-specific defaults.
func (c *Controller[E, D]) BeginCreate() error {
	if c.cfg.Create == nil {
		return common.ErrUnsupported
	}
	if c.active.Kind() != SessionNone {
		return ErrSessionOpen
	}
	c.active = editing("", c.cfg.NewDraft())
	return nil
}

// BeginEdit opens the edit dialog pre-populated with a snapshot of the
// target entity. Edits touch the draft only; nothing is sent until Submit.
func (c *Controller[E, D]) BeginEdit(id string) error {
	if c.cfg.Update == nil {
		return common.ErrUnsupported
	}
	if c.active.Kind() != SessionNone {
		return ErrSessionOpen
	}
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("record %s: %w", id, common.ErrNotFound)
	}
	c.active = editing(id, c.cfg.DraftOf(c.items[i]))
	return nil
}

// Draft returns the open form's draft, if any.
func (c *Controller[E, D]) Draft() (D, bool) {
	if c.active.Kind() != SessionEditing {
		var zero D
		return zero, false
	}
	return c.active.Draft(), true
}

// SetDraft replaces the open form's draft.
func (c *Controller[E, D]) SetDraft(d D) error {
	if c.active.Kind() != SessionEditing {
		return ErrNoSession
	}
	c.active = editing(c.active.TargetID(), d)
	return nil
}

// Submit dispatches create or update depending on whether the draft carries
// an identifier, then closes the dialog. On failure the dialog stays open
// with the draft intact so the operator can retry.
func (c *Controller[E, D]) Submit(ctx context.Context) error {
	if c.active.Kind() != SessionEditing {
		return ErrNoSession
	}

	draft := c.active.Draft()
	id := c.active.TargetID()

	if id == "" {
		created, err := c.cfg.Create(ctx, draft)
		if err != nil {
			return err
		}
		switch c.cfg.CreatePolicy {
		case RefetchAfterCreate:
			c.active = noSession[D]()
			return c.Load(ctx)
		default:
			c.items = append(c.items, created)
			c.gen++
		}
		c.active = noSession[D]()
		return nil
	}

	updated, err := c.cfg.Update(ctx, id, draft)
	if err != nil {
		return err
	}
	if i := c.indexOf(id); i >= 0 {
		c.items[i] = updated
		c.gen++
	}
	c.active = noSession[D]()
	return nil
}

// BeginDelete opens the confirmation gate for id. Nothing is sent to the
// backend until ConfirmDelete.
func (c *Controller[E, D]) BeginDelete(id string) error {
	if c.cfg.Delete == nil {
		return common.ErrUnsupported
	}
	if c.active.Kind() != SessionNone {
		return ErrSessionOpen
	}
	c.active = confirmingDelete[D](id)
	return nil
}

// DeleteTarget returns the pending delete target, if a confirmation is open.
func (c *Controller[E, D]) DeleteTarget() (string, bool) {
	if c.active.Kind() != SessionConfirmingDelete {
		return "", false
	}
	return c.active.TargetID(), true
}

// ConfirmDelete executes the deferred deletion against the id captured when
// the confirmation opened, regardless of how the collection has changed in
// the meantime. The entry is removed in place; no refetch is needed since
// deletion has no denormalization concerns. On failure the confirmation
// stays open.
func (c *Controller[E, D]) ConfirmDelete(ctx context.Context) error {
	if c.active.Kind() != SessionConfirmingDelete {
		return ErrNoSession
	}

	id := c.active.TargetID()
	if err := c.cfg.Delete(ctx, id); err != nil {
		return err
	}

	if i := c.indexOf(id); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
		c.gen++
	}
	c.active = noSession[D]()
	return nil
}

// Cancel discards the active dialog with no side effects.
func (c *Controller[E, D]) Cancel() {
	c.active = noSession[D]()
}

// Mutate applies fn to the collection entry with the given id, in place.
// Used for status-only transitions (report processing/resolving, post
// moderation) that must not trigger a full refetch. Reports whether the id
// was found.
func (c *Controller[E, D]) Mutate(id string, fn func(E) E) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items[i] = fn(c.items[i])
	c.gen++
	return true
}

func (c *Controller[E, D]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(e E) bool { return e.EntityID() == id })
}
