// Package layout holds the per-user presentation settings: theme and
// sidebar size. Settings live in an observable store, survive restarts
// through a pluggable storage backend, and every change is mirrored to
// document attributes so the rendered pages pick them up.
package layout

import (
	"context"
	"encoding/json"

	"github.com/HasanBocek/KTUTennisCRM/internal/store"
	"github.com/HasanBocek/KTUTennisCRM/pkg/enums"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

const (
	themeAttribute   = "data-bs-theme"
	sidebarAttribute = "data-sidebar-size"
	themeTag         = "html"
	sidebarTag       = "body"
)

// Layout is the persisted settings document.
type Layout struct {
	Theme           enums.Theme       `json:"theme"`
	LeftSideBarSize enums.SidebarSize `json:"leftSideBarSize"`
}

// Default returns the settings applied before a user ever changes
// anything.
func Default() Layout {
	return Layout{
		Theme:           enums.ThemeLight,
		LeftSideBarSize: enums.SidebarCollapsed,
	}
}

// Storage persists one layout document per user.
type Storage interface {
	Load(ctx context.Context, userID string) (Layout, bool, error)
	Save(ctx context.Context, userID string, layout Layout) error
}

// AttributeApplier mirrors a setting onto a document attribute. The
// web layer implements it over the base template's data attributes.
type AttributeApplier interface {
	SetAttribute(tag, attribute, value string)
}

// Store is the observable layout state for one user. Writes go
// through to storage and the attribute applier; storage failures are
// logged and swallowed so a dead backend never blocks a theme switch.
type Store struct {
	userID  string
	state   *store.Store[Layout]
	storage Storage
	applier AttributeApplier
	logg    *logger.Logger
}

// NewStore builds the layout store seeded with defaults. Call Init to
// hydrate it from storage.
func NewStore(userID string, storage Storage, applier AttributeApplier, logg *logger.Logger) *Store {
	return &Store{
		userID:  userID,
		state:   store.New(Default()),
		storage: storage,
		applier: applier,
		logg:    logg,
	}
}

// Init loads the persisted settings, falling back to defaults when
// nothing is stored or the document no longer parses, then re-applies
// both attributes.
func (s *Store) Init(ctx context.Context) {
	current := Default()
	if s.storage != nil {
		loaded, ok, err := s.storage.Load(ctx, s.userID)
		switch {
		case err != nil:
			if s.logg != nil {
				s.logg.Error(ctx, "loading layout settings failed, using defaults", err)
			}
		case ok:
			current = sanitize(loaded)
		}
	}
	s.state.Set(current)
	s.applyAttributes(current)
}

// Get returns the current settings.
func (s *Store) Get() Layout {
	return s.state.Get()
}

// Subscribe registers a listener invoked immediately and on every
// change. Returns an unsubscribe func.
func (s *Store) Subscribe(fn func(Layout)) func() {
	return s.state.Subscribe(fn)
}

// SetTheme switches the color scheme and persists the change.
func (s *Store) SetTheme(ctx context.Context, theme enums.Theme) {
	if !theme.IsValid() {
		theme = Default().Theme
	}
	s.update(ctx, func(current Layout) Layout {
		current.Theme = theme
		return current
	})
	s.setAttribute(themeTag, themeAttribute, theme.String())
}

// SetSidebarSize switches the sidebar mode and persists the change.
func (s *Store) SetSidebarSize(ctx context.Context, size enums.SidebarSize) {
	if !size.IsValid() {
		size = Default().LeftSideBarSize
	}
	s.update(ctx, func(current Layout) Layout {
		current.LeftSideBarSize = size
		return current
	})
	s.setAttribute(sidebarTag, sidebarAttribute, size.String())
}

// Reset restores both settings to their defaults.
func (s *Store) Reset(ctx context.Context) {
	defaults := Default()
	s.SetTheme(ctx, defaults.Theme)
	s.SetSidebarSize(ctx, defaults.LeftSideBarSize)
}

func (s *Store) update(ctx context.Context, mutate func(Layout) Layout) {
	s.state.Update(mutate)
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(ctx, s.userID, s.state.Get()); err != nil && s.logg != nil {
		s.logg.Error(ctx, "persisting layout settings failed", err)
	}
}

func (s *Store) applyAttributes(current Layout) {
	s.setAttribute(themeTag, themeAttribute, current.Theme.String())
	s.setAttribute(sidebarTag, sidebarAttribute, current.LeftSideBarSize.String())
}

func (s *Store) setAttribute(tag, attribute, value string) {
	if s.applier != nil {
		s.applier.SetAttribute(tag, attribute, value)
	}
}

// sanitize replaces unknown persisted values with defaults so a stale
// document written by an older build cannot break rendering.
func sanitize(l Layout) Layout {
	defaults := Default()
	if !l.Theme.IsValid() {
		l.Theme = defaults.Theme
	}
	if !l.LeftSideBarSize.IsValid() {
		l.LeftSideBarSize = defaults.LeftSideBarSize
	}
	return l
}

// Encode serializes the document for storage backends.
func Encode(l Layout) ([]byte, error) {
	return json.Marshal(l)
}

// Decode parses a stored document.
func Decode(raw []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(raw, &l); err != nil {
		return Layout{}, err
	}
	return l, nil
}
