package service

import (
	"context"
	"iter"
	"strings"
	"sync"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/domain"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/events"
	"github.com/GoSim-25-26J-441/profile-directory/internal/logging"
	"go.uber.org/zap"
)

// Store is the single owner of the profile collection and of the transient
// UI state (mode, search term, selection, edit target, draft). Every
// operation runs to completion under one lock, so mutations never interleave.
type Store struct {
	mu         sync.Mutex
	profiles   []domain.Profile
	ids        *domain.IDSource
	mode       domain.Mode
	searchTerm string
	selectedID *int64
	editID     *int64
	draft      domain.Draft
	// draftGen changes whenever the form is replaced rather than edited.
	draftGen uint64

	publisher events.Publisher
	logger    *zap.Logger
}

type Option func(*Store)

func WithPublisher(p events.Publisher) Option {
	return func(s *Store) { s.publisher = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func WithIDSource(ids *domain.IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// WithProfiles preloads records. Their ids are kept as given.
func WithProfiles(profiles ...domain.Profile) Option {
	return func(s *Store) { s.profiles = append(s.profiles, profiles...) }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		mode:      domain.ModeBrowse,
		publisher: events.Nop{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		var floor int64
		for _, p := range s.profiles {
			if p.ID > floor {
				floor = p.ID
			}
		}
		s.ids = domain.NewIDSource(floor)
	}
	return s
}

// AddProfile validates d, appends a new profile with a fresh id and resets the form.
func (s *Store) AddProfile(ctx context.Context, d domain.Draft) (domain.Profile, error) {
	s.mu.Lock()
	p, err := s.addLocked(d)
	s.mu.Unlock()
	if err != nil {
		return domain.Profile{}, err
	}

	logging.NewLogger(ctx, s.logger).LogInfof("add_profile", "added profile %d", p.ID)
	s.publish(ctx, events.New(events.ProfileAdded, &p.ID, p))
	return p, nil
}

// UpdateProfile replaces the fields of profile id in place, keeping its id and position.
func (s *Store) UpdateProfile(ctx context.Context, id int64, d domain.Draft) (domain.Profile, error) {
	s.mu.Lock()
	p, err := s.updateLocked(id, d)
	s.mu.Unlock()
	if err != nil {
		return domain.Profile{}, err
	}

	logging.NewLogger(ctx, s.logger).LogInfof("update_profile", "updated profile %d", p.ID)
	s.publish(ctx, events.New(events.ProfileUpdated, &p.ID, p))
	return p, nil
}

func (s *Store) addLocked(d domain.Draft) (domain.Profile, error) {
	if err := d.Validate(); err != nil {
		return domain.Profile{}, err
	}
	p := d.Apply(domain.Profile{ID: s.ids.Next()})
	s.profiles = append(s.profiles, p)
	s.resetFormLocked()
	return p, nil
}

func (s *Store) updateLocked(id int64, d domain.Draft) (domain.Profile, error) {
	if err := d.Validate(); err != nil {
		return domain.Profile{}, err
	}
	idx := s.indexLocked(id)
	if idx < 0 {
		return domain.Profile{}, domain.ErrNotFound
	}
	p := d.Apply(s.profiles[idx])
	s.profiles[idx] = p
	s.resetFormLocked()
	return p, nil
}

// DeleteProfile removes profile id and clears the selection if it pointed at
// it. It reports whether anything was removed; deleting twice is a no-op.
func (s *Store) DeleteProfile(ctx context.Context, id int64) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.profiles = append(s.profiles[:idx:idx], s.profiles[idx+1:]...)
	selectionCleared := s.selectedID != nil && *s.selectedID == id
	if selectionCleared {
		s.selectedID = nil
	}
	s.mu.Unlock()

	logging.NewLogger(ctx, s.logger).LogInfof("delete_profile", "deleted profile %d", id)
	s.publish(ctx, events.New(events.ProfileDeleted, &id, nil))
	if selectionCleared {
		s.publish(ctx, events.New(events.SelectionChanged, nil, nil))
	}
	return true
}

// BeginEdit loads profile id into the draft and makes it the edit target.
func (s *Store) BeginEdit(ctx context.Context, id int64) (domain.Draft, error) {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.Draft{}, domain.ErrNotFound
	}
	s.draft = domain.DraftFrom(s.profiles[idx])
	s.draftGen++
	target := id
	s.editID = &target
	d := s.draft
	s.mu.Unlock()

	s.publish(ctx, events.New(events.DraftChanged, &id, d))
	return d, nil
}

// CancelEdit drops the edit target and clears the draft.
func (s *Store) CancelEdit(ctx context.Context) {
	s.mu.Lock()
	s.resetFormLocked()
	s.mu.Unlock()

	s.publish(ctx, events.New(events.DraftChanged, nil, domain.Draft{}))
}

// UpdateDraft replaces the buffered form fields. The edit target is unchanged.
func (s *Store) UpdateDraft(ctx context.Context, d domain.Draft) {
	s.mu.Lock()
	s.draft = d
	s.mu.Unlock()

	s.publish(ctx, events.New(events.DraftChanged, nil, d))
}

// DraftGeneration identifies the form currently being filled in. It changes
// when the form is submitted, cancelled or loaded from a profile.
func (s *Store) DraftGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftGen
}

// SetDraftPhoto is the completion target of an image upload started while
// gen was current. It reports false and leaves the draft alone when the
// form has been replaced since.
func (s *Store) SetDraftPhoto(ctx context.Context, gen uint64, photo string) bool {
	s.mu.Lock()
	if gen != s.draftGen {
		s.mu.Unlock()
		return false
	}
	s.draft.Photo = photo
	d := s.draft
	s.mu.Unlock()

	s.publish(ctx, events.New(events.DraftChanged, nil, d))
	return true
}

// SubmitDraft commits the buffered draft: an update when an edit target is
// set, otherwise an add.
func (s *Store) SubmitDraft(ctx context.Context) (domain.Profile, error) {
	s.mu.Lock()
	var (
		p   domain.Profile
		err error
		typ = events.ProfileAdded
		op  = "add_profile"
	)
	if s.editID != nil {
		typ, op = events.ProfileUpdated, "update_profile"
		p, err = s.updateLocked(*s.editID, s.draft)
	} else {
		p, err = s.addLocked(s.draft)
	}
	s.mu.Unlock()
	if err != nil {
		return domain.Profile{}, err
	}

	logging.NewLogger(ctx, s.logger).LogInfof(op, "submitted profile %d", p.ID)
	s.publish(ctx, events.New(typ, &p.ID, p))
	return p, nil
}

// SetSearchTerm stores term verbatim. Case folding happens at query time.
func (s *Store) SetSearchTerm(ctx context.Context, term string) {
	s.mu.Lock()
	s.searchTerm = term
	s.mu.Unlock()

	s.publish(ctx, events.New(events.SearchChanged, nil, term))
}

// FilteredProfiles yields the profiles whose name, description or city
// contains the current search term, ignoring case, in insertion order. The
// sequence is lazy and restartable: each range reads the current state.
func (s *Store) FilteredProfiles() iter.Seq[domain.Profile] {
	return func(yield func(domain.Profile) bool) {
		s.mu.Lock()
		profiles := append([]domain.Profile(nil), s.profiles...)
		term := s.searchTerm
		s.mu.Unlock()

		for p := range filter(profiles, term) {
			if !yield(p) {
				return
			}
		}
	}
}

func filter(profiles []domain.Profile, term string) iter.Seq[domain.Profile] {
	needle := strings.ToLower(term)
	return func(yield func(domain.Profile) bool) {
		for _, p := range profiles {
			if !matches(p, needle) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func matches(p domain.Profile, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.City), needle)
}

// SelectProfile sets the selection to p, or clears it when p is nil. The
// selection refers to the live record by id, so later updates show through.
func (s *Store) SelectProfile(ctx context.Context, p *domain.Profile) error {
	s.mu.Lock()
	if p == nil {
		s.selectedID = nil
		s.mu.Unlock()
		s.publish(ctx, events.New(events.SelectionChanged, nil, nil))
		return nil
	}
	if s.indexLocked(p.ID) < 0 {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	id := p.ID
	s.selectedID = &id
	s.mu.Unlock()

	s.publish(ctx, events.New(events.SelectionChanged, &id, nil))
	return nil
}

// Selected returns the live record for the current selection.
func (s *Store) Selected() (domain.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked()
}

// ToggleMode flips browse/admin. Selection and search term are kept.
func (s *Store) ToggleMode(ctx context.Context) domain.Mode {
	s.mu.Lock()
	s.mode = s.mode.Toggle()
	mode := s.mode
	s.mu.Unlock()

	s.publish(ctx, events.New(events.ModeToggled, nil, mode))
	return mode
}

func (s *Store) Mode() domain.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Store) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm
}

func (s *Store) Draft() domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// EditTarget returns the id being edited, if any.
func (s *Store) EditTarget() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editID == nil {
		return 0, false
	}
	return *s.editID, true
}

// Profiles returns a copy of the whole collection in insertion order.
func (s *Store) Profiles() []domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Profile(nil), s.profiles...)
}

func (s *Store) Get(id int64) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return domain.Profile{}, domain.ErrNotFound
	}
	return s.profiles[idx], nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}

func (s *Store) indexLocked(id int64) int {
	for i, p := range s.profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) selectedLocked() (domain.Profile, bool) {
	if s.selectedID == nil {
		return domain.Profile{}, false
	}
	idx := s.indexLocked(*s.selectedID)
	if idx < 0 {
		return domain.Profile{}, false
	}
	return s.profiles[idx], true
}

func (s *Store) resetFormLocked() {
	s.draft = domain.Draft{}
	s.editID = nil
	s.draftGen++
}

func (s *Store) publish(ctx context.Context, ev events.Event) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logging.NewLogger(ctx, s.logger).LogWarnf("publish", "event %s not published: %v", ev.Type, err)
	}
}
