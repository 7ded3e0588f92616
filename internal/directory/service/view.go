package service

import (
	"slices"

	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/domain"
	"github.com/GoSim-25-26J-441/profile-directory/internal/directory/mapview"
)

const (
	labelToAdmin = "Switch to Admin View"
	labelToUser  = "Switch to User View"
	labelAdd     = "Add Profile"
	labelUpdate  = "Update Profile"
)

// View is the projection of the store for the active mode. Only the section
// for the current mode is populated.
type View struct {
	Mode        domain.Mode `json:"mode"`
	ToggleLabel string      `json:"toggle_label"`
	Browse      *BrowseView `json:"browse,omitempty"`
	Admin       *AdminView  `json:"admin,omitempty"`
}

type BrowseView struct {
	SearchTerm string           `json:"search_term"`
	Profiles   []domain.Profile `json:"profiles"`
	Selection  *mapview.Panel   `json:"selection,omitempty"`
}

type AdminView struct {
	Profiles    []domain.Profile `json:"profiles"`
	Draft       domain.Draft     `json:"draft"`
	EditID      *int64           `json:"edit_id,omitempty"`
	SubmitLabel string           `json:"submit_label"`
}

// View builds a consistent snapshot of the current mode's screen.
func (s *Store) View(opts mapview.Options) View {
	s.mu.Lock()
	profiles := append([]domain.Profile(nil), s.profiles...)
	mode := s.mode
	term := s.searchTerm
	draft := s.draft
	var editID *int64
	if s.editID != nil {
		id := *s.editID
		editID = &id
	}
	selected, hasSelection := s.selectedLocked()
	s.mu.Unlock()

	if profiles == nil {
		profiles = []domain.Profile{}
	}

	v := View{Mode: mode, ToggleLabel: labelToAdmin}
	if mode == domain.ModeAdmin {
		v.ToggleLabel = labelToUser
		label := labelAdd
		if editID != nil {
			label = labelUpdate
		}
		v.Admin = &AdminView{Profiles: profiles, Draft: draft, EditID: editID, SubmitLabel: label}
		return v
	}

	browse := &BrowseView{SearchTerm: term, Profiles: slices.Collect(filter(profiles, term))}
	if browse.Profiles == nil {
		browse.Profiles = []domain.Profile{}
	}
	if hasSelection {
		panel := mapview.BuildPanel(selected, opts)
		browse.Selection = &panel
	}
	v.Browse = browse
	return v
}
