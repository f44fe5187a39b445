package client

import (
	"context"
	"errors"

	"professor-booking-server/internal/dto"

	"go.uber.org/zap"
)

// EditorMode is the state of a ProfileEditor.
type EditorMode int

const (
	ModeView EditorMode = iota
	ModeEdit
)

func (m EditorMode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

var (
	ErrNotEditing = errors.New("profile editor is not in edit mode")
	ErrNoProfile  = errors.New("profile not loaded")
)

// ProfileAPI submits profile updates.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, dToken string, req dto.UpdateProfileRequest) (string, error)
}

// ProfileDraft holds the unsaved edits.
type ProfileDraft struct {
	About     string
	Available bool
}

// ProfileEditor switches a professor's profile between viewing and editing.
// Edits go to a draft; the cached profile in ProfessorState only changes
// through a refresh after a successful save.
type ProfileEditor struct {
	api    ProfileAPI
	state  *ProfessorState
	notify Notifier
	logger *zap.Logger

	// KeepEditOnFailure leaves the editor in edit mode, draft intact, when a
	// save fails. By default a failed save returns to view mode and drops the draft.
	KeepEditOnFailure bool

	mode  EditorMode
	draft ProfileDraft
}

func NewProfileEditor(api ProfileAPI, state *ProfessorState, notify Notifier, logger *zap.Logger) *ProfileEditor {
	return &ProfileEditor{api: api, state: state, notify: notify, logger: logger}
}

func (e *ProfileEditor) Mode() EditorMode {
	return e.mode
}

// Draft returns the current edits; meaningful only in edit mode.
func (e *ProfileEditor) Draft() ProfileDraft {
	return e.draft
}

// Edit enters edit mode with a draft seeded from the cached profile.
func (e *ProfileEditor) Edit() error {
	profile, ok := e.state.Profile()
	if !ok {
		return ErrNoProfile
	}
	if e.mode == ModeEdit {
		return nil
	}
	e.draft = ProfileDraft{About: profile.About, Available: profile.Available}
	e.mode = ModeEdit
	return nil
}

// SetAbout replaces the draft about text.
func (e *ProfileEditor) SetAbout(about string) error {
	if e.mode != ModeEdit {
		return ErrNotEditing
	}
	e.draft.About = about
	return nil
}

// ToggleAvailable flips the draft availability. Ignored outside edit mode.
func (e *ProfileEditor) ToggleAvailable() {
	if e.mode == ModeEdit {
		e.draft.Available = !e.draft.Available
	}
}

// Cancel drops the draft and returns to view mode.
func (e *ProfileEditor) Cancel() {
	e.mode = ModeView
	e.draft = ProfileDraft{}
}

// Save submits the draft. On success the editor returns to view mode and the
// profile is re-fetched. On failure the error is notified and returned.
func (e *ProfileEditor) Save(ctx context.Context) error {
	if e.mode != ModeEdit {
		return ErrNotEditing
	}

	dToken := e.state.Token()
	if dToken == "" {
		e.notify.Warning("Login to update your profile")
		return ErrUnauthenticated
	}

	req := dto.UpdateProfileRequest{About: e.draft.About, Available: e.draft.Available}
	message, err := e.api.UpdateProfile(ctx, dToken, req)
	if err != nil {
		e.logger.Warn("Profile update failed", zap.Error(err))
		e.notify.Error(err.Error())
		if !e.KeepEditOnFailure {
			e.Cancel()
		}
		return err
	}

	e.notify.Success(message)
	e.Cancel()
	if err := e.state.RefreshProfile(ctx); err != nil {
		e.notify.Error(err.Error())
	}
	return nil
}
