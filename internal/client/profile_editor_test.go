package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"professor-booking-server/internal/dto"
)

const (
	profilePath = "/api/professor/profile"
	updatePath  = "/api/professor/update-profile"
)

func newEditor(t *testing.T, backend *fakeBackend, dToken string) (*ProfileEditor, *ProfessorState, *recorder) {
	t.Helper()
	backend.profile = dto.Professor{ID: "p1", Name: "Ada", About: "Number theory", Available: true}

	rec := &recorder{}
	api := backend.client()
	state := NewProfessorState(api, dToken, zap.NewNop())
	if dToken != "" {
		require.NoError(t, state.RefreshProfile(context.Background()))
	}
	return NewProfileEditor(api, state, rec, zap.NewNop()), state, rec
}

func TestProfileEditor_EditSeedsDraft(t *testing.T) {
	backend := newFakeBackend(t)
	editor, _, _ := newEditor(t, backend, "prof-token")

	assert.Equal(t, ModeView, editor.Mode())
	editor.ToggleAvailable()
	assert.ErrorIs(t, editor.SetAbout("ignored"), ErrNotEditing)

	require.NoError(t, editor.Edit())
	assert.Equal(t, ModeEdit, editor.Mode())
	assert.Equal(t, ProfileDraft{About: "Number theory", Available: true}, editor.Draft())

	editor.Cancel()
	assert.Equal(t, ModeView, editor.Mode())
	assert.Equal(t, 0, backend.callsTo(updatePath))
}

func TestProfileEditor_EditWithoutProfile(t *testing.T) {
	backend := newFakeBackend(t)
	editor, _, _ := newEditor(t, backend, "")

	assert.ErrorIs(t, editor.Edit(), ErrNoProfile)
	assert.Equal(t, ModeView, editor.Mode())
}

func TestProfileEditor_SaveSuccess(t *testing.T) {
	backend := newFakeBackend(t)
	editor, state, rec := newEditor(t, backend, "prof-token")

	require.NoError(t, editor.Edit())
	require.NoError(t, editor.SetAbout("Analytic number theory"))
	editor.ToggleAvailable()
	require.NoError(t, editor.Save(context.Background()))

	_, update, token := backend.last()
	assert.Equal(t, "prof-token", token)
	assert.Equal(t, dto.UpdateProfileRequest{About: "Analytic number theory", Available: false}, update)

	assert.Equal(t, ModeView, editor.Mode())
	assert.Equal(t, []string{"Profile Updated"}, rec.successes)
	assert.Equal(t, 2, backend.callsTo(profilePath))

	profile, ok := state.Profile()
	require.True(t, ok)
	assert.Equal(t, "Analytic number theory", profile.About)
	assert.False(t, profile.Available)
}

func TestProfileEditor_SaveFailureReturnsToView(t *testing.T) {
	backend := newFakeBackend(t)
	backend.updateReply = reply{status: http.StatusOK, success: false, message: "X"}
	editor, state, rec := newEditor(t, backend, "prof-token")

	require.NoError(t, editor.Edit())
	require.NoError(t, editor.SetAbout("changed"))
	err := editor.Save(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "X", apiErr.Message)
	assert.Equal(t, []string{"X"}, rec.errors)
	assert.Equal(t, ModeView, editor.Mode())
	assert.Equal(t, 1, backend.callsTo(profilePath))

	profile, _ := state.Profile()
	assert.Equal(t, "Number theory", profile.About)
	assert.True(t, profile.Available)
}

func TestProfileEditor_KeepEditOnFailure(t *testing.T) {
	backend := newFakeBackend(t)
	backend.updateReply = reply{status: http.StatusBadRequest, success: false, message: "X"}
	editor, _, _ := newEditor(t, backend, "prof-token")
	editor.KeepEditOnFailure = true

	require.NoError(t, editor.Edit())
	require.NoError(t, editor.SetAbout("changed"))
	require.Error(t, editor.Save(context.Background()))

	assert.Equal(t, ModeEdit, editor.Mode())
	assert.Equal(t, "changed", editor.Draft().About)
}

func TestProfileEditor_SaveWithoutToken(t *testing.T) {
	backend := newFakeBackend(t)
	editor, state, rec := newEditor(t, backend, "prof-token")

	require.NoError(t, editor.Edit())
	state.SetToken("")
	assert.ErrorIs(t, editor.Save(context.Background()), ErrUnauthenticated)
	assert.Equal(t, 0, backend.callsTo(updatePath))
	assert.Len(t, rec.warnings, 1)
}

func TestProfileEditor_SaveOutsideEdit(t *testing.T) {
	backend := newFakeBackend(t)
	editor, _, _ := newEditor(t, backend, "prof-token")

	assert.ErrorIs(t, editor.Save(context.Background()), ErrNotEditing)
	assert.Equal(t, 0, backend.callsTo(updatePath))
}

func TestProfessorState_RefreshWithoutToken(t *testing.T) {
	backend := newFakeBackend(t)
	state := NewProfessorState(backend.client(), "", zap.NewNop())

	assert.ErrorIs(t, state.RefreshProfile(context.Background()), ErrUnauthenticated)
	assert.Equal(t, 0, backend.callsTo(profilePath))
}
