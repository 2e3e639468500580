package service

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shlink-dashboard/internal/cache"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWebAuthn(t *testing.T) (*WebAuthnService, *store.Store, *cache.MemoryCache) {
	t.Helper()

	st := store.NewStore()
	sessions := cache.NewMemoryCache()
	svc, err := NewWebAuthnService(WebAuthnConfig{
		RPID:          "localhost",
		RPDisplayName: "Shlink Dashboard",
		RPOrigins:     []string{"http://localhost:8080"},
	}, st, st, sessions, zap.NewNop())
	require.NoError(t, err)

	_, err = st.CreateUser(context.Background(), model.User{ID: "u1", Email: "u1@example.com", Role: model.RoleNormalUser})
	require.NoError(t, err)
	return svc, st, sessions
}

func TestWebAuthnUser_OnlyActiveCredentials(t *testing.T) {
	user := webauthnUser{
		user: model.User{ID: "u1", Email: "u1@example.com"},
		credentials: []model.WebauthnCredential{
			{ExternalID: base64.RawURLEncoding.EncodeToString([]byte{1, 2, 3}), Active: true, SignCount: 5},
			{ExternalID: base64.RawURLEncoding.EncodeToString([]byte{4, 5, 6}), Active: false},
			{ExternalID: "%%%", Active: true},
		},
	}

	creds := user.WebAuthnCredentials()
	require.Len(t, creds, 1)
	assert.Equal(t, []byte{1, 2, 3}, creds[0].ID)
	assert.Equal(t, uint32(5), creds[0].Authenticator.SignCount)
	assert.Equal(t, []byte("u1"), user.WebAuthnID())
	assert.Equal(t, "u1@example.com", user.WebAuthnName())
}

func TestWebAuthnService_BeginRegistrationStoresSession(t *testing.T) {
	svc, _, sessions := newTestWebAuthn(t)
	ctx := context.Background()

	creation, err := svc.BeginRegistration(ctx, "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, creation.Response.Challenge)
	assert.Equal(t, "localhost", creation.Response.RelyingParty.ID)

	var raw map[string]any
	require.NoError(t, sessions.Get(ctx, sessionKey("register", "u1"), &raw))
	assert.NotEmpty(t, raw)
}

func TestWebAuthnService_BeginLoginWithoutCredentials(t *testing.T) {
	svc, _, _ := newTestWebAuthn(t)

	_, err := svc.BeginLogin(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrCredentialAbsent)

	_, err = svc.BeginLogin(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestWebAuthnService_BeginLoginWithCredential(t *testing.T) {
	svc, st, sessions := newTestWebAuthn(t)
	ctx := context.Background()

	_, err := st.CreateCredential(ctx, model.WebauthnCredential{
		UserID:     "u1",
		ExternalID: base64.RawURLEncoding.EncodeToString([]byte("credential-1")),
		PublicKey:  []byte{1},
		Active:     true,
	})
	require.NoError(t, err)

	assertion, err := svc.BeginLogin(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, assertion.Response.AllowedCredentials, 1)

	var raw map[string]any
	assert.NoError(t, sessions.Get(ctx, sessionKey("login", "u1"), &raw))
}

func TestWebAuthnService_FinishWithoutCeremony(t *testing.T) {
	svc, _, _ := newTestWebAuthn(t)
	req := httptest.NewRequest("POST", "/2fa/webauthn/finish", strings.NewReader("{}"))

	_, err := svc.FinishLogin(context.Background(), "u1", req)
	assert.ErrorIs(t, err, ErrWebAuthnFailed)

	_, err = svc.FinishRegistration(context.Background(), "u1", "key", req)
	assert.ErrorIs(t, err, ErrWebAuthnFailed)
}

func TestWebAuthnService_FinishConsumesSession(t *testing.T) {
	svc, _, sessions := newTestWebAuthn(t)
	ctx := context.Background()

	_, err := svc.BeginRegistration(ctx, "u1")
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/me/webauthn/finish", strings.NewReader("{}"))
	_, err = svc.FinishRegistration(ctx, "u1", "key", req)
	assert.ErrorIs(t, err, ErrWebAuthnFailed)

	var raw map[string]any
	assert.ErrorIs(t, sessions.Get(ctx, sessionKey("register", "u1"), &raw), cache.ErrMiss)
}

func TestWebAuthnService_DeactivateCredential(t *testing.T) {
	svc, st, _ := newTestWebAuthn(t)
	ctx := context.Background()

	cred, err := st.CreateCredential(ctx, model.WebauthnCredential{UserID: "u1", ExternalID: "AQID", Active: true})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateCredential(ctx, "u1", cred.ID))

	creds, err := svc.ListCredentials(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.False(t, creds[0].Active)

	assert.ErrorIs(t, svc.DeactivateCredential(ctx, "other", cred.ID), ErrCredentialAbsent)
	assert.ErrorIs(t, svc.DeactivateCredential(ctx, "u1", 999), ErrCredentialAbsent)
}
