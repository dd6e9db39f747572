package controllers

import (
	"net/http"
	"net/url"
	"testing"

	"giftshop/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	handler, db := newTestServer(t)
	seedAdmin(t, db, "Eivor Wolf-Kissed", "owner", entity.PermissionOwner)

	cookies := login(t, handler, "owner", "password1234")

	// The session now resolves an identity: the dashboard renders.
	rec := doRequest(handler, http.MethodGet, "/admin", nil, cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Signed in as owner")
	assert.Contains(t, rec.Body.String(), "Logged in as owner")
}

func TestLoginWrongPassword(t *testing.T) {
	handler, db := newTestServer(t)
	seedAdmin(t, db, "Eivor Wolf-Kissed", "owner", entity.PermissionOwner)

	rec := doRequest(handler, http.MethodPost, "/admin/login", url.Values{
		"username": {"owner"},
		"password": {"wrongpassword"},
	}, nil)

	// Re-render, not a redirect, and no hint which half was wrong.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")

	// No identity was stored.
	again := doRequest(handler, http.MethodGet, "/admin", nil, rec.Result().Cookies())
	assert.Equal(t, http.StatusSeeOther, again.Code)
	assert.Equal(t, "/admin/login", again.Header().Get("Location"))
}

func TestLoginUnknownUsername(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(handler, http.MethodPost, "/admin/login", url.Values{
		"username": {"ghost"},
		"password": {"password1234"},
	}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func TestLogoutIsIdempotent(t *testing.T) {
	handler, db := newTestServer(t)
	seedAdmin(t, db, "Eivor Wolf-Kissed", "owner", entity.PermissionOwner)

	// Logged in.
	cookies := login(t, handler, "owner", "password1234")
	rec := doRequest(handler, http.MethodDelete, "/admin/logout", nil, cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	// Session is gone now.
	after := doRequest(handler, http.MethodGet, "/admin", nil, cookies)
	assert.Equal(t, http.StatusSeeOther, after.Code)

	// Never logged in at all: still succeeds.
	rec = doRequest(handler, http.MethodDelete, "/admin/logout", nil, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestLogoutViaMethodOverride(t *testing.T) {
	handler, db := newTestServer(t)
	seedAdmin(t, db, "Eivor Wolf-Kissed", "owner", entity.PermissionOwner)
	cookies := login(t, handler, "owner", "password1234")

	// Plain HTML form: POST with a hidden _method field.
	rec := doRequest(handler, http.MethodPost, "/admin/logout", url.Values{
		"_method": {"DELETE"},
	}, cookies)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestSessionGateRedirectsAnonymous(t *testing.T) {
	handler, _ := newTestServer(t)

	for _, path := range []string{"/admin", "/admin/admins", "/admin/admins/new"} {
		rec := doRequest(handler, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}

	// The alert shows up on the login page render.
	rec := doRequest(handler, http.MethodGet, "/admin", nil, nil)
	loginPage := doRequest(handler, http.MethodGet, "/admin/login", nil, rec.Result().Cookies())
	assert.Contains(t, loginPage.Body.String(), "Please log in to access the admin panel.")
}

func TestStaleSessionRedirects(t *testing.T) {
	handler, db := newTestServer(t)
	admin := seedAdmin(t, db, "Bayek Siwa", "viewer", entity.PermissionViewer)
	cookies := login(t, handler, "viewer", "password1234")

	// The admin is deleted out from under the session.
	require.NoError(t, db.Unscoped().Delete(&entity.AdminUser{}, admin.ID).Error)

	rec := doRequest(handler, http.MethodGet, "/admin", nil, cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestHealthProbe(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(handler, http.MethodGet, "/up", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStorefrontRoot(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doRequest(handler, http.MethodGet, "/", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GIFT Bakery")
}
