package server

import (
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-boarding-client/internal/errors"
	"github.com/jrsteele09/go-boarding-client/session"
)

// destinationFor maps a role to its dashboard
func destinationFor(role session.Role) (string, error) {
	switch role {
	case session.RoleManager:
		return RouteManagerDashboard, nil
	case session.RoleTenant:
		return RouteRenterDashboard, nil
	}
	return "", errors.Wrapf(errors.ErrUnknownRole, "role %q", role)
}

// redirectSuccess helper for htmx-aware success redirects
func redirectSuccess(w http.ResponseWriter, r *http.Request, path string) {
	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", path)
		w.WriteHeader(http.StatusNoContent) // 204 - no content, just redirect instruction
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// redirectWithError helper for htmx-aware error redirects
func redirectWithError(w http.ResponseWriter, r *http.Request, path, errorMsg string) {
	fullPath := path + "?error=" + url.QueryEscape(errorMsg)

	if isHTMXRequest(r) {
		w.Header().Set("HX-Redirect", fullPath)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, fullPath, http.StatusSeeOther)
}

// isHTMXRequest checks if the request was initiated by HTMX
func isHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
