// Package sessions supplies the identity-collaborator URLs the page
// shell links to. The engine itself never builds these; it renders
// whatever this package hands it.
package sessions

import (
	"net/url"
	"strings"
)

const (
	loginPath  = "/sp.login"
	logoutPath = "/sp.logout"
)

// Builder constructs login, logout, and user-page URLs. The zero value
// is ready to use.
type Builder struct{}

// LoginURL returns the sign-in URL that redirects back to returnPath.
func (Builder) LoginURL(returnPath string) string {
	return loginPath + "?redirect=" + url.QueryEscape(returnPath)
}

// LogoutURL returns the sign-out URL that redirects back to returnPath.
func (Builder) LogoutURL(returnPath string) string {
	return logoutPath + "?redirect=" + url.QueryEscape(returnPath)
}

// UserPageURL links a signed-in email to its wiki user page, named
// after the address's local part.
func (Builder) UserPageURL(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i >= 0 {
		local = email[:i]
	}
	if local == "" {
		return "/"
	}
	return "/" + url.PathEscape(local)
}
