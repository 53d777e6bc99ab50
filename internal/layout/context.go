package layout

import "ecogwiki.org/ecogwiki-web/internal/nav"

// Environment selects which instrumentation variant the shell emits.
type Environment string

const (
	EnvLocal      Environment = "local"
	EnvProduction Environment = "production"
)

// ServiceConfig is the site-wide configuration surfaced to every render.
type ServiceConfig struct {
	Title              string
	Domain             string
	AnalyticsAccountID string
	AdminEmail         string
	CSSList            []string
	Navigation         []nav.Entry
}

// User identifies the signed-in visitor. Absent (nil) means anonymous.
type User struct {
	Email string
}

// Page describes the document being rendered. Absent (nil) means a
// system page (search results, preferences, and the like).
type Page struct {
	Title    string
	Metadata map[string]string
}

// IsPublished reports whether the page carries the "pub" metadata key.
func (p *Page) IsPublished() bool {
	if p == nil {
		return false
	}
	_, ok := p.Metadata["pub"]
	return ok
}

// Context carries everything a single render needs. It is constructed
// fresh per request by the caller and never retained by the engine.
type Context struct {
	Service     ServiceConfig
	User        *User
	Page        *Page
	RequestURL  string
	Environment Environment
	AppVersion  string
}

// IsAdmin reports whether the current user matches the configured admin.
func (c Context) IsAdmin() bool {
	return c.User != nil && c.User.Email == c.Service.AdminEmail
}
