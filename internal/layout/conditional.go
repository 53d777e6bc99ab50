package layout

import (
	"fmt"
	"html/template"
	"strings"
)

// Content-group tags attached to analytics events.
const (
	GroupPost   = "Post"
	GroupWiki   = "Wiki"
	GroupSystem = "System"
)

// ContentGroup classifies the current page for analytics tagging:
// a page carrying the "pub" metadata key is a Post, any other page is
// a Wiki page, and no page at all means a system page.
func ContentGroup(p *Page) string {
	switch {
	case p == nil:
		return GroupSystem
	case p.IsPublished():
		return GroupPost
	default:
		return GroupWiki
	}
}

// AdminDimension computes the visitor dimension attached to analytics
// events: 0 anonymous, 1 signed-in, 2 admin.
func AdminDimension(u *User, adminEmail string) int {
	switch {
	case u == nil:
		return 0
	case u.Email == adminEmail:
		return 2
	default:
		return 1
	}
}

// URLProvider supplies the session-related link targets the shell
// renders. Implementations live outside the engine; the engine only
// places the URLs it is handed.
type URLProvider interface {
	LoginURL(returnPath string) string
	LogoutURL(returnPath string) string
	UserPageURL(email string) string
}

// sessionBlock renders the signed-in or anonymous chrome fragment.
// Total over all contexts: an absent user yields the anonymous variant
// with an empty email placeholder and a login link.
func (s *Shell) sessionBlock(ctx Context) string {
	returnPath := ctx.RequestURL
	var b strings.Builder
	b.WriteString("<div data-session class=\"session\">\n")
	if u := ctx.User; u != nil {
		fmt.Fprintf(&b, "<a data-session-email href=\"%s\">%s</a>\n",
			template.HTMLEscapeString(s.urls.UserPageURL(u.Email)),
			template.HTMLEscapeString(u.Email))
		b.WriteString("<a data-session-prefs href=\"/sp.preferences\">Preferences</a>\n")
		fmt.Fprintf(&b, "<a data-session-logout href=\"%s\">Logout</a>\n",
			template.HTMLEscapeString(s.urls.LogoutURL(returnPath)))
	} else {
		b.WriteString("<span data-session-email></span>\n")
		fmt.Fprintf(&b, "<a data-session-login href=\"%s\">Login</a>\n",
			template.HTMLEscapeString(s.urls.LoginURL(returnPath)))
	}
	b.WriteString("</div>\n")
	return b.String()
}
