package main

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"ecogwiki.org/ecogwiki-web/internal/layout"
	mw "ecogwiki.org/ecogwiki-web/internal/middleware"
	"ecogwiki.org/ecogwiki-web/internal/seo"
	"ecogwiki.org/ecogwiki-web/internal/wiki"
)

// pageStore holds the page sources loaded at startup. Content storage
// proper is out of scope; this is a read-only demo corpus.
type pageStore struct {
	pages map[string]string
}

const defaultHome = ".write login\n\n# Home\n\nWelcome. This page does not have content yet.\n"

func loadPages(dir string) (*pageStore, error) {
	s := &pageStore{pages: map[string]string{}}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.pages["Home"] = defaultHome
			return s, nil
		}
		return nil, fmt.Errorf("read pages dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", e.Name(), err)
		}
		s.pages[strings.TrimSuffix(e.Name(), ".md")] = string(raw)
	}
	if _, ok := s.pages["Home"]; !ok {
		s.pages["Home"] = defaultHome
	}
	return s, nil
}

func (s *pageStore) get(name string) (string, bool) {
	src, ok := s.pages[name]
	return src, ok
}

func (s *pageStore) names() []string {
	out := make([]string, 0, len(s.pages))
	for n := range s.pages {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// renderContext assembles the per-request context the engine consumes.
func renderContext(r *http.Request, page *layout.Page) layout.Context {
	var u *layout.User
	if cu := mw.UserFromContext(r.Context()); cu != nil {
		u = &layout.User{Email: cu.Email}
	}
	return layout.Context{
		Service:     cfg.Layout(),
		User:        u,
		Page:        page,
		RequestURL:  r.URL.RequestURI(),
		Environment: environment,
		AppVersion:  appVersion,
	}
}

func writePage(w http.ResponseWriter, r *http.Request, status int, page *layout.Page, overrides layout.Overrides) {
	out, err := shell.Render(renderContext(r, page), overrides)
	if err != nil {
		// only reachable through an unknown slot, i.e. a bug here
		if logger != nil {
			logger.Error("render", zap.Error(err), zap.String("path", r.URL.Path))
		}
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// PageHandler serves wiki pages by name.
func PageHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" {
		http.Redirect(w, r, "/Home", http.StatusFound)
		return
	}
	src, ok := store.get(name)
	if !ok {
		page := &layout.Page{Title: name}
		writePage(w, r, http.StatusNotFound, page, layout.Overrides{
			layout.SlotTitle: layout.Content(name),
			layout.SlotBody:  layout.Content("<p data-page-missing>This page does not exist yet.</p>"),
		})
		return
	}
	p := wiki.Parse(name, src)
	body, err := wiki.RenderBody(p)
	if err != nil {
		http.Error(w, fmt.Sprintf("render page: %v", err), http.StatusInternalServerError)
		return
	}
	meta := seo.Meta{OGTitle: p.Title, OGType: "website", OGURL: r.URL.Path}
	if p.Published() {
		meta.OGType = "article"
	}
	page := &layout.Page{Title: p.Title, Metadata: p.Metadata}
	writePage(w, r, http.StatusOK, page, layout.Overrides{
		layout.SlotTitle: layout.Content(p.Title),
		layout.SlotHead:  layout.Content(meta.HeadFragment()),
		layout.SlotBody:  layout.Content(body),
	})
}

// SearchHandler serves the search results shell. Matching pages are
// those whose name or source contains the query.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>Search</h1>\n<p data-search-query>%s</p>\n", template.HTMLEscapeString(q))
	if q != "" {
		b.WriteString("<ul data-search-results>\n")
		for _, name := range store.names() {
			src, _ := store.get(name)
			if containsFold(name, q) || containsFold(src, q) {
				fmt.Fprintf(&b, "<li><a href=\"/%s\">%s</a></li>\n",
					template.HTMLEscapeString(url.PathEscape(name)), template.HTMLEscapeString(name))
			}
		}
		b.WriteString("</ul>\n")
	}
	writePage(w, r, http.StatusOK, nil, layout.Overrides{
		layout.SlotTitle: layout.Content("Search"),
		layout.SlotBody:  layout.Content(b.String()),
	})
}

// ChangesHandler lists every known page.
func ChangesHandler(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("<h1>Changes</h1>\n<ul data-changes>\n")
	for _, name := range store.names() {
		fmt.Fprintf(&b, "<li><a href=\"/%s\">%s</a></li>\n",
			template.HTMLEscapeString(url.PathEscape(name)), template.HTMLEscapeString(name))
	}
	b.WriteString("</ul>\n")
	writePage(w, r, http.StatusOK, nil, layout.Overrides{
		layout.SlotTitle: layout.Content("Changes"),
		layout.SlotBody:  layout.Content(b.String()),
	})
}

// PostsHandler lists published pages, the target of the alternate feed
// link in the layout's head boilerplate.
func PostsHandler(w http.ResponseWriter, r *http.Request) {
	var posts []string
	for _, name := range store.names() {
		src, _ := store.get(name)
		if wiki.Parse(name, src).Published() {
			posts = append(posts, name)
		}
	}
	if r.URL.Query().Get("format") == "atom" {
		writeAtom(w, posts)
		return
	}
	var b strings.Builder
	b.WriteString("<h1>Posts</h1>\n<ul data-posts>\n")
	for _, name := range posts {
		fmt.Fprintf(&b, "<li><a href=\"/%s\">%s</a></li>\n",
			template.HTMLEscapeString(url.PathEscape(name)), template.HTMLEscapeString(name))
	}
	b.WriteString("</ul>\n")
	writePage(w, r, http.StatusOK, nil, layout.Overrides{
		layout.SlotTitle: layout.Content("Posts"),
		layout.SlotBody:  layout.Content(b.String()),
	})
}

func writeAtom(w http.ResponseWriter, posts []string) {
	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<feed xmlns=\"http://www.w3.org/2005/Atom\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", template.HTMLEscapeString(cfg.Service.Title))
	for _, name := range posts {
		fmt.Fprintf(&b, "<entry><title>%s</title><link href=\"/%s\"/></entry>\n",
			template.HTMLEscapeString(name), template.HTMLEscapeString(url.PathEscape(name)))
	}
	b.WriteString("</feed>\n")
	_, _ = w.Write([]byte(b.String()))
}

// PreferencesHandler serves the signed-in preferences shell.
func PreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	b.WriteString("<h1>Preferences</h1>\n")
	if u := mw.UserFromContext(r.Context()); u != nil {
		fmt.Fprintf(&b, "<p data-prefs-email>Signed in as %s</p>\n", template.HTMLEscapeString(u.Email))
	} else {
		b.WriteString("<p data-prefs-anonymous>Sign in to manage preferences.</p>\n")
	}
	writePage(w, r, http.StatusOK, nil, layout.Overrides{
		layout.SlotTitle: layout.Content("Preferences"),
		layout.SlotBody:  layout.Content(b.String()),
	})
}

// LoginHandler is the development identity endpoint: it signs the
// caller in as the supplied email and bounces back. A real deployment
// fronts this with its identity provider.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email != "" {
		sd := mw.GetSession(r)
		sd.Email = email
		mw.WriteSession(w, sd)
	}
	http.Redirect(w, r, safeRedirect(r.URL.Query().Get("redirect")), http.StatusFound)
}

// LogoutHandler clears the session and bounces back.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	mw.ClearSession(w)
	http.Redirect(w, r, safeRedirect(r.URL.Query().Get("redirect")), http.StatusFound)
}

// safeRedirect confines redirect targets to local paths.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/Home"
	}
	return target
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
