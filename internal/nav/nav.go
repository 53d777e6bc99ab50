package nav

import (
	"fmt"
	"html/template"
	"strings"
)

// Entry is one top-level navigation item. Entries render in the order
// configured; Style and ShortcutKey are optional and omitted from the
// markup entirely when empty.
type Entry struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Style       string `yaml:"style,omitempty"`
	ShortcutKey string `yaml:"shortcut,omitempty"`
}

// Render emits the navigation list for the given entries. An entry
// whose URL matches the current path (exactly or at a path boundary)
// is marked active. Duplicate shortcut keys are a configuration
// mistake; they render as-is rather than failing.
func Render(entries []Entry, currentPath string) string {
	if currentPath == "" {
		currentPath = "/"
	}
	var b strings.Builder
	b.WriteString("<nav data-nav>\n<ul>\n")
	for _, e := range entries {
		b.WriteString("<li><a href=\"")
		b.WriteString(template.HTMLEscapeString(e.URL))
		b.WriteString("\"")
		if e.ShortcutKey != "" {
			fmt.Fprintf(&b, " id=\"shortcut-%s\"", template.HTMLEscapeString(e.ShortcutKey))
		}
		if classes := entryClasses(e, currentPath); classes != "" {
			fmt.Fprintf(&b, " class=\"%s\"", classes)
		}
		if e.ShortcutKey != "" {
			fmt.Fprintf(&b, " data-shortcut=\"%s\"", template.HTMLEscapeString(e.ShortcutKey))
		}
		if e.Style != "" {
			fmt.Fprintf(&b, " style=\"%s\"", template.HTMLEscapeString(e.Style))
		}
		fmt.Fprintf(&b, ">%s</a></li>\n", template.HTMLEscapeString(e.Name))
	}
	b.WriteString("</ul>\n</nav>\n")
	return b.String()
}

func entryClasses(e Entry, currentPath string) string {
	var classes []string
	if e.ShortcutKey != "" {
		classes = append(classes, "shortcut")
	}
	if isActive(e.URL, currentPath) {
		classes = append(classes, "active")
	}
	return strings.Join(classes, " ")
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "" {
		return false
	}
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/Home" or "/Home/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
