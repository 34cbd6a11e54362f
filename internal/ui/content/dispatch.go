// Package content decides which page loader runs for a path and turns fetched
// CMS payloads into DOM mutations. It never touches the DOM itself.
package content

import "strings"

// Page identifies one of the site's content-managed pages.
type Page string

const (
	PageNone       Page = ""
	PageMedia      Page = "media"
	PageAbout      Page = "about"
	PageTeaching   Page = "teaching"
	PageConsulting Page = "consulting"
	PageGallery    Page = "gallery"
	PageContact    Page = "contact"
	PageHome       Page = "home"
)

// Checked in order; the first match wins. Home is the root fallback.
var dispatchOrder = []Page{
	PageMedia,
	PageAbout,
	PageTeaching,
	PageConsulting,
	PageGallery,
	PageContact,
}

// Dispatch returns the page whose loader should run for path. It returns
// PageNone when no loader applies.
func Dispatch(path string) Page {
	for _, p := range dispatchOrder {
		if matchesPage(path, string(p)) {
			return p
		}
	}
	if path == "" || path == "/" || strings.HasSuffix(path, "/") || strings.Contains(path, "index.html") {
		return PageHome
	}
	return PageNone
}

func matchesPage(path, name string) bool {
	if strings.Contains(path, name+".html") {
		return true
	}
	trimmed := strings.Trim(path, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return trimmed == name
}
