// Package chrome holds the layout rules behind the navigation and section
// effects shared by every page.
package chrome

import "strings"

const (
	// NavbarScrollThreshold is the scroll offset past which the navbar turns solid.
	NavbarScrollThreshold = 100
	// AnchorScrollOffset keeps in-page link targets clear of the fixed header.
	AnchorScrollOffset = 70

	RevealThreshold  = 0.1
	RevealRootMargin = "0px 0px -50px 0px"
)

// NavbarStyle is the navbar appearance at a scroll position.
type NavbarStyle struct {
	Scrolled   bool
	Background string
	BoxShadow  string
}

// NavbarStyleAt returns the navbar appearance for scrollY.
func NavbarStyleAt(scrollY float64) NavbarStyle {
	if scrollY > NavbarScrollThreshold {
		return NavbarStyle{Scrolled: true, Background: "rgba(26, 26, 26, 0.98)", BoxShadow: "0 2px 10px rgba(0, 0, 0, 0.1)"}
	}
	return NavbarStyle{Background: "rgba(26, 26, 26, 0.95)", BoxShadow: "none"}
}

// AnchorTarget returns the element ID an in-page link points at. A bare "#"
// has no target.
func AnchorTarget(href string) (string, bool) {
	id, ok := strings.CutPrefix(strings.TrimSpace(href), "#")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// ScrollTop is the document offset to scroll to so an element whose viewport
// top is elementTop lands just below the header.
func ScrollTop(elementTop, pageYOffset float64) float64 {
	return elementTop + pageYOffset - AnchorScrollOffset
}

// SectionStyle is the inline style applied to a section for the fade-in.
type SectionStyle struct {
	Opacity    string
	Transform  string
	Transition string
}

var (
	// HiddenSection is applied before a section scrolls into view.
	HiddenSection = SectionStyle{Opacity: "0", Transform: "translateY(20px)", Transition: "opacity 0.6s ease, transform 0.6s ease"}
	// RevealedSection is applied once it intersects the viewport.
	RevealedSection = SectionStyle{Opacity: "1", Transform: "translateY(0)"}
)
