package content

// MutationKind says how a Mutation changes its target.
type MutationKind int

const (
	// SetText replaces textContent; the value is never parsed as markup.
	SetText MutationKind = iota
	// SetHTML replaces innerHTML with renderer output.
	SetHTML
	// SetAttr sets Attr on the target.
	SetAttr
	// ReplaceParagraphs removes the target's paragraphs other than After and
	// inserts Value immediately after the After element.
	ReplaceParagraphs
)

func (k MutationKind) String() string {
	switch k {
	case SetText:
		return "text"
	case SetHTML:
		return "html"
	case SetAttr:
		return "attr"
	case ReplaceParagraphs:
		return "paragraphs"
	default:
		return "unknown"
	}
}

// Mutation is one DOM change produced by a loader plan.
type Mutation struct {
	Selector string
	Kind     MutationKind
	Attr     string
	After    string
	Value    string
}

// Capabilities is the set of anchor selectors present on the current page.
// It is resolved once per page view, before the plan runs.
type Capabilities map[string]bool

// Has reports whether the anchor exists.
func (c Capabilities) Has(selector string) bool {
	return c[selector]
}

// AllAnchors returns capabilities claiming every anchor of the loader exists.
func AllAnchors(l Loader) Capabilities {
	caps := make(Capabilities, len(l.Anchors))
	for _, a := range l.Anchors {
		caps[a] = true
	}
	return caps
}

type planner struct {
	caps Capabilities
	out  []Mutation
}

// text, html and attr skip empty values and missing anchors, which is what
// keeps static fallback content in place for fields the payload leaves out.
func (p *planner) text(selector, value string) {
	if value == "" || !p.caps.Has(selector) {
		return
	}
	p.out = append(p.out, Mutation{Selector: selector, Kind: SetText, Value: value})
}

func (p *planner) html(selector, value string) {
	if value == "" || !p.caps.Has(selector) {
		return
	}
	p.out = append(p.out, Mutation{Selector: selector, Kind: SetHTML, Value: value})
}

func (p *planner) attr(selector, attr, value string) {
	if value == "" || !p.caps.Has(selector) {
		return
	}
	p.out = append(p.out, Mutation{Selector: selector, Kind: SetAttr, Attr: attr, Value: value})
}
