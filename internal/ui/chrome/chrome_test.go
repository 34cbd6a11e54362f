package chrome

import "testing"

func TestNavbarStyleAt(t *testing.T) {
	if got := NavbarStyleAt(NavbarScrollThreshold); got.Scrolled || got.BoxShadow != "none" {
		t.Fatalf("expected top style at the threshold, got %+v", got)
	}
	if got := NavbarStyleAt(NavbarScrollThreshold + 1); !got.Scrolled || got.Background != "rgba(26, 26, 26, 0.98)" {
		t.Fatalf("expected scrolled style past the threshold, got %+v", got)
	}
}

func TestAnchorTarget(t *testing.T) {
	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{"#contact", "contact", true},
		{" #media ", "media", true},
		{"#", "", false},
		{"", "", false},
		{"/about.html#bio", "", false},
	}
	for _, tc := range tests {
		got, ok := AnchorTarget(tc.href)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("AnchorTarget(%q) = %q, %v; want %q, %v", tc.href, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestScrollTopLeavesHeaderOffset(t *testing.T) {
	if got := ScrollTop(400, 1200); got != 1530 {
		t.Fatalf("expected 1530, got %v", got)
	}
	if got := ScrollTop(-50, 0); got != -120 {
		t.Fatalf("expected -120, got %v", got)
	}
}

func TestSectionStyles(t *testing.T) {
	if HiddenSection.Opacity != "0" || HiddenSection.Transition == "" {
		t.Fatalf("unexpected hidden style %+v", HiddenSection)
	}
	if RevealedSection.Opacity != "1" || RevealedSection.Transform != "translateY(0)" {
		t.Fatalf("unexpected revealed style %+v", RevealedSection)
	}
}
