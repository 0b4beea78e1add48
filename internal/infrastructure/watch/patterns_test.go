package watch

import "testing"

func TestNameFilter_Matches(t *testing.T) {
	f := NewNameFilter("*.spec.yaml")

	tests := []struct {
		path string
		want bool
	}{
		{"/repo/specs/orders.spec.yaml", true},
		{"orders.spec.yaml", true},
		{"/repo/specs/notes.yaml", false},
		{"/repo/specs/.orders.spec.yaml.swp", false},
		{"/repo/specs/orders.spec.yaml~", false},
		{"/repo/specs/.#orders.spec.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := f.Matches(tt.path); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNameFilter_NoInclude(t *testing.T) {
	f := NewNameFilter()
	if !f.Matches("/repo/anything.txt") {
		t.Error("expected every regular name to match without include patterns")
	}
	if f.Matches("/repo/file~") {
		t.Error("backup files are always excluded")
	}
}
