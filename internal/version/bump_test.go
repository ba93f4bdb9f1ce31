package version

import "testing"

func TestVersion_Bump(t *testing.T) {
	tests := []struct {
		name      string
		version   Version
		component Component
		want      Version
	}{
		{
			name:      "bump major resets lower components",
			version:   Version{1, 2, 3},
			component: Major,
			want:      Version{2, 0, 0},
		},
		{
			name:      "bump minor resets patch",
			version:   Version{1, 2, 3},
			component: Minor,
			want:      Version{1, 3, 0},
		},
		{
			name:      "bump patch keeps higher components",
			version:   Version{1, 2, 3},
			component: Patch,
			want:      Version{1, 2, 4},
		},
		{
			name:      "bump minor from zero",
			version:   Version{},
			component: Minor,
			want:      Version{0, 1, 0},
		},
		{
			name:      "bump unknown component is a no-op",
			version:   Version{1, 2, 3},
			component: Component(42),
			want:      Version{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.Bump(tt.component); got != tt.want {
				t.Errorf("Bump(%s) = %v, want %v", tt.component, got, tt.want)
			}
		})
	}
}

// The canonical bump chain from 0.0.0 through a first stable release.
func TestVersion_BumpChain(t *testing.T) {
	steps := []struct {
		component Component
		want      string
	}{
		{Minor, "0.1.0"},
		{Patch, "0.1.1"},
		{Minor, "0.2.0"},
		{Major, "1.0.0"},
		{Patch, "1.0.1"},
	}

	v := Zero()
	for _, step := range steps {
		v = v.Bump(step.component)
		if v.String() != step.want {
			t.Fatalf("bump chain: got %s, want %s", v, step.want)
		}
	}
}

func TestVersion_BumpDoesNotMutateInput(t *testing.T) {
	v := Version{1, 2, 3}
	_ = v.Bump(Major)
	if v != (Version{1, 2, 3}) {
		t.Errorf("Bump mutated its receiver: %v", v)
	}
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		input   string
		want    Component
		wantErr bool
	}{
		{"major", Major, false},
		{"minor", Minor, false},
		{"patch", Patch, false},
		{"MAJOR", 0, true},
		{"none", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComponent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseComponent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseComponent(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComponent_String(t *testing.T) {
	tests := []struct {
		component Component
		want      string
	}{
		{Major, "major"},
		{Minor, "minor"},
		{Patch, "patch"},
		{Component(42), "component(42)"},
	}

	for _, tt := range tests {
		if got := tt.component.String(); got != tt.want {
			t.Errorf("Component.String() = %q, want %q", got, tt.want)
		}
	}
}
