package voxel

import "testing"

func TestBaseIDAndProps(t *testing.T) {
	if got := BaseID("oak_stairs[facing=north,half=bottom]"); got != "oak_stairs" {
		t.Errorf("BaseID: got %q", got)
	}
	if got := BaseID("stone"); got != "stone" {
		t.Errorf("BaseID bare: got %q", got)
	}
	props := Props("oak_stairs[facing=north,half=bottom]")
	if len(props) != 2 || props[0] != "facing=north" || props[1] != "half=bottom" {
		t.Errorf("Props: got %v", props)
	}
	if Props("stone") != nil {
		t.Error("Props on bare id should be nil")
	}
}

func TestWith(t *testing.T) {
	tests := []struct {
		state string
		props []string
		want  string
	}{
		{"oak_door", []string{"facing=east"}, "oak_door[facing=east]"},
		{"oak_door[facing=east]", []string{"half=upper"}, "oak_door[facing=east,half=upper]"},
		{"oak_door[facing=east,half=lower]", []string{"facing=west"}, "oak_door[half=lower,facing=west]"},
	}
	for _, tt := range tests {
		if got := With(tt.state, tt.props...); got != tt.want {
			t.Errorf("With(%q, %v): got %q, want %q", tt.state, tt.props, got, tt.want)
		}
	}
}

func TestFlipNorthSouth(t *testing.T) {
	tests := []struct{ in, want string }{
		{"oak_door[facing=north,half=lower]", "oak_door[facing=south,half=lower]"},
		{"wall_torch[facing=south]", "wall_torch[facing=north]"},
		{"oak_stairs[facing=east]", "oak_stairs[facing=east]"},
		{"stone", "stone"},
	}
	for _, tt := range tests {
		if got := FlipNorthSouth(tt.in); got != tt.want {
			t.Errorf("FlipNorthSouth(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAxisVariant(t *testing.T) {
	if got := AxisVariant("dark_oak_log", "z"); got != "dark_oak_log[axis=z]" {
		t.Errorf("log variant: got %q", got)
	}
	if got := AxisVariant("quartz_pillar", "x"); got != "quartz_pillar[axis=x]" {
		t.Errorf("pillar variant: got %q", got)
	}
	if got := AxisVariant("polished_basalt", "y"); got != "polished_basalt[axis=y]" {
		t.Errorf("basalt variant: got %q", got)
	}
	// Blocks without an axis property pass through unchanged.
	if got := AxisVariant("prismarine_bricks", "y"); got != "prismarine_bricks" {
		t.Errorf("axis-less variant: got %q", got)
	}
}
