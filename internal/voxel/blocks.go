package voxel

import "strings"

// Block states are either a bare id ("oak_planks") or an id with a
// property list ("oak_stairs[facing=north,half=bottom]"). These helpers do
// the string work so builders never hand-assemble brackets.

// IsAir reports whether a state is empty. The empty string counts as air
// so zero values behave sensibly.
func IsAir(state string) bool {
	return state == "" || state == Air
}

// BaseID strips the property list from a state.
func BaseID(state string) string {
	if i := strings.IndexByte(state, '['); i >= 0 {
		return state[:i]
	}
	return state
}

// Props returns the property list of a state as "key=value" strings.
func Props(state string) []string {
	i := strings.IndexByte(state, '[')
	if i < 0 || !strings.HasSuffix(state, "]") {
		return nil
	}
	return strings.Split(state[i+1:len(state)-1], ",")
}

// With returns the state with extra properties appended. Existing
// properties with the same key are replaced.
func With(state string, props ...string) string {
	if len(props) == 0 {
		return state
	}
	base := BaseID(state)
	existing := Props(state)

	merged := make([]string, 0, len(existing)+len(props))
	for _, p := range existing {
		key := p[:strings.IndexByte(p, '=')+1]
		replaced := false
		for _, np := range props {
			if strings.HasPrefix(np, key) {
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, p)
		}
	}
	merged = append(merged, props...)
	return base + "[" + strings.Join(merged, ",") + "]"
}

// FlipNorthSouth swaps facing=north and facing=south in a state's
// properties. Mirroring a structure across the Z axis uses this to keep
// doors, stairs and torches pointing the right way.
func FlipNorthSouth(state string) string {
	switch {
	case strings.Contains(state, "facing=north"):
		return strings.Replace(state, "facing=north", "facing=south", 1)
	case strings.Contains(state, "facing=south"):
		return strings.Replace(state, "facing=south", "facing=north", 1)
	}
	return state
}

// axisBases are the id suffixes (or exact ids) that carry an axis property.
var axisBases = []string{"_log", "_wood", "_stem", "_hyphae", "_pillar"}

var axisExact = map[string]bool{
	"basalt":          true,
	"polished_basalt": true,
	"bone_block":      true,
	"hay_block":       true,
	"deepslate":       true,
}

// SupportsAxis reports whether a base block id carries an axis property.
func SupportsAxis(base string) bool {
	if axisExact[base] {
		return true
	}
	for _, suffix := range axisBases {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// AxisVariant returns base[axis=a] for axis-capable blocks and the base
// unchanged otherwise, so palettes can substitute plain blocks for timber.
func AxisVariant(base, axis string) string {
	if !SupportsAxis(base) {
		return base
	}
	return base + "[axis=" + axis + "]"
}
