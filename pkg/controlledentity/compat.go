package controlledentity

// CompatibilityFlags is the small bitset classifying how an entity
// conforms to the protocols this controller understands, per spec.md
// §3 ("a subset of {IEEE1722.1, Milan}") extended per SPEC_FULL.md
// §4.9 with Misbehaving: the original's CompatibilityFlag enum also
// carries a flag set when a Milan-profile entity is observed violating
// the profile, dropped from spec.md's GLOSSARY but genuinely useful
// diagnostics, so it is ported here.
type CompatibilityFlags uint8

const (
	// CompatibilityIEEE1722_1 marks an entity conforming to the base
	// IEEE 1722.1 AVDECC standard.
	CompatibilityIEEE1722_1 CompatibilityFlags = 1 << iota

	// CompatibilityMilan marks an entity additionally conforming to the
	// Milan industry profile.
	CompatibilityMilan

	// CompatibilityMisbehaving marks a Milan-profile entity observed
	// violating Milan requirements (e.g. a malformed or out-of-spec
	// response to a mandatory Milan query).
	CompatibilityMisbehaving
)

// Has reports whether flag is set.
func (f CompatibilityFlags) Has(flag CompatibilityFlags) bool { return f&flag != 0 }

// Set returns f with flag added.
func (f CompatibilityFlags) Set(flag CompatibilityFlags) CompatibilityFlags { return f | flag }

// Clear returns f with flag removed.
func (f CompatibilityFlags) Clear(flag CompatibilityFlags) CompatibilityFlags { return f &^ flag }

// String renders the set flags, "|"-separated, or "none".
func (f CompatibilityFlags) String() string {
	if f == 0 {
		return "none"
	}
	var out string
	for _, p := range []struct {
		flag CompatibilityFlags
		name string
	}{
		{CompatibilityIEEE1722_1, "IEEE1722.1"},
		{CompatibilityMilan, "Milan"},
		{CompatibilityMisbehaving, "Misbehaving"},
	} {
		if f.Has(p.flag) {
			if out != "" {
				out += "|"
			}
			out += p.name
		}
	}
	return out
}

// Names returns the set flags as individual strings, in the order
// IEEE1722.1, Milan, Misbehaving — used by the cache document's
// `compatibility_flags` array (spec.md §4.7).
func (f CompatibilityFlags) Names() []string {
	var names []string
	for _, p := range []struct {
		flag CompatibilityFlags
		name string
	}{
		{CompatibilityIEEE1722_1, "IEEE1722.1"},
		{CompatibilityMilan, "Milan"},
		{CompatibilityMisbehaving, "Misbehaving"},
	} {
		if f.Has(p.flag) {
			names = append(names, p.name)
		}
	}
	return names
}

// ParseCompatibilityFlags reconstructs a CompatibilityFlags from the
// string names Names produces, ignoring unrecognized entries — used
// when loading a cache document written by a compatible future
// version that defines flags this build doesn't know about.
func ParseCompatibilityFlags(names []string) CompatibilityFlags {
	var f CompatibilityFlags
	for _, name := range names {
		switch name {
		case "IEEE1722.1":
			f = f.Set(CompatibilityIEEE1722_1)
		case "Milan":
			f = f.Set(CompatibilityMilan)
		case "Misbehaving":
			f = f.Set(CompatibilityMisbehaving)
		}
	}
	return f
}
