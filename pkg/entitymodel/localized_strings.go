package entitymodel

// LocalizedStringReference is a 16-bit wire value encoding an offset
// into a STRINGS descriptor plus which of up to 8 STRINGS descriptors
// (relative to a locale's base) holds it: bits 15:3 are the offset,
// bits 2:0 the strings index, per spec.md §4.2.2.
type LocalizedStringReference uint16

const (
	stringsIndexBits = 3
	stringsIndexMask = (1 << stringsIndexBits) - 1
)

// Decode splits the reference into (offset, stringsIndex).
func (r LocalizedStringReference) Decode() (offset uint16, stringsIndex uint16) {
	v := uint16(r)
	return v >> stringsIndexBits, v & stringsIndexMask
}

// IsNull reports whether r is the wire sentinel for "no string",
// 0xFFFF.
func (r LocalizedStringReference) IsNull() bool {
	return r == 0xFFFF
}

// GetLocalizedString resolves ref against the configuration's
// currently selected locale range, returning the empty string if the
// reference is null, out of range, or the backing STRINGS descriptor is
// missing, per spec.md §4.2.2.
func (c *ConfigurationTree) GetLocalizedString(ref LocalizedStringReference) AvdeccFixedString {
	if ref.IsNull() {
		return ""
	}
	offset, stringsIndex := ref.Decode()
	if stringsIndex >= uint16(c.SelectedLocaleCount) {
		return ""
	}
	absoluteIndex := StringsIndex(c.SelectedLocaleBase) + StringsIndex(stringsIndex)
	node, ok := c.Strings.Get(absoluteIndex)
	if !ok {
		return ""
	}
	if int(offset) >= len(node.Static.Strings) {
		return ""
	}
	return node.Static.Strings[offset]
}

// SetLocalizedStrings copies strings into the STRINGS descriptor at
// base+relativeIndex, per spec.md §4.2.2's setLocalizedStrings.
func (c *ConfigurationTree) SetLocalizedStrings(base StringsIndex, relativeIndex StringsIndex, strings [7]AvdeccFixedString) {
	idx := base + relativeIndex
	node, ok := c.Strings.Get(idx)
	if !ok {
		node = &StringsNode{Header: NodeHeader{DescriptorType: DescriptorStrings, DescriptorIndex: idx}}
	}
	node.Static.Strings = strings
	c.Strings.Set(idx, node)
}
