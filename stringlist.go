package psvi

// StringList is an ordered, read-only sequence of strings.
type StringList []string

// EmptyStringList is the shared empty sequence returned by accessors whose
// backing list is absent, so callers never branch on nil. It must not be
// appended to or mutated.
var EmptyStringList = StringList{}

// Len returns the number of items in the list.
func (l StringList) Len() int {
	return len(l)
}

// Item returns the item at the given index, or the empty string if the index
// is out of range.
func (l StringList) Item(i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}

// Contains returns true if the list contains the given string.
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}
