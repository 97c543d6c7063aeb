package tap3ber

/*
dict.go implements the schema dictionary: an immutable, tag-keyed lookup
table for one (version, release) pair. Entries are sorted by tag at
registration time so lookup can binary-search in O(log n).
*/

import "sort"

// FieldType is the decoded type a Dictionary entry projects its Raw Node
// value into.
type FieldType uint8

const (
	TypeGroup FieldType = iota
	TypeInteger
	TypeInteger64
	TypeOctetString
	TypeBCDString
)

type dictEntry struct {
	Tag  int
	Name string
	Type FieldType
}

// Dictionary is an immutable, tag-sorted lookup table for one TAP3
// (version, release) pair. A zero-value Dictionary (no entries) is a valid,
// "known but empty" schema, distinct from an unregistered (version,
// release) pair: see the 3.3/3.9/3.10/3.12 placeholder releases below.
type Dictionary struct {
	entries []dictEntry
}

func newDictionary(entries []dictEntry) *Dictionary {
	sorted := append([]dictEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Tag < sorted[j].Tag })
	return &Dictionary{entries: sorted}
}

// lookup returns the entry registered for tag, if any.
func (d *Dictionary) lookup(tag int) (dictEntry, bool) {
	if d == nil {
		return dictEntry{}, false
	}
	entries := d.entries
	i := sort.Search(len(entries), func(i int) bool { return entries[i].Tag >= tag })
	if i < len(entries) && entries[i].Tag == tag {
		return entries[i], true
	}
	return dictEntry{}, false
}

// Len reports how many entries the dictionary carries.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

type dictKey struct{ version, release int }

var dictionaries = map[dictKey]*Dictionary{
	{3, 3}:  newDictionary(nil),
	{3, 9}:  newDictionary(nil),
	{3, 10}: newDictionary(nil),
	{3, 11}: newDictionary(tap311Entries),
	{3, 12}: newDictionary(nil),
}

// lookupDictionary returns the registered Dictionary for (version, release),
// if one exists.
func lookupDictionary(version, release int) (*Dictionary, bool) {
	d, ok := dictionaries[dictKey{version, release}]
	return d, ok
}
