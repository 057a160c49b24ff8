package directory

// CityDirectory is the read-only list of "City, Region" entries the location search runs over.
type CityDirectory interface {
	// All returns the entries in directory order. Callers get their own copy.
	All() []string
	// Len returns the number of entries.
	Len() int
}

type staticCityDirectory struct {
	entries []string
}

var _ CityDirectory = (*staticCityDirectory)(nil)

// NewStaticCityDirectory builds a directory from entries, keeping the first occurrence of
// any repeated entry so the result is deduplicated and ordered.
func NewStaticCityDirectory(entries []string) CityDirectory {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		unique = append(unique, entry)
	}
	return &staticCityDirectory{entries: unique}
}

// NewDefaultCityDirectory returns the built-in world city list.
func NewDefaultCityDirectory() CityDirectory {
	return NewStaticCityDirectory(worldCities)
}

func (d *staticCityDirectory) All() []string {
	out := make([]string, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *staticCityDirectory) Len() int {
	return len(d.entries)
}
