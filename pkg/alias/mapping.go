package alias

import "strings"

const (
	// Marker prefixes every path-mapped import specifier.
	Marker = "@"

	// Separator is the import path separator on every platform.
	Separator = "/"
)

// DefaultEntries are used when no path mappings are configured.
var DefaultEntries = []string{"@core", "@shared"}

// Mapping is a single configured alias.
type Mapping struct {
	Prefix              string // alias name without the marker, e.g. "core"
	AllowSubdirectories bool   // entry was written with a subdirectory wildcard, e.g. "@core/*"
}

// Alias returns the canonical specifier for the mapping.
func (m Mapping) Alias() string {
	return Marker + m.Prefix
}

// Mappings is an ordered set of aliases. Prefixes are not required to be
// unique; Lookup returns the first match.
type Mappings []Mapping

// ParseMappings converts raw configuration entries into mappings.
// Entries that do not start with the marker are dropped.
func ParseMappings(entries []string) Mappings {
	res := make(Mappings, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasPrefix(entry, Marker) {
			continue
		}
		parts := strings.Split(entry, Separator)
		res = append(res, Mapping{
			Prefix:              strings.TrimPrefix(parts[0], Marker),
			AllowSubdirectories: len(parts) > 1,
		})
	}
	return res
}

// DefaultMappings returns the mappings for DefaultEntries.
func DefaultMappings() Mappings {
	return ParseMappings(DefaultEntries)
}

// Lookup returns the first mapping whose prefix equals prefix.
func (ms Mappings) Lookup(prefix string) (Mapping, bool) {
	for _, m := range ms {
		if m.Prefix == prefix {
			return m, true
		}
	}
	return Mapping{}, false
}
