package alias

import (
	"path"
	"strings"
)

// DefaultZone is the path fragment that activates enforcement.
var DefaultZone = JoinPath("src", "app", "routes")

// Config is the immutable input of a Classifier.
type Config struct {
	Zone     string
	Mappings Mappings
}

// Classifier decides whether import specifiers use their canonical alias.
type Classifier struct {
	zone     string
	mappings Mappings
}

// NewClassifier creates a classifier. An empty zone falls back to DefaultZone.
// The mappings are copied so later changes by the caller have no effect.
func NewClassifier(cfg Config) *Classifier {
	zone := NormalizePath(cfg.Zone)
	if zone == "" {
		zone = DefaultZone
	}
	mappings := make(Mappings, len(cfg.Mappings))
	copy(mappings, cfg.Mappings)
	return &Classifier{zone: zone, mappings: mappings}
}

// Zone returns the normalized zone marker.
func (c *Classifier) Zone() string {
	return c.zone
}

// Mappings returns a copy of the configured mappings.
func (c *Classifier) Mappings() Mappings {
	out := make(Mappings, len(c.mappings))
	copy(out, c.mappings)
	return out
}

// InZone reports whether filePath lies under the classifier's zone.
func (c *Classifier) InZone(filePath string) bool {
	return IsInZone(filePath, c.zone)
}

// Classify returns the canonical alias for specifier when the import in
// filePath must be rewritten. ok is false when there is nothing to report:
// the file is outside the zone, the target is not governed by a mapping,
// the import is an allowed subdirectory import, or it is already canonical.
//
// specifier may be quoted; quotes never take part in the comparison.
func (c *Classifier) Classify(filePath, specifier string) (canonical string, ok bool) {
	if !c.InZone(filePath) {
		return "", false
	}

	text := Unquote(specifier)
	segments, ok := c.segments(NormalizePath(filePath), text)
	if !ok || len(segments) == 0 {
		return "", false
	}

	mapping, found := c.mappings.Lookup(segments[0])
	if !found {
		return "", false
	}
	if len(segments) > 1 && mapping.AllowSubdirectories {
		return "", false
	}

	canonical = mapping.Alias()
	if canonical == text {
		return "", false
	}
	return canonical, true
}

// segments breaks the specifier into the path segments that are matched
// against the mappings. Alias specifiers are split as written; anything else
// is resolved against the consumer path and only the part below the zone is
// kept.
func (c *Classifier) segments(filePath, text string) ([]string, bool) {
	if strings.HasPrefix(text, Marker) {
		return strings.Split(text[len(Marker):], Separator), true
	}

	// Only the part between the first and second occurrence of the zone counts.
	parts := strings.Split(resolve(filePath, text), c.zone)
	if len(parts) < 2 {
		return nil, false
	}

	var segments []string
	for _, s := range strings.Split(parts[1], Separator) {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments, true
}

// resolve joins a relative specifier onto the consumer path. The consumer
// path itself counts as a level, so "../x" from "a/b.ts" lands on "a/x".
func resolve(filePath, text string) string {
	text = NormalizePath(text)
	if strings.HasPrefix(text, Separator) {
		return path.Clean(text)
	}
	return path.Join(filePath, text)
}

// IsInZone reports whether the normalized filePath contains the normalized zone.
func IsInZone(filePath, zone string) bool {
	zone = NormalizePath(zone)
	if zone == "" {
		return false
	}
	return strings.Contains(NormalizePath(filePath), zone)
}

// NormalizePath converts every backslash to the import separator.
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, Separator)
}

// JoinPath joins and cleans elements with the import separator regardless
// of the host platform.
func JoinPath(elem ...string) string {
	parts := make([]string, len(elem))
	for i, e := range elem {
		parts[i] = NormalizePath(e)
	}
	return path.Join(parts...)
}
