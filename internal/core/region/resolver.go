// Package region maps free-form area names onto the canonical compass
// regions used by the environment endpoints.
package region

import (
	"strings"
)

// National is the sentinel region meaning nationwide.
const National = "national"

// Group lists the area names belonging to one canonical region.
type Group struct {
	Region string   `yaml:"region" json:"region"`
	Areas  []string `yaml:"areas" json:"areas"`
}

type entry struct {
	key    string
	region string
}

// Resolver is an immutable lookup from normalized area names to regions.
// It is safe for concurrent use.
type Resolver struct {
	entries []entry
	index   map[string]string
	regions []string
}

// NewResolver builds a resolver from an ordered table. Keys are normalized
// on the way in; when two keys collide the first one wins.
func NewResolver(groups []Group) *Resolver {
	r := &Resolver{index: make(map[string]string)}
	seenRegion := make(map[string]bool)

	for _, g := range groups {
		canonical := strings.ToLower(strings.TrimSpace(g.Region))
		if canonical == "" {
			continue
		}
		if !seenRegion[canonical] {
			seenRegion[canonical] = true
			r.regions = append(r.regions, canonical)
		}
		for _, area := range g.Areas {
			key := Normalize(area)
			if key == "" {
				continue
			}
			if _, exists := r.index[key]; exists {
				continue
			}
			r.index[key] = canonical
			r.entries = append(r.entries, entry{key: key, region: canonical})
		}
	}

	return r
}

// Normalize lower-cases s and strips every space and hyphen.
func Normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.ToLower(s))
}

// Resolve maps an area name to its region. Unknown names report false.
func (r *Resolver) Resolve(location string) (string, bool) {
	region, ok := r.index[Normalize(location)]
	return region, ok
}

// ExtractFromQuery returns the region of the first table key, in table
// order, found anywhere inside the query. Spaces are ignored; hyphens are
// kept. Queries naming no known area map to National.
func (r *Resolver) ExtractFromQuery(query string) string {
	compact := strings.ReplaceAll(strings.ToLower(query), " ", "")
	for _, e := range r.entries {
		if strings.Contains(compact, e.key) {
			return e.region
		}
	}
	return National
}

// Regions returns the canonical regions in table order.
func (r *Resolver) Regions() []string {
	out := make([]string, len(r.regions))
	copy(out, r.regions)
	return out
}

// IsKnownRegion reports whether name is one of the canonical regions.
func (r *Resolver) IsKnownRegion(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, region := range r.regions {
		if region == name {
			return true
		}
	}
	return false
}

// Len returns the number of area keys.
func (r *Resolver) Len() int {
	return len(r.entries)
}
