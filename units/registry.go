package units

import "strings"

// Registry is the immutable, loaded-once index of dimensions and units.
type Registry struct {
	Dimensions map[string]*Dimension
	Units      map[string]*Unit

	byCaseSensitiveName map[string][]*Unit
	byLowercaseName     map[string][]*Unit
	trie                *Trie
}

// NewRegistry creates an empty Registry ready for Add calls.
func NewRegistry() *Registry {
	return &Registry{
		Dimensions:          map[string]*Dimension{},
		Units:               map[string]*Unit{},
		byCaseSensitiveName: map[string][]*Unit{},
		byLowercaseName:     map[string][]*Unit{},
		trie:                NewTrie(),
	}
}

// AddDimension registers a dimension.
func (r *Registry) AddDimension(d *Dimension) {
	r.Dimensions[d.ID] = d
}

// AddUnit registers a unit and indexes all of its name spellings.
func (r *Registry) AddUnit(u *Unit) {
	r.Units[u.ID] = u
	for _, name := range u.Names {
		r.byCaseSensitiveName[name] = append(r.byCaseSensitiveName[name], u)
		lower := strings.ToLower(name)
		r.byLowercaseName[lower] = append(r.byLowercaseName[lower], u)
		r.trie.Insert(name, u)
	}
}

// Trie exposes the longest-match trie for the lexer/classifier.
func (r *Registry) Trie() *Trie { return r.trie }

// ByExactName looks up units whose name spelling matches exactly.
func (r *Registry) ByExactName(name string) ([]*Unit, bool) {
	units, ok := r.byCaseSensitiveName[name]
	return units, ok
}

// ByLowercaseName looks up units case-insensitively.
func (r *Registry) ByLowercaseName(name string) ([]*Unit, bool) {
	units, ok := r.byLowercaseName[strings.ToLower(name)]
	return units, ok
}

// IsExactUnitName reports whether name matches a unit spelling exactly.
func (r *Registry) IsExactUnitName(name string) bool {
	_, ok := r.byCaseSensitiveName[name]
	return ok
}

// IsCaseInsensitiveUnitName reports whether name matches a unit spelling
// case-insensitively.
func (r *Registry) IsCaseInsensitiveUnitName(name string) bool {
	_, ok := r.byLowercaseName[strings.ToLower(name)]
	return ok
}

// Resolve picks one unit for a name, preferring an exact case-sensitive
// match and falling back to the first case-insensitive match.
func (r *Registry) Resolve(name string) (*Unit, bool) {
	if exact, ok := r.byCaseSensitiveName[name]; ok && len(exact) > 0 {
		return exact[0], true
	}
	if ci, ok := r.byLowercaseName[strings.ToLower(name)]; ok && len(ci) > 0 {
		return ci[0], true
	}
	return nil, false
}

// DimensionOf returns the dimension a unit belongs to.
func (r *Registry) DimensionOf(u *Unit) (*Dimension, bool) {
	d, ok := r.Dimensions[u.DimensionID]
	return d, ok
}
