package catalog

import "fmt"

// NotFoundError reports a lookup for an archetype id the catalog does not
// contain. It is a configuration/integration error, never silently defaulted.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("archetype %q not found in catalog", e.ID)
}

// Catalog is an immutable registry of archetypes keyed by id.
type Catalog struct {
	archetypes map[string]*Archetype
	order      []string
}

// New builds a Catalog from the given archetypes, validating each and
// rejecting duplicate ids.
//
// Precondition: archetypes must be non-empty.
// Postcondition: Returns a catalog serving every input archetype, or an error.
func New(archetypes ...*Archetype) (*Catalog, error) {
	if len(archetypes) == 0 {
		return nil, fmt.Errorf("catalog: at least one archetype is required")
	}
	c := &Catalog{archetypes: make(map[string]*Archetype, len(archetypes))}
	for _, a := range archetypes {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.archetypes[a.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate archetype id %q", a.ID)
		}
		c.archetypes[a.ID] = a
		c.order = append(c.order, a.ID)
	}
	return c, nil
}

// Archetype returns the archetype with the given id.
//
// Postcondition: Returns a non-nil archetype, or a *NotFoundError.
func (c *Catalog) Archetype(id string) (*Archetype, error) {
	a, ok := c.archetypes[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return a, nil
}

// All returns the archetypes in registration order. The slice is freshly
// allocated; the pointed-to archetypes are shared and must not be mutated.
func (c *Catalog) All() []*Archetype {
	out := make([]*Archetype, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.archetypes[id])
	}
	return out
}

// Len returns the number of archetypes in the catalog.
func (c *Catalog) Len() int { return len(c.archetypes) }
