package model

// CatalogEntry is one declared category or location
type CatalogEntry struct {
	ID   string
	Name string
}

// Catalog holds the equipment categories and locations declared in the
// app config. An empty list leaves that dimension unrestricted, so the
// service runs without a config file.
type Catalog struct {
	Categories []CatalogEntry
	Locations  []CatalogEntry
}

// HasCategory reports whether the category is declared. Always true
// when no categories are configured.
func (c *Catalog) HasCategory(id string) bool {
	if len(c.Categories) == 0 {
		return true
	}
	for _, e := range c.Categories {
		if e.ID == id {
			return true
		}
	}
	return false
}

// HasLocation reports whether the location is declared. Always true
// when no locations are configured.
func (c *Catalog) HasLocation(id string) bool {
	if len(c.Locations) == 0 {
		return true
	}
	for _, e := range c.Locations {
		if e.ID == id {
			return true
		}
	}
	return false
}
