package domain

// CatalogEntry is a single camp offering. Entries are read-only.
type CatalogEntry struct {
	ID                   string   `json:"id" yaml:"id"`
	Name                 string   `json:"name" yaml:"name"`
	Provider             string   `json:"provider" yaml:"provider"`
	Category             string   `json:"category" yaml:"category"`
	Subcategory          string   `json:"subcategory" yaml:"subcategory"`
	Tags                 []string `json:"tags" yaml:"tags"`
	Neighborhood         string   `json:"neighborhood" yaml:"neighborhood"`
	Description          string   `json:"description" yaml:"description"`
	Sentiment            string   `json:"sentiment,omitempty" yaml:"sentiment"`
	AgeRange             string   `json:"ageRange" yaml:"ageRange"`
	Cost                 string   `json:"cost" yaml:"cost"`
	Location             string   `json:"location" yaml:"location"`
	URL                  string   `json:"url" yaml:"url"`
	RegistrationDeadline string   `json:"registrationDeadline" yaml:"registrationDeadline"`
	Documents            []string `json:"documents" yaml:"documents"`
	Weeks                []string `json:"weeks" yaml:"weeks"`
}

// OffersWeek reports whether the entry runs during the given week.
func (e *CatalogEntry) OffersWeek(weekID string) bool {
	for _, w := range e.Weeks {
		if w == weekID {
			return true
		}
	}
	return false
}

// Category is a top-level activity grouping.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}

// Subcategory is the finest activity classification. Kid interests are
// subcategory ids.
type Subcategory struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Icon     string `json:"icon" yaml:"icon"`
	Category string `json:"category" yaml:"-"`
}

// Neighborhood is a selectable geographic area.
type Neighborhood struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// NeighborhoodArea groups neighborhoods for display.
type NeighborhoodArea struct {
	Area          string         `json:"area" yaml:"area"`
	Neighborhoods []Neighborhood `json:"neighborhoods" yaml:"neighborhoods"`
}

// District is a school district with its known summer boundary dates.
// Either date may be nil when the district has no published calendar.
type District struct {
	ID       string  `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	LastDay  *string `json:"lastDay" yaml:"lastDay"`
	FirstDay *string `json:"firstDay" yaml:"firstDay"`
}

// HasDates reports whether both boundary dates are known.
func (d District) HasDates() bool {
	return d.LastDay != nil && *d.LastDay != "" && d.FirstDay != nil && *d.FirstDay != ""
}

// Well-known identifiers.
const (
	DefaultDistrictID = "bsd405"
	OtherDistrictID   = "other"
)

// AdjacencyMap is a directed relation from a subcategory to related
// subcategories. An edge a->b does not imply b->a.
type AdjacencyMap struct {
	edges map[string][]string
}

// NewAdjacencyMap copies edges into an immutable adjacency map.
func NewAdjacencyMap(edges map[string][]string) AdjacencyMap {
	m := make(map[string][]string, len(edges))
	for from, to := range edges {
		m[from] = cloneStrings(to)
	}
	return AdjacencyMap{edges: m}
}

// Related returns the subcategories adjacent to sub, in configured order.
func (a AdjacencyMap) Related(sub string) []string {
	return cloneStrings(a.edges[sub])
}

// Len returns the number of subcategories with outgoing edges.
func (a AdjacencyMap) Len() int {
	return len(a.edges)
}
