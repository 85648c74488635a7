package domain

// Selector values that disable the category and subcategory predicates.
const (
	AllCategories    = "all-camps"
	AllSubcategories = "all"
)

// Query is the browse selection passed into filtering on each request.
type Query struct {
	Text        string `json:"text,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

// CategoryActive reports whether a specific category is selected.
func (q Query) CategoryActive() bool {
	return q.Category != "" && q.Category != AllCategories
}

// SubcategoryActive reports whether a specific subcategory narrows the
// selection. It is ignored unless a category is selected too.
func (q Query) SubcategoryActive() bool {
	return q.CategoryActive() && q.Subcategory != "" && q.Subcategory != AllSubcategories
}
