package domain

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Profile is a household's planning profile.
// Kid order is the index space referenced by Schedule assignments.
type Profile struct {
	District      string   `json:"district"`
	SummerStart   string   `json:"summerStart"` // last day of school
	SummerEnd     string   `json:"summerEnd"`   // first day of the next school year
	Neighborhoods []string `json:"neighborhoods"`
	Kids          []Kid    `json:"kids"`

	// LegacyInterests is the household-wide interest list written by older
	// clients. It is only read during migration and never written back.
	LegacyInterests []string `json:"interests,omitempty"`
}

// Kid is a single child in a profile.
// A nil Interests slice means the field was missing from stored data.
type Kid struct {
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Color     string   `json:"color"`
	Interests []string `json:"interests"`
}

// Onboarded reports whether the profile has enough data to plan with.
func (p *Profile) Onboarded() bool {
	return p != nil && len(p.Kids) > 0 && len(p.Neighborhoods) > 0
}

// KidNames returns the kid names in index order.
func (p *Profile) KidNames() []string {
	names := make([]string, len(p.Kids))
	for i, k := range p.Kids {
		names[i] = k.Name
	}
	return names
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Neighborhoods = cloneStrings(p.Neighborhoods)
	c.LegacyInterests = cloneStrings(p.LegacyInterests)
	if p.Kids != nil {
		c.Kids = make([]Kid, len(p.Kids))
		for i, k := range p.Kids {
			k.Interests = cloneStrings(k.Interests)
			c.Kids[i] = k
		}
	}
	return &c
}

// HasInterest reports whether the kid is interested in the subcategory.
func (k Kid) HasInterest(subcategory string) bool {
	for _, i := range k.Interests {
		if i == subcategory {
			return true
		}
	}
	return false
}

// Initial returns the first character of the kid's name.
func (k Kid) Initial() string {
	for _, r := range k.Name {
		return string(r)
	}
	return ""
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
