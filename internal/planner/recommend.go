package planner

import "github.com/campfinder/campfinder-server/internal/domain"

// NeighborhoodCatalog returns the entries located in one of the profile's
// selected neighborhoods, in catalog order. Every recommendation and filter
// starts from this subset.
func NeighborhoodCatalog(entries []domain.CatalogEntry, p *domain.Profile) []domain.CatalogEntry {
	out := []domain.CatalogEntry{}
	if p == nil || len(p.Neighborhoods) == 0 {
		return out
	}
	selected := toSet(p.Neighborhoods)
	for _, e := range entries {
		if _, ok := selected[e.Neighborhood]; ok {
			out = append(out, e)
		}
	}
	return out
}

// RecommendForKid returns neighborhood entries whose subcategory is one of the
// kid's interests. An out-of-range index or a kid without interests yields an
// empty result.
func RecommendForKid(entries []domain.CatalogEntry, p *domain.Profile, kidIndex int) []domain.CatalogEntry {
	if p == nil || kidIndex < 0 || kidIndex >= len(p.Kids) {
		return []domain.CatalogEntry{}
	}
	return bySubcategory(NeighborhoodCatalog(entries, p), toSet(p.Kids[kidIndex].Interests))
}

// OneDropoff returns neighborhood entries whose subcategory every kid is
// interested in. It needs at least two kids.
func OneDropoff(entries []domain.CatalogEntry, p *domain.Profile) []domain.CatalogEntry {
	if p == nil || len(p.Kids) < 2 {
		return []domain.CatalogEntry{}
	}
	return bySubcategory(NeighborhoodCatalog(entries, p), SharedInterests(p.Kids))
}

// Discover returns neighborhood entries in subcategories adjacent to, but not
// already among, the household's combined interests.
func Discover(entries []domain.CatalogEntry, p *domain.Profile, adjacency domain.AdjacencyMap) []domain.CatalogEntry {
	if p == nil {
		return []domain.CatalogEntry{}
	}
	frontier := Frontier(p.Kids, adjacency)
	if len(frontier) == 0 {
		return []domain.CatalogEntry{}
	}
	return bySubcategory(NeighborhoodCatalog(entries, p), frontier)
}

// SharedInterests returns the intersection of every kid's interests.
func SharedInterests(kids []domain.Kid) map[string]struct{} {
	shared := map[string]struct{}{}
	if len(kids) == 0 {
		return shared
	}
	for _, i := range kids[0].Interests {
		shared[i] = struct{}{}
	}
	for _, k := range kids[1:] {
		held := toSet(k.Interests)
		for i := range shared {
			if _, ok := held[i]; !ok {
				delete(shared, i)
			}
		}
	}
	return shared
}

// Frontier collects the adjacency targets of the combined interests that no
// kid holds yet. Edges are followed in their configured direction only.
func Frontier(kids []domain.Kid, adjacency domain.AdjacencyMap) map[string]struct{} {
	held := map[string]struct{}{}
	for _, k := range kids {
		for _, i := range k.Interests {
			held[i] = struct{}{}
		}
	}

	frontier := map[string]struct{}{}
	for sub := range held {
		for _, rel := range adjacency.Related(sub) {
			if _, ok := held[rel]; !ok {
				frontier[rel] = struct{}{}
			}
		}
	}
	return frontier
}

func bySubcategory(entries []domain.CatalogEntry, subs map[string]struct{}) []domain.CatalogEntry {
	out := []domain.CatalogEntry{}
	if len(subs) == 0 {
		return out
	}
	for _, e := range entries {
		if _, ok := subs[e.Subcategory]; ok {
			out = append(out, e)
		}
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
