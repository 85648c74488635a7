package planner

import "github.com/campfinder/campfinder-server/internal/domain"

func testEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		{ID: "code-ninjas", Name: "Code Ninjas Camp", Provider: "Code Ninjas", Category: "stem", Subcategory: "coding", Tags: []string{"python", "games"}, Neighborhood: "bellevue", Description: "Build video games.", AgeRange: "7-14", Weeks: []string{"w01", "w02", "w03"}},
		{ID: "lego-eng", Name: "LEGO Engineering", Provider: "Play-Well", Category: "stem", Subcategory: "engineering", Tags: []string{"lego"}, Neighborhood: "kirkland", Description: "Bridges and machines.", AgeRange: "5–9", Weeks: []string{"w02"}},
		{ID: "pixel-art", Name: "Pixel Art Studio", Provider: "Studio East", Category: "arts", Subcategory: "digital-arts", Tags: []string{"animation"}, Neighborhood: "bellevue", Description: "Digital drawing.", AgeRange: "8-12", Weeks: []string{"w01", "w99"}},
		{ID: "seattle-code", Name: "Seattle Coding Club", Provider: "Coders", Category: "stem", Subcategory: "coding", Neighborhood: "seattle", Description: "Outside the area.", AgeRange: "6-12", Weeks: []string{"w01"}},
		{ID: "ballet", Name: "Summer Ballet", Provider: "Pacific Dance", Category: "arts", Subcategory: "dance", Tags: []string{"ballet"}, Neighborhood: "kirkland", Description: "Classical technique.", AgeRange: "Ages 6 to 10", Weeks: []string{"w03"}},
	}
}

func testCategories() []domain.Category {
	return []domain.Category{
		{ID: "stem", Label: "STEM", Icon: "🔬", Color: "#2980b9"},
		{ID: "arts", Label: "Arts", Icon: "🎨", Color: "#8B4E8B"},
	}
}

func testSubcategories() map[string]domain.Subcategory {
	return map[string]domain.Subcategory{
		"coding":       {ID: "coding", Label: "Coding", Category: "stem"},
		"engineering":  {ID: "engineering", Label: "Engineering", Category: "stem"},
		"digital-arts": {ID: "digital-arts", Label: "Digital Arts", Category: "arts"},
		"dance":        {ID: "dance", Label: "Dance", Category: "arts"},
	}
}

func testAdjacency() domain.AdjacencyMap {
	return domain.NewAdjacencyMap(map[string][]string{
		"coding":      {"engineering", "digital-arts"},
		"engineering": {"coding"},
		"dance":       {"theater"},
	})
}

func testProfile(kids ...domain.Kid) *domain.Profile {
	return &domain.Profile{
		District:      "bsd405",
		SummerStart:   "2026-06-23",
		SummerEnd:     "2026-09-08",
		Neighborhoods: []string{"bellevue", "kirkland"},
		Kids:          kids,
	}
}

func entryIDs(entries []domain.CatalogEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}
