package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campfinder/campfinder-server/internal/domain"
)

func TestNeighborhoodCatalog(t *testing.T) {
	p := testProfile(domain.Kid{Name: "Ava"})

	assert.Equal(t, []string{"code-ninjas", "lego-eng", "pixel-art", "ballet"}, entryIDs(NeighborhoodCatalog(testEntries(), p)))

	p.Neighborhoods = nil
	assert.Empty(t, NeighborhoodCatalog(testEntries(), p))
	assert.Empty(t, NeighborhoodCatalog(testEntries(), nil))
}

func TestRecommendForKid(t *testing.T) {
	p := testProfile(
		domain.Kid{Name: "Ava", Interests: []string{"coding"}},
		domain.Kid{Name: "Ben", Interests: []string{}},
	)

	// seattle-code matches coding but is outside the selected neighborhoods.
	assert.Equal(t, []string{"code-ninjas"}, entryIDs(RecommendForKid(testEntries(), p, 0)))
	assert.Empty(t, RecommendForKid(testEntries(), p, 1))
	assert.Empty(t, RecommendForKid(testEntries(), p, 2))
	assert.Empty(t, RecommendForKid(testEntries(), p, -1))
}

func TestOneDropoff(t *testing.T) {
	t.Run("needs two kids", func(t *testing.T) {
		p := testProfile(domain.Kid{Name: "Ava", Interests: []string{"coding", "dance"}})
		assert.Empty(t, OneDropoff(testEntries(), p))
	})

	t.Run("shared interests", func(t *testing.T) {
		p := testProfile(
			domain.Kid{Name: "Ava", Interests: []string{"coding", "dance"}},
			domain.Kid{Name: "Ben", Interests: []string{"dance", "coding", "engineering"}},
			domain.Kid{Name: "Cal", Interests: []string{"coding"}},
		)
		assert.Equal(t, []string{"code-ninjas"}, entryIDs(OneDropoff(testEntries(), p)))
	})

	t.Run("no overlap", func(t *testing.T) {
		p := testProfile(
			domain.Kid{Name: "Ava", Interests: []string{"coding"}},
			domain.Kid{Name: "Ben", Interests: []string{"dance"}},
		)
		assert.Empty(t, OneDropoff(testEntries(), p))
	})
}

func TestFrontier(t *testing.T) {
	adj := testAdjacency()

	one := []domain.Kid{{Name: "Ava", Interests: []string{"coding"}}}
	assert.Equal(t, map[string]struct{}{"engineering": {}, "digital-arts": {}}, Frontier(one, adj))

	two := []domain.Kid{
		{Name: "Ava", Interests: []string{"coding"}},
		{Name: "Ben", Interests: []string{"engineering"}},
	}
	assert.Equal(t, map[string]struct{}{"digital-arts": {}}, Frontier(two, adj))
}

func TestFrontier_FollowsEdgeDirection(t *testing.T) {
	// digital-arts has no outgoing edges even though coding points at it.
	kids := []domain.Kid{{Name: "Ava", Interests: []string{"digital-arts"}}}
	assert.Empty(t, Frontier(kids, testAdjacency()))
}

func TestDiscover(t *testing.T) {
	p := testProfile(domain.Kid{Name: "Ava", Interests: []string{"coding"}})
	assert.Equal(t, []string{"lego-eng", "pixel-art"}, entryIDs(Discover(testEntries(), p, testAdjacency())))

	p = testProfile(domain.Kid{Name: "Ava", Interests: []string{}})
	assert.Empty(t, Discover(testEntries(), p, testAdjacency()))
}

func TestRecommendations_NeverLeaveNeighborhoods(t *testing.T) {
	p := testProfile(
		domain.Kid{Name: "Ava", Interests: []string{"coding", "dance"}},
		domain.Kid{Name: "Ben", Interests: []string{"coding"}},
	)
	p.Neighborhoods = []string{"kirkland"}

	var all []domain.CatalogEntry
	all = append(all, RecommendForKid(testEntries(), p, 0)...)
	all = append(all, RecommendForKid(testEntries(), p, 1)...)
	all = append(all, OneDropoff(testEntries(), p)...)
	all = append(all, Discover(testEntries(), p, testAdjacency())...)
	all = append(all, FilterCatalog(testEntries(), p, domain.Query{Text: "code"})...)

	for _, e := range all {
		assert.Equal(t, "kirkland", e.Neighborhood, "entry %s", e.ID)
	}
}
