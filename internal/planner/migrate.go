package planner

import "github.com/campfinder/campfinder-server/internal/domain"

// Dates used when neither the profile nor its district supplies a summer.
const (
	FallbackSummerStart = "2026-06-23"
	FallbackSummerEnd   = "2026-09-08"
)

// Migration steps reported by Migrate.
const (
	ChangeDistrictDefaulted       = "district_defaulted"
	ChangeSummerFromDistrict      = "summer_from_district"
	ChangeSummerFallback          = "summer_fallback"
	ChangeLegacyInterestsCopied   = "legacy_interests_copied"
	ChangeLegacyInterestsDropped  = "legacy_interests_dropped"
	ChangeKidInterestsInitialized = "kid_interests_initialized"
)

// Migrate upgrades a stored profile to the current shape and returns the
// upgraded copy together with the steps that changed something. The input is
// not modified. Running Migrate on its own output reports no changes.
func Migrate(p *domain.Profile, districts map[string]domain.District) (*domain.Profile, []string) {
	if p == nil {
		return nil, nil
	}

	out := p.Clone()
	var changes []string

	if out.District == "" {
		out.District = domain.DefaultDistrictID
		changes = append(changes, ChangeDistrictDefaulted)
	}

	if out.SummerStart == "" || out.SummerEnd == "" {
		if d, ok := districts[out.District]; ok && d.HasDates() {
			out.SummerStart = *d.LastDay
			out.SummerEnd = *d.FirstDay
			changes = append(changes, ChangeSummerFromDistrict)
		} else {
			out.SummerStart = FallbackSummerStart
			out.SummerEnd = FallbackSummerEnd
			changes = append(changes, ChangeSummerFallback)
		}
	}

	if out.LegacyInterests != nil {
		if len(out.LegacyInterests) > 0 && anyKidLacksInterests(out.Kids) {
			for i := range out.Kids {
				if len(out.Kids[i].Interests) == 0 {
					out.Kids[i].Interests = append([]string(nil), out.LegacyInterests...)
				}
			}
			changes = append(changes, ChangeLegacyInterestsCopied)
		}
		out.LegacyInterests = nil
		changes = append(changes, ChangeLegacyInterestsDropped)
	}

	initialized := false
	for i := range out.Kids {
		if out.Kids[i].Interests == nil {
			out.Kids[i].Interests = []string{}
			initialized = true
		}
	}
	if initialized {
		changes = append(changes, ChangeKidInterestsInitialized)
	}

	return out, changes
}

func anyKidLacksInterests(kids []domain.Kid) bool {
	for _, k := range kids {
		if len(k.Interests) == 0 {
			return true
		}
	}
	return false
}
