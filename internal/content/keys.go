// Package content implements the read-modify-write operations the admin ui
// performs on settings documents: category management, the featured
// products of the home page and section documents merged over their defaults.
//
// Each operation reads the current document, mutates a copy and writes it
// back with the overwrite policy inside one transaction. There are no row
// locks, two admins editing the same key race and the last write wins.
package content

// Settings keys written by the initial seed.
const (
	KeyHomeProductIDs = "home_product_ids"
	KeyCategories     = "categories"
	KeyContactInfo    = "contact_info"
	KeyHomeHero       = "home_hero"
	KeyAboutHero      = "about_hero"
	KeyVision         = "vision"
	KeyMission        = "mission"
	KeyValues         = "values"
	KeyImpactStats    = "impact_stats"
)

// Keys returns the seeded settings keys in seed order.
func Keys() []string {
	return []string{
		KeyHomeProductIDs,
		KeyCategories,
		KeyContactInfo,
		KeyHomeHero,
		KeyAboutHero,
		KeyVision,
		KeyMission,
		KeyValues,
		KeyImpactStats,
	}
}
