package promotions

// Promotion levels and their fixed prices in cents. A caller-supplied budget
// overrides the table at checkout time.
const (
	LevelBasic    = "basic"
	LevelPremium  = "premium"
	LevelFeatured = "featured"
)

var priceCents = map[string]int64{
	LevelBasic:    500,
	LevelPremium:  1500,
	LevelFeatured: 3000,
}

func ValidLevel(level string) bool {
	_, ok := priceCents[level]
	return ok
}

func PriceCents(level string) int64 {
	return priceCents[level]
}
