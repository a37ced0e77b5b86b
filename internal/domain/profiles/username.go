package profiles

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeUsername generates a URL-safe base username from a display name.
// Example: "John Doe" -> "john-doe"
func MakeUsername(fullName string) string {
	base := strings.ToLower(strings.TrimSpace(fullName))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "user"
	}
	return base
}

// EnsureUsername fills in profile.Username when empty and persists it.
// Must be called AFTER the profile has an ID (after Create). Uniqueness
// comes from suffixing the row id.
func EnsureUsername(db *gorm.DB, profile *Profile) (string, error) {
	if profile == nil {
		return "", fmt.Errorf("profile is nil")
	}
	if db == nil {
		return "", fmt.Errorf("db is nil")
	}

	if strings.TrimSpace(profile.Username) != "" {
		return strings.TrimSpace(profile.Username), nil
	}

	if profile.ID == 0 {
		return "", fmt.Errorf("profile ID missing (call EnsureUsername after Create)")
	}

	username := fmt.Sprintf("%s-%d", MakeUsername(profile.FullName), profile.ID)
	profile.Username = username

	if err := db.
		Model(&Profile{}).
		Where("id = ?", profile.ID).
		Update("username", username).Error; err != nil {
		return "", err
	}

	return username, nil
}
