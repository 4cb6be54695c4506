package organizations

import "strings"

// Normalize applies the canonical transform to an organization name:
// surrounding whitespace is trimmed, the name is lowercased, and spaces
// and hyphens become underscores. Normalize is idempotent
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// GetPartitionKey derives the tenant partition collection name from an
// already-normalized organization name
func GetPartitionKey(normalizedName string) string {
	return PartitionKeyPrefix + normalizedName
}
