package m_taxonomy

// Field name constants for the taxonomies table.
const (
	TableName = "taxonomies"

	Kind       = "kind"
	TaxonomyID = "taxonomy_id"
	Name       = "name"
	CreatedAt  = "created_at"
)

// Taxonomy kind constants. Each kind is an independent facet vocabulary;
// names are intended to be unique within a kind.
const (
	KindCategory = "category"
	KindBrand    = "brand"
	KindGenre    = "genre"
)

// AllColumns lists every column of the taxonomies table in declaration order.
var AllColumns = []string{
	Kind,
	TaxonomyID,
	Name,
	CreatedAt,
}

// ValidKind reports whether kind names a known facet vocabulary.
func ValidKind(kind string) bool {
	switch kind {
	case KindCategory, KindBrand, KindGenre:
		return true
	}
	return false
}
