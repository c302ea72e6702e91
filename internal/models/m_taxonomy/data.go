package m_taxonomy

import "time"

// Data represents the database model for the taxonomies table.
type Data struct {
	Kind       string    `spanner:"kind"`
	TaxonomyID string    `spanner:"taxonomy_id"`
	Name       string    `spanner:"name"`
	CreatedAt  time.Time `spanner:"created_at"`
}
