package m_taxonomy

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the taxonomies table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a taxonomy entry.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		AllColumns,
		[]interface{}{
			data.Kind,
			data.TaxonomyID,
			data.Name,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a taxonomy entry.
func (m *Model) DeleteMut(kind, taxonomyID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{kind, taxonomyID})
}
