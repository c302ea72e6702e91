package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/storefront-service/internal/app/catalog/contracts"
	"github.com/light-bringer/storefront-service/internal/models/m_taxonomy"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// TaxonomyRepo implements both TaxonomyReadModel and TaxonomyRepository
// for Spanner. The taxonomy tables are small enough that read and write
// concerns share one implementation.
type TaxonomyRepo struct {
	client *spanner.Client
	model  *m_taxonomy.Model
}

// NewTaxonomyRepo creates a new TaxonomyRepo.
func NewTaxonomyRepo(client *spanner.Client) *TaxonomyRepo {
	return &TaxonomyRepo{
		client: client,
		model:  m_taxonomy.NewModel(),
	}
}

// List returns all entries of a kind in insertion order.
func (r *TaxonomyRepo) List(ctx context.Context, kind string) ([]*contracts.TaxonomyEntry, error) {
	stmt := query.From(m_taxonomy.TableName).
		Select(m_taxonomy.AllColumns...).
		Where(query.Eq(m_taxonomy.Kind, kind)).
		OrderBy(m_taxonomy.CreatedAt, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	entries := make([]*contracts.TaxonomyEntry, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate taxonomy entries: %w", err)
		}

		var data m_taxonomy.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse taxonomy entry: %w", err)
		}

		entries = append(entries, &contracts.TaxonomyEntry{
			Kind: data.Kind,
			ID:   data.TaxonomyID,
			Name: data.Name,
		})
	}

	return entries, nil
}

// InsertMut creates a mutation for inserting an entry.
func (r *TaxonomyRepo) InsertMut(entry *contracts.TaxonomyEntry) *spanner.Mutation {
	return r.model.InsertMut(&m_taxonomy.Data{
		Kind:       entry.Kind,
		TaxonomyID: entry.ID,
		Name:       entry.Name,
	})
}

// DeleteMut creates a mutation for deleting an entry.
func (r *TaxonomyRepo) DeleteMut(kind, taxonomyID string) *spanner.Mutation {
	return r.model.DeleteMut(kind, taxonomyID)
}

// Exists checks whether an entry exists.
func (r *TaxonomyRepo) Exists(ctx context.Context, kind, taxonomyID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_taxonomy.TableName, spanner.Key{kind, taxonomyID}, []string{m_taxonomy.TaxonomyID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to read taxonomy entry: %w", err)
	}
	return true, nil
}

// NameExists checks whether a name is already taken within a kind.
func (r *TaxonomyRepo) NameExists(ctx context.Context, kind, name string) (bool, error) {
	stmt := query.From(m_taxonomy.TableName).
		Where(query.Eq(m_taxonomy.Kind, kind)).
		Where(query.Eq(m_taxonomy.Name, name)).
		Count().
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return false, fmt.Errorf("failed to count taxonomy names: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return false, fmt.Errorf("failed to parse taxonomy count: %w", err)
	}
	return count > 0, nil
}
