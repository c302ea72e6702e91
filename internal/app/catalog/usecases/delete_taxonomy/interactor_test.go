package delete_taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

func TestExecute_UnknownKind(t *testing.T) {
	interactor := NewInteractor(nil, nil)

	err := interactor.Execute(context.Background(), &Request{Kind: "color", TaxonomyID: "t1"})

	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}
