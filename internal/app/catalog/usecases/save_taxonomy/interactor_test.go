package save_taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

func TestExecute_UnknownKind(t *testing.T) {
	interactor := NewInteractor(nil, nil)

	_, err := interactor.Execute(context.Background(), &Request{Kind: "color", Name: "Red"})

	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestExecute_BlankName(t *testing.T) {
	interactor := NewInteractor(nil, nil)

	for _, name := range []string{"", "   "} {
		_, err := interactor.Execute(context.Background(), &Request{Kind: "genre", Name: name})

		assert.ErrorIs(t, err, domain.ErrEmptyTaxonomyName, "name=%q", name)
	}
}
