package core

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-catalog-go/internal/record"
	"voice-catalog-go/internal/store"
)

func newTestService(t *testing.T, business, products *stubCompleter) *SessionService {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewSessionService(st, NewBusinessExtractor(business), NewProductExtractor(products))
}

func TestStartBusinessSessionPersistsRecord(t *testing.T) {
	svc := newTestService(t,
		&stubCompleter{out: `{"name": "Sharma Stores", "city": "Pune", "products": []}`},
		&stubCompleter{err: errors.New("unused")},
	)

	id, rec, err := svc.StartBusinessSession(context.Background(), "whatever")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, "Sharma Stores", rec.Name)

	stored, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, rec, stored)
}

func TestAddProductsAppendsNeverReplaces(t *testing.T) {
	svc := newTestService(t,
		&stubCompleter{out: `{"name": "Sharma Stores", "products": [{"name": "Apples", "price": 80, "unit": "kg"}]}`},
		&stubCompleter{out: `[{"name": "Bananas", "price": 40, "unit": "dozen"}, {"name": "Cherries", "price": 300, "unit": "kg"}]`},
	)
	ctx := context.Background()

	id, _, err := svc.StartBusinessSession(ctx, "phase one")
	require.NoError(t, err)

	_, merged, err := svc.AddProducts(ctx, id, "phase two")
	require.NoError(t, err)

	require.Len(t, merged.Products, 3)
	assert.Equal(t, "Apples", merged.Products[0].Name, "phase-1 products stay in front")
	assert.Equal(t, "Bananas", merged.Products[1].Name)
	assert.Equal(t, "Cherries", merged.Products[2].Name)
	assert.Equal(t, "Sharma Stores", merged.Name, "business fields survive the product phase")
}

func TestAddProductsWithoutSessionCreatesShell(t *testing.T) {
	svc := newTestService(t,
		&stubCompleter{err: errors.New("unused")},
		&stubCompleter{out: `[{"name": "Milk", "price": 40}]`},
	)

	id, rec, err := svc.AddProducts(context.Background(), "", "products only")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, "", rec.Name, "shell session has an empty business record")
	require.Len(t, rec.Products, 1)
	assert.Equal(t, "Milk", rec.Products[0].Name)

	stored, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, rec, stored)
}

func TestAddProductsUnknownSession(t *testing.T) {
	svc := newTestService(t,
		&stubCompleter{err: errors.New("unused")},
		&stubCompleter{out: `[]`},
	)

	_, _, err := svc.AddProducts(context.Background(), "session_19990101_000000", "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReplaceOverwritesWithoutExtraction(t *testing.T) {
	svc := newTestService(t,
		&stubCompleter{out: `{"name": "Before", "products": []}`},
		&stubCompleter{err: errors.New("unused")},
	)
	ctx := context.Background()

	id, _, err := svc.StartBusinessSession(ctx, "phase one")
	require.NoError(t, err)

	edited := record.BusinessRecord{Name: "After", City: "Delhi"}
	saved, err := svc.Replace(id, edited)
	require.NoError(t, err)
	assert.Equal(t, "After", saved.Name)
	require.NotNil(t, saved.Products)

	stored, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "After", stored.Name)
	assert.Empty(t, stored.Products, "replace drops products not present in the edited record")
}
