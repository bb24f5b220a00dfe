package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/rideloop/vehicle-registry/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver()
	resolver.Register("vehicleMakes", func(ctx context.Context) ([]models.LookupItem, error) {
		return []models.LookupItem{{ID: 1, Name: "Toyota"}, {ID: 2, Name: "Honda"}}, nil
	})

	t.Run("registered category", func(t *testing.T) {
		tables, err := resolver.Resolve(context.Background(), []string{"vehicleMakes"})
		assert.NoError(t, err)
		assert.Len(t, tables["vehicleMakes"], 2)
		assert.Equal(t, "Toyota", tables["vehicleMakes"][0].Name)
	})

	t.Run("unknown category resolves to an empty list", func(t *testing.T) {
		tables, err := resolver.Resolve(context.Background(), []string{"vehicleMakes", "fuelTypes"})
		assert.NoError(t, err)
		assert.Len(t, tables["vehicleMakes"], 2)
		assert.NotNil(t, tables["fuelTypes"])
		assert.Empty(t, tables["fuelTypes"])
	})

	t.Run("nil rows come back as an empty list", func(t *testing.T) {
		resolver.Register("colors", func(ctx context.Context) ([]models.LookupItem, error) {
			return nil, nil
		})
		tables, err := resolver.Resolve(context.Background(), []string{"colors"})
		assert.NoError(t, err)
		assert.NotNil(t, tables["colors"])
		assert.Empty(t, tables["colors"])
	})
}

func TestResolver_SourceError(t *testing.T) {
	resolver := NewResolver()
	resolver.Register("vehicleMakes", func(ctx context.Context) ([]models.LookupItem, error) {
		return nil, errors.New("connection reset")
	})

	_, err := resolver.Resolve(context.Background(), []string{"vehicleMakes"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vehicleMakes")
}

func TestResolver_RegisterReplaces(t *testing.T) {
	resolver := NewResolver()
	resolver.Register("vehicleMakes", func(ctx context.Context) ([]models.LookupItem, error) {
		return []models.LookupItem{{ID: 1, Name: "Toyota"}}, nil
	})
	resolver.Register("vehicleMakes", func(ctx context.Context) ([]models.LookupItem, error) {
		return []models.LookupItem{{ID: 2, Name: "Honda"}}, nil
	})

	tables, err := resolver.Resolve(context.Background(), []string{"vehicleMakes"})
	assert.NoError(t, err)
	assert.Len(t, tables["vehicleMakes"], 1)
	assert.Equal(t, "Honda", tables["vehicleMakes"][0].Name)
}
