package twitterapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContextAnnotation(t *testing.T) {
	t.Run("DomainOnly", func(t *testing.T) {
		annotation, err := ParseContextAnnotation([]byte(`{"domain": {"id": "47", "name": "Brand"}}`))
		require.NoError(t, err)

		domain, ok := annotation.Domain.Get()
		require.True(t, ok)
		assert.Equal(t, ContextDomain{ID: "47", Name: "Brand"}, domain)
		assert.False(t, annotation.Entity.IsSet())
	})

	t.Run("EntityOnly", func(t *testing.T) {
		annotation, err := ParseContextAnnotation([]byte(`{"entity": {"id": "10", "name": "Music", "description": "Music and musicians"}}`))
		require.NoError(t, err)

		assert.False(t, annotation.Domain.IsSet())
		entity := annotation.Entity.MustGet()
		assert.Equal(t, "Music", entity.Name)
		assert.Equal(t, Some("Music and musicians"), entity.Description)
	})

	t.Run("Both", func(t *testing.T) {
		annotation, err := ParseContextAnnotation([]byte(`{
			"domain": {"id": "46", "name": "Brand Category"},
			"entity": {"id": "781974596148793345", "name": "Business & finance"}
		}`))
		require.NoError(t, err)

		assert.Equal(t, "46", annotation.Domain.MustGet().ID)
		assert.Equal(t, "781974596148793345", annotation.Entity.MustGet().ID)
	})

	t.Run("DomainWithoutName", func(t *testing.T) {
		_, err := ParseContextAnnotation([]byte(`{"domain": {"id": "46"}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "domain.name")
	})
}
