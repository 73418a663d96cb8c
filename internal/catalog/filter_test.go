package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductFilterEmpty(t *testing.T) {
	where, args := ProductFilter{}.Build()
	require.Empty(t, where)
	require.Empty(t, args)
}

func TestProductFilterCategoryOnly(t *testing.T) {
	id := int64(5)
	where, args := ProductFilter{CategoryID: &id}.Build()
	require.Equal(t, "p.category_id = $1", where)
	require.Equal(t, []any{int64(5)}, args)
}

func TestProductFilterReadyOnly(t *testing.T) {
	where, args := ProductFilter{ReadyOnly: true}.Build()
	require.Equal(t, "p.is_ready = TRUE", where)
	require.Empty(t, args, "ready filter is a literal, must not bind a param")
}

func TestProductFilterBoth(t *testing.T) {
	id := int64(5)
	where, args := ProductFilter{CategoryID: &id, ReadyOnly: true}.Build()
	require.Equal(t, "p.category_id = $1 AND p.is_ready = TRUE", where)
	require.Equal(t, []any{int64(5)}, args, "only category binds a param")
}
