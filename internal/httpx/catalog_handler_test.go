package httpx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductFilterFromQuery(t *testing.T) {
	f, err := productFilterFromQuery(url.Values{})
	require.NoError(t, err)
	require.Nil(t, f.CategoryID)
	require.False(t, f.ReadyOnly)

	f, err = productFilterFromQuery(url.Values{"categoryId": {"5"}})
	require.NoError(t, err)
	require.NotNil(t, f.CategoryID)
	require.Equal(t, int64(5), *f.CategoryID)

	f, err = productFilterFromQuery(url.Values{"categoryId": {"5"}, "readyOnly": {"true"}})
	require.NoError(t, err)
	require.Equal(t, int64(5), *f.CategoryID)
	require.True(t, f.ReadyOnly)

	// hanya "true" persis yang dihitung
	f, err = productFilterFromQuery(url.Values{"readyOnly": {"TRUE"}})
	require.NoError(t, err)
	require.False(t, f.ReadyOnly)

	_, err = productFilterFromQuery(url.Values{"categoryId": {"abc"}})
	require.Error(t, err)
}
