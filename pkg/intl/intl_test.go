package intl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestGetSupportedLanguages(t *testing.T) {
	require.Len(t, GetSupportedLanguages(nil), 2)

	filtered := GetSupportedLanguages([]string{"zh"})
	require.Len(t, filtered, 1)
	require.Equal(t, language.Chinese, filtered[0].Tag)

	require.Empty(t, GetSupportedLanguages([]string{"xx"}))
}

func TestLocaleRoundTrip(t *testing.T) {
	_, ok := UseLocale(context.Background())
	require.False(t, ok)

	ctx := WithLocale(context.Background(), language.Chinese)
	tag, ok := UseLocale(ctx)
	require.True(t, ok)
	require.Equal(t, language.Chinese, tag)
}
