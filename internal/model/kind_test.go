package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"web", "seo", "news", "social"} {
		kind, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, AnalysisKind(s), kind)
	}

	for _, s := range []string{"", "WEB", "dns", "all"} {
		_, err := ParseKind(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestAllKindsOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []AnalysisKind{KindWeb, KindSEO, KindNews, KindSocial}, AllKinds())
}
