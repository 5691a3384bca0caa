package analyzer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketscout/compete-cli/internal/model"
)

const linkedinFixture = `<html>
<head><title>Acme Corp | LinkedIn</title></head>
<body>
	<section class="core-section about-us">
		About Acme:
		rockets, anvils and more.
	</section>
</body>
</html>`

func TestSocialAnalyzeTwitterOnly(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{}
	a := NewSocialAnalyzer(f)

	res, err := a.Analyze(context.Background(), model.Competitor{Name: "Acme", Twitter: "@acmecorp"})
	require.NoError(t, err)
	require.Len(t, res.Profiles, 1)

	p := res.Profiles[0]
	assert.Equal(t, "twitter", p.Platform)
	assert.Equal(t, "@acmecorp", p.Handle)
	assert.Nil(t, p.Followers)
	assert.Nil(t, p.Following)
	assert.Nil(t, p.PostsCount)
	assert.False(t, p.Verified)
	assert.Empty(t, f.calls, "twitter lookup is a structural placeholder, no fetch")
}

func TestSocialAnalyzeTwitterHandleNormalization(t *testing.T) {
	t.Parallel()

	a := NewSocialAnalyzer(&stubFetcher{})
	res, err := a.Analyze(context.Background(), model.Competitor{Name: "Acme", Twitter: "acmecorp"})
	require.NoError(t, err)
	assert.Equal(t, "@acmecorp", res.Profiles[0].Handle)
}

func TestSocialAnalyzeLinkedIn(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{body: []byte(linkedinFixture)}
	a := NewSocialAnalyzer(f)

	res, err := a.Analyze(context.Background(), model.Competitor{
		Name:     "Acme",
		LinkedIn: "https://linkedin.test/company/acme",
	})
	require.NoError(t, err)
	require.Len(t, res.Profiles, 1)

	p := res.Profiles[0]
	assert.Equal(t, "linkedin", p.Platform)
	assert.Equal(t, "https://linkedin.test/company/acme", p.Handle)
	assert.Equal(t, "Acme Corp", p.Name)
	assert.Equal(t, "About Acme: rockets, anvils and more.", p.Bio)
}

func TestSocialAnalyzeLinkedInFetchFailure(t *testing.T) {
	t.Parallel()

	f := &stubFetcher{err: errors.New("blocked")}
	a := NewSocialAnalyzer(f)

	res, err := a.Analyze(context.Background(), model.Competitor{
		Name:     "Acme",
		LinkedIn: "https://linkedin.test/company/acme",
	})
	require.NoError(t, err, "linkedin failures are absorbed")
	require.Len(t, res.Profiles, 1)

	p := res.Profiles[0]
	assert.Equal(t, "linkedin", p.Platform)
	assert.Equal(t, "https://linkedin.test/company/acme", p.Handle)
	assert.Empty(t, p.Name)
	assert.Empty(t, p.Bio)
}

func TestSocialAnalyzeLinkedInBioTruncation(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Acme | LinkedIn</title></head><body><section class="about">` +
		strings.Repeat("word ", 100) + `</section></body></html>`
	a := NewSocialAnalyzer(&stubFetcher{body: []byte(html)})

	res, err := a.Analyze(context.Background(), model.Competitor{Name: "Acme", LinkedIn: "https://linkedin.test/acme"})
	require.NoError(t, err)
	assert.Len(t, []rune(res.Profiles[0].Bio), 200)
}

func TestSocialAnalyzeBothPlatforms(t *testing.T) {
	t.Parallel()

	a := NewSocialAnalyzer(&stubFetcher{body: []byte(linkedinFixture)})
	res, err := a.Analyze(context.Background(), model.Competitor{
		Name:     "Acme",
		Twitter:  "acme",
		LinkedIn: "https://linkedin.test/acme",
	})
	require.NoError(t, err)
	require.Len(t, res.Profiles, 2)
	assert.Equal(t, "twitter", res.Profiles[0].Platform)
	assert.Equal(t, "linkedin", res.Profiles[1].Platform)
}

func TestSocialAnalyzeNoPlatforms(t *testing.T) {
	t.Parallel()

	a := NewSocialAnalyzer(&stubFetcher{})
	res, err := a.Analyze(context.Background(), model.Competitor{Name: "Quiet"})
	require.NoError(t, err)
	assert.Empty(t, res.Profiles)
}
