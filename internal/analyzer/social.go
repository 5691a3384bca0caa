package analyzer

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/marketscout/compete-cli/internal/fetcher"
	"github.com/marketscout/compete-cli/internal/model"
)

const maxBioLen = 200

// SocialAnalyzer builds one profile record per configured platform.
type SocialAnalyzer struct {
	fetch fetcher.Fetcher
}

// NewSocialAnalyzer creates a social analyzer backed by the given
// fetcher.
func NewSocialAnalyzer(f fetcher.Fetcher) *SocialAnalyzer {
	return &SocialAnalyzer{fetch: f}
}

// Analyze returns one profile per platform the competitor has
// configured. Fetch failures are absorbed into minimal profiles; the
// error result is always nil.
func (a *SocialAnalyzer) Analyze(ctx context.Context, c model.Competitor) (*model.SocialAnalysisResult, error) {
	res := &model.SocialAnalysisResult{}

	if c.Twitter != "" {
		res.Profiles = append(res.Profiles, twitterProfile(c.Twitter))
	}
	if c.LinkedIn != "" {
		res.Profiles = append(res.Profiles, a.linkedinProfile(ctx, c.LinkedIn))
	}

	return res, nil
}

// twitterProfile is a structural placeholder: public engagement data
// requires authenticated API access, so only the normalized handle is
// carried.
func twitterProfile(handle string) model.SocialProfile {
	handle = strings.TrimLeft(handle, "@")
	return model.SocialProfile{
		Platform: "twitter",
		Handle:   "@" + handle,
	}
}

// linkedinProfile scrapes what little the public profile page exposes.
// On any failure it degrades to a profile carrying only platform and
// handle.
func (a *SocialAnalyzer) linkedinProfile(ctx context.Context, profileURL string) model.SocialProfile {
	p := model.SocialProfile{
		Platform: "linkedin",
		Handle:   profileURL,
	}

	resp, err := a.fetch.Fetch(ctx, profileURL)
	if err != nil {
		zap.L().Debug("social: linkedin fetch failed", zap.Error(err))
		return p
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		zap.L().Debug("social: linkedin parse failed", zap.Error(err))
		return p
	}

	// LinkedIn titles read "Name | LinkedIn".
	if title := doc.Find("title").First().Text(); title != "" {
		p.Name = strings.TrimSpace(strings.Split(title, "|")[0])
	}

	if about := doc.Find(`section[class*="about"]`).First(); about.Length() > 0 {
		bio := strings.Join(strings.Fields(about.Text()), " ")
		if r := []rune(bio); len(r) > maxBioLen {
			bio = string(r[:maxBioLen])
		}
		p.Bio = bio
	}

	return p
}
