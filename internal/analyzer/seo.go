package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/marketscout/compete-cli/internal/fetcher"
	"github.com/marketscout/compete-cli/internal/model"
)

const (
	maxH2Tags         = 10
	maxStructuredData = 5
)

// SEOAnalyzer extracts on-page SEO signals from a competitor's site.
type SEOAnalyzer struct {
	fetch fetcher.Fetcher
}

// NewSEOAnalyzer creates an SEO analyzer backed by the given fetcher.
func NewSEOAnalyzer(f fetcher.Fetcher) *SEOAnalyzer {
	return &SEOAnalyzer{fetch: f}
}

// Analyze fetches the competitor's site and extracts SEO elements.
// A competitor without a configured URL yields (nil, nil).
func (a *SEOAnalyzer) Analyze(ctx context.Context, c model.Competitor) (*model.SEOAnalysisResult, error) {
	if c.URL == "" {
		return nil, nil
	}

	resp, err := a.fetch.Fetch(ctx, c.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, eris.Wrap(err, "seo: parse html")
	}

	res := &model.SEOAnalysisResult{
		OGTags: map[string]string{},
	}

	res.MetaTitle = strings.TrimSpace(doc.Find("title").First().Text())
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		res.MetaDescription = content
	}
	if content, ok := doc.Find(`meta[name="keywords"]`).First().Attr("content"); ok && content != "" {
		for _, k := range strings.Split(content, ",") {
			res.MetaKeywords = append(res.MetaKeywords, strings.TrimSpace(k))
		}
	}

	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		res.H1Tags = append(res.H1Tags, strings.TrimSpace(s.Text()))
	})
	doc.Find("h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(res.H2Tags) >= maxH2Tags {
			return false
		}
		res.H2Tags = append(res.H2Tags, strings.TrimSpace(s.Text()))
		return true
	})

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		res.CanonicalURL = href
	}
	if content, ok := doc.Find(`meta[name="robots"]`).First().Attr("content"); ok {
		res.RobotsMeta = content
	}

	// Later duplicate og: properties overwrite earlier ones.
	doc.Find(`meta[property^="og:"]`).Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		content, _ := s.Attr("content")
		if prop != "" && content != "" {
			res.OGTags[prop] = content
		}
	})

	// JSON-LD blocks: malformed ones are skipped, not fatal.
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(res.StructuredData) >= maxStructuredData {
			return false
		}
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err == nil {
			res.StructuredData = append(res.StructuredData, data)
		}
		return true
	})

	return res, nil
}
