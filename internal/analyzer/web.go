package analyzer

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/marketscout/compete-cli/internal/fetcher"
	"github.com/marketscout/compete-cli/internal/model"
)

// maxHeadings caps the combined h1/h2/h3 list.
const maxHeadings = 20

// WebAnalyzer scrapes a competitor's site for structural signals.
type WebAnalyzer struct {
	fetch fetcher.Fetcher
}

// NewWebAnalyzer creates a web analyzer backed by the given fetcher.
func NewWebAnalyzer(f fetcher.Fetcher) *WebAnalyzer {
	return &WebAnalyzer{fetch: f}
}

// Analyze fetches and inspects the competitor's site. A competitor
// without a configured URL yields (nil, nil): absent, not an error.
func (a *WebAnalyzer) Analyze(ctx context.Context, c model.Competitor) (*model.WebAnalysisResult, error) {
	if c.URL == "" {
		return nil, nil
	}

	resp, err := a.fetch.Fetch(ctx, c.URL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, eris.Wrap(err, "web: parse html")
	}

	res := &model.WebAnalysisResult{
		PageSizeBytes: len(resp.Body),
		LoadTimeMs:    float64(resp.Elapsed.Microseconds()) / 1000,
	}

	res.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		res.Description = content
	}

	// First 20 non-empty h1/h2/h3 texts in document order, each
	// tagged with its level.
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(res.Headings) >= maxHeadings {
			return false
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			res.Headings = append(res.Headings, goquery.NodeName(s)+": "+text)
		}
		return true
	})

	res.LinksCount = doc.Find("a[href]").Length()
	res.ImagesCount = doc.Find("img").Length()
	res.Technologies = DetectTechnologies(resp.Body)

	return res, nil
}
