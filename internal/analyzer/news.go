package analyzer

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/marketscout/compete-cli/internal/fetcher"
	"github.com/marketscout/compete-cli/internal/model"
)

const (
	maxNewsItems  = 20
	maxSnippetLen = 200
)

// newsDateLayouts are the feed date formats tried in order; the first
// that parses wins.
var newsDateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05-07:00",
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// NewsAnalyzer searches a public news RSS endpoint for mentions of a
// competitor's name.
type NewsAnalyzer struct {
	fetch   fetcher.Fetcher
	baseURL string
}

// NewNewsAnalyzer creates a news analyzer querying the given RSS
// search endpoint.
func NewNewsAnalyzer(f fetcher.Fetcher, baseURL string) *NewsAnalyzer {
	return &NewsAnalyzer{fetch: f, baseURL: baseURL}
}

// Analyze fetches the search feed for the competitor's name. News
// monitoring is best-effort: on fetch or parse failure the returned
// result is the empty form and the error only explains why the feed
// yielded nothing — it never suppresses the result.
func (a *NewsAnalyzer) Analyze(ctx context.Context, c model.Competitor) (*model.NewsAnalysisResult, error) {
	resp, err := a.fetch.Fetch(ctx, a.feedURL(c.Name))
	if err != nil {
		return &model.NewsAnalysisResult{}, eris.Wrap(err, "news: fetch feed")
	}

	items, err := parseFeed(resp.Body)
	if err != nil {
		return &model.NewsAnalysisResult{}, eris.Wrap(err, "news: parse feed")
	}

	res := &model.NewsAnalysisResult{TotalMentions: len(items)}
	if len(items) > maxNewsItems {
		items = items[:maxNewsItems]
	}
	res.Items = items
	return res, nil
}

func (a *NewsAnalyzer) feedURL(name string) string {
	q := url.Values{}
	q.Set("q", name)
	q.Set("hl", "en-US")
	q.Set("gl", "US")
	q.Set("ceid", "US:en")
	return a.baseURL + "?" + q.Encode()
}

type rssDocument struct {
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Source      string `xml:"source"`
	Description string `xml:"description"`
}

func parseFeed(data []byte) ([]model.NewsItem, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "news: unsupported charset %q", charset)
		}
		return enc.NewDecoder().Reader(input), nil
	}

	var doc rssDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, eris.Wrap(err, "news: decode rss")
	}

	var items []model.NewsItem
	for _, it := range doc.Channel.Items {
		// Both title and link are required.
		if it.Title == "" || it.Link == "" {
			continue
		}
		items = append(items, model.NewsItem{
			Title:       it.Title,
			URL:         it.Link,
			Source:      it.Source,
			PublishedAt: parseNewsDate(it.PubDate),
			Snippet:     snippetFrom(it.Description),
		})
	}
	return items, nil
}

// parseNewsDate tries the supported layouts in order. A date matching
// none of them is silently treated as "no date"; the item is kept.
func parseNewsDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range newsDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// snippetFrom strips HTML tags from a feed description and truncates
// it to the snippet limit.
func snippetFrom(desc string) string {
	if desc == "" {
		return ""
	}
	s := strings.TrimSpace(htmlTagRe.ReplaceAllString(desc, ""))
	if r := []rune(s); len(r) > maxSnippetLen {
		s = string(r[:maxSnippetLen])
	}
	return s
}
