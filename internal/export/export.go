// Package export writes an analysis result bundle to disk as JSON or
// as a flattened three-column CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/marketscout/compete-cli/internal/model"
)

// CSV rows are capped tighter than the JSON form: the spreadsheet view
// is a digest, the JSON file is the record.
const (
	csvMaxHeadings = 10
	csvMaxH2Tags   = 5
	csvMaxArticles = 10
)

// WriteJSON writes the result as 2-space-indented JSON, creating the
// parent directory if needed. Unrequested or failed analyses serialize
// as explicit nulls.
func WriteJSON(result *model.AnalysisResult, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrap(err, "export: create output dir")
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal result")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}

// Rows flattens the result into Section/Field/Value triples, header
// row included. Sections for absent analyses are omitted entirely.
func Rows(result *model.AnalysisResult) [][]string {
	rows := [][]string{
		{"Section", "Field", "Value"},
		{"Meta", "Competitor", result.CompetitorName},
		{"Meta", "Analyzed At", result.AnalyzedAt.Format(time.RFC3339)},
	}

	if web := result.Web; web != nil {
		rows = append(rows,
			[]string{"Web", "Title", web.Title},
			[]string{"Web", "Description", web.Description},
			[]string{"Web", "Links Count", strconv.Itoa(web.LinksCount)},
			[]string{"Web", "Images Count", strconv.Itoa(web.ImagesCount)},
			[]string{"Web", "Page Size (bytes)", strconv.Itoa(web.PageSizeBytes)},
			[]string{"Web", "Load Time (ms)", fmt.Sprintf("%.2f", web.LoadTimeMs)},
			[]string{"Web", "Technologies", strings.Join(web.Technologies, ", ")},
		)
		for i, heading := range capped(web.Headings, csvMaxHeadings) {
			rows = append(rows, []string{"Web", fmt.Sprintf("Heading %d", i+1), heading})
		}
	}

	if seo := result.SEO; seo != nil {
		rows = append(rows,
			[]string{"SEO", "Meta Title", seo.MetaTitle},
			[]string{"SEO", "Meta Description", seo.MetaDescription},
			[]string{"SEO", "Meta Keywords", strings.Join(seo.MetaKeywords, ", ")},
			[]string{"SEO", "Canonical URL", seo.CanonicalURL},
			[]string{"SEO", "Robots", seo.RobotsMeta},
		)
		for i, h1 := range seo.H1Tags {
			rows = append(rows, []string{"SEO", fmt.Sprintf("H1 %d", i+1), h1})
		}
		for i, h2 := range capped(seo.H2Tags, csvMaxH2Tags) {
			rows = append(rows, []string{"SEO", fmt.Sprintf("H2 %d", i+1), h2})
		}
		for _, key := range sortedKeys(seo.OGTags) {
			rows = append(rows, []string{"SEO", "OG: " + key, seo.OGTags[key]})
		}
	}

	if news := result.News; news != nil {
		rows = append(rows, []string{"News", "Total Mentions", strconv.Itoa(news.TotalMentions)})
		for i, item := range capped(news.Items, csvMaxArticles) {
			rows = append(rows,
				[]string{"News", fmt.Sprintf("Article %d Title", i+1), item.Title},
				[]string{"News", fmt.Sprintf("Article %d URL", i+1), item.URL},
				[]string{"News", fmt.Sprintf("Article %d Source", i+1), item.Source},
			)
		}
	}

	if social := result.Social; social != nil {
		for _, p := range social.Profiles {
			section := fmt.Sprintf("Social (%s)", p.Platform)
			rows = append(rows, []string{section, "Handle", p.Handle})
			if p.Followers != nil {
				rows = append(rows, []string{section, "Followers", strconv.Itoa(*p.Followers)})
			}
			if p.Bio != "" {
				rows = append(rows, []string{section, "Bio", p.Bio})
			}
		}
	}

	return rows
}

// WriteCSV writes the flattened rows, creating the parent directory if
// needed.
func WriteCSV(result *model.AnalysisResult, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrap(err, "export: create output dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "export: create %s", path)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(Rows(result)); err != nil {
		f.Close()
		return eris.Wrapf(err, "export: write %s", path)
	}
	return eris.Wrap(f.Close(), "export: close file")
}

func capped[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
