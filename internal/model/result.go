package model

import "time"

// WebAnalysisResult holds what the web analyzer scraped off a
// competitor's site. Every field is defaultable: absence means "not
// found", not error.
type WebAnalysisResult struct {
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	Headings      []string `json:"headings"`
	LinksCount    int      `json:"links_count"`
	ImagesCount   int      `json:"images_count"`
	Technologies  []string `json:"technologies"`
	PageSizeBytes int      `json:"page_size_bytes"`
	LoadTimeMs    float64  `json:"load_time_ms"`
}

// SEOAnalysisResult holds on-page SEO signals.
type SEOAnalysisResult struct {
	MetaTitle       string            `json:"meta_title,omitempty"`
	MetaDescription string            `json:"meta_description,omitempty"`
	MetaKeywords    []string          `json:"meta_keywords"`
	H1Tags          []string          `json:"h1_tags"`
	H2Tags          []string          `json:"h2_tags"`
	CanonicalURL    string            `json:"canonical_url,omitempty"`
	RobotsMeta      string            `json:"robots_meta,omitempty"`
	OGTags          map[string]string `json:"og_tags"`
	StructuredData  []any             `json:"structured_data"`
}

// NewsItem is a single news mention. Title and URL are always set;
// PublishedAt stays nil when the feed date matched no known layout.
type NewsItem struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Source      string     `json:"source,omitempty"`
	PublishedAt *time.Time `json:"published_at"`
	Snippet     string     `json:"snippet,omitempty"`
}

// NewsAnalysisResult lists the most recent mentions (feed order,
// capped) plus the pre-truncation total.
type NewsAnalysisResult struct {
	Items         []NewsItem `json:"items"`
	TotalMentions int        `json:"total_mentions"`
}

// SocialProfile describes one platform presence. Engagement counters
// are pointers: nil means the platform exposes no public number.
type SocialProfile struct {
	Platform   string `json:"platform"`
	Handle     string `json:"handle"`
	Name       string `json:"name,omitempty"`
	Followers  *int   `json:"followers"`
	Following  *int   `json:"following"`
	PostsCount *int   `json:"posts_count"`
	Bio        string `json:"bio,omitempty"`
	Verified   bool   `json:"verified"`
}

// SocialAnalysisResult holds one profile per configured platform.
type SocialAnalysisResult struct {
	Profiles []SocialProfile `json:"profiles"`
}

// AnalysisResult bundles the per-kind results of one analysis run.
// The four slots deliberately lack omitempty: an analysis that was not
// requested, had no precondition, or failed serializes as an explicit
// null.
type AnalysisResult struct {
	CompetitorName string                `json:"competitor_name"`
	AnalyzedAt     time.Time             `json:"analyzed_at"`
	Web            *WebAnalysisResult    `json:"web"`
	SEO            *SEOAnalysisResult    `json:"seo"`
	News           *NewsAnalysisResult   `json:"news"`
	Social         *SocialAnalysisResult `json:"social"`
}
