package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketscout/compete-cli/internal/fetcher"
	"github.com/marketscout/compete-cli/internal/model"
)

// Options wires a Runner. All analyzers share the one fetcher so the
// rate limiter serializes their requests.
type Options struct {
	Fetcher     fetcher.Fetcher
	NewsFeedURL string
}

// Runner executes a requested subset of analyses against one
// competitor. Each invocation owns its analyzer instances; nothing is
// shared across concurrent runs.
type Runner struct {
	web    *WebAnalyzer
	seo    *SEOAnalyzer
	news   *NewsAnalyzer
	social *SocialAnalyzer
}

// NewRunner builds a runner from the given options.
func NewRunner(opts Options) *Runner {
	return &Runner{
		web:    NewWebAnalyzer(opts.Fetcher),
		seo:    NewSEOAnalyzer(opts.Fetcher),
		news:   NewNewsAnalyzer(opts.Fetcher, opts.NewsFeedURL),
		social: NewSocialAnalyzer(opts.Fetcher),
	}
}

// Run executes the requested kinds in the fixed order (web, seo, news,
// social). Each step runs independently: a failure is logged, recorded
// in the step reports, and never aborts the remaining steps or the
// assembled result.
func (r *Runner) Run(ctx context.Context, c model.Competitor, kinds []model.AnalysisKind) (*model.AnalysisResult, []StepReport) {
	runID := uuid.New().String()

	requested := make(map[model.AnalysisKind]bool, len(kinds))
	for _, k := range kinds {
		requested[k] = true
	}

	result := &model.AnalysisResult{
		CompetitorName: c.Name,
		AnalyzedAt:     time.Now(),
	}

	var reports []StepReport
	for _, kind := range model.AllKinds() {
		if !requested[kind] {
			continue
		}

		start := time.Now()
		var rep StepReport
		switch kind {
		case model.KindWeb:
			res, err := r.web.Analyze(ctx, c)
			result.Web = res
			rep = siteStep(kind, res == nil, err)
		case model.KindSEO:
			res, err := r.seo.Analyze(ctx, c)
			result.SEO = res
			rep = siteStep(kind, res == nil, err)
		case model.KindNews:
			res, err := r.news.Analyze(ctx, c)
			result.News = res
			rep = StepReport{Kind: kind, Status: StatusOK, Err: err}
			switch {
			case err != nil:
				rep.Status = StatusFailed
			case res.TotalMentions == 0:
				rep.Status = StatusEmpty
			}
		case model.KindSocial:
			res, _ := r.social.Analyze(ctx, c)
			result.Social = res
			rep = StepReport{Kind: kind, Status: StatusOK}
			if len(res.Profiles) == 0 {
				rep.Status = StatusEmpty
			}
		}
		rep.Duration = time.Since(start)
		reports = append(reports, rep)

		if rep.Status == StatusFailed {
			zap.L().Warn("analysis step failed",
				zap.String("run_id", runID),
				zap.String("competitor", c.Name),
				zap.String("kind", string(rep.Kind)),
				zap.Error(rep.Err),
			)
			continue
		}
		zap.L().Info("analysis step done",
			zap.String("run_id", runID),
			zap.String("competitor", c.Name),
			zap.String("kind", string(rep.Kind)),
			zap.String("status", string(rep.Status)),
			zap.Duration("duration", rep.Duration),
		)
	}

	return result, reports
}

// siteStep classifies a web or seo outcome: a nil result without error
// means the site URL precondition was missing.
func siteStep(kind model.AnalysisKind, absent bool, err error) StepReport {
	switch {
	case err != nil:
		return StepReport{Kind: kind, Status: StatusFailed, Err: err}
	case absent:
		return StepReport{Kind: kind, Status: StatusSkipped}
	}
	return StepReport{Kind: kind, Status: StatusOK}
}
