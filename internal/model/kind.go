package model

import "github.com/rotisserie/eris"

// AnalysisKind selects one of the independent analyzers.
type AnalysisKind string

const (
	KindWeb    AnalysisKind = "web"
	KindSEO    AnalysisKind = "seo"
	KindNews   AnalysisKind = "news"
	KindSocial AnalysisKind = "social"
)

// AllKinds returns every analysis kind in execution order.
func AllKinds() []AnalysisKind {
	return []AnalysisKind{KindWeb, KindSEO, KindNews, KindSocial}
}

// ParseKind validates a user-supplied analysis kind.
func ParseKind(s string) (AnalysisKind, error) {
	switch AnalysisKind(s) {
	case KindWeb, KindSEO, KindNews, KindSocial:
		return AnalysisKind(s), nil
	}
	return "", eris.Errorf("unknown analysis type %q (want web, seo, news or social)", s)
}
