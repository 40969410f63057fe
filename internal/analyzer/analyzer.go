// Package analyzer implements the multilingual news analysis demo:
// per-article optimization, data extraction, insights, summarization,
// English translation for non-English sources and a sentiment read.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/extract"
	"github.com/RNSsanjay/agentium/internal/memory"
	"github.com/RNSsanjay/agentium/internal/observe"
)

// Article is one news item under analysis.
type Article struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// NewsData is the structured data pulled from an article.
type NewsData struct {
	Organizations []string `json:"organizations"`
	URLs          []string `json:"urls"`
	Emails        []string `json:"emails"`
	Statistics    []string `json:"statistics"`
}

// Sentiment classifies an article's tone. Confidence is 0..1. When no
// generative backend is available the read is neutral at 0.5.
type Sentiment struct {
	Label       string  `json:"sentiment"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// Analysis is the full result for one article.
type Analysis struct {
	Article          Article           `json:"original_article"`
	OptimizedContent string            `json:"optimized_content"`
	Extracted        NewsData          `json:"extracted_data"`
	Insights         []string          `json:"insights"`
	Summary          string            `json:"summary"`
	Translations     map[string]string `json:"translations,omitempty"`
	Sentiment        Sentiment         `json:"sentiment"`
	AnalyzedAt       time.Time         `json:"analyzed_at"`
	Model            string            `json:"analyzer_model"`
}

// Analyzer runs article analysis over one enhancer.
type Analyzer struct {
	enhancer enhance.Enhancer
	memory   *memory.Context
	obs      *observe.Observer
}

func New(enhancer enhance.Enhancer, mem *memory.Context, obs *observe.Observer) *Analyzer {
	return &Analyzer{
		enhancer: enhancer,
		memory:   mem,
		obs:      obs,
	}
}

// Analyze processes one article. Steps run in fixed order; enhancer
// failures have already been downgraded to the local path, so an error
// here aborts the article.
func (a *Analyzer) Analyze(ctx context.Context, article Article) (*Analysis, error) {
	ctx, span := a.obs.StartSpan(ctx, "analyzer.analyze")
	defer span.End()

	a.obs.Log().Info().
		Str("title", article.Title).
		Str("language", article.Language).
		Msg("analyzing article")

	analysis := &Analysis{
		Article:    article,
		AnalyzedAt: time.Now(),
		Model:      enhance.ModelName(a.enhancer),
	}

	content := strings.TrimSpace(article.Content)

	optimized, err := a.enhancer.Optimize(ctx, content, enhance.OptimizeReadability)
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}
	analysis.OptimizedContent = optimized.Text

	analysis.Extracted = extractNewsData(content)

	insights, err := a.enhancer.Insights(ctx, content, "trends")
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}
	analysis.Insights = insights.Insights

	summary, err := a.enhancer.Summarize(ctx, content, enhance.SummaryBullet)
	if err != nil {
		return nil, fmt.Errorf("summarization failed: %w", err)
	}
	analysis.Summary = summary.Summary

	if !strings.EqualFold(article.Language, "english") {
		translated, err := a.enhancer.Translate(ctx, content, enhance.TranslateOptions{
			Source: article.Language,
			Target: "english",
		})
		if err != nil {
			return nil, fmt.Errorf("translation failed: %w", err)
		}
		analysis.Translations = map[string]string{"english": translated.TranslatedText}
	}

	analysis.Sentiment = a.analyzeSentiment(ctx, content)

	key := fmt.Sprintf("article_%s", analysis.AnalyzedAt.Format("150405.000"))
	a.memory.Store(key, analysis)

	return analysis, nil
}

// analyzeSentiment asks the generative backend for a classification and
// degrades to a neutral read when none is available.
func (a *Analyzer) analyzeSentiment(ctx context.Context, content string) Sentiment {
	prompt := fmt.Sprintf(`Classify the sentiment of the following news content as positive, negative or neutral.
Reply with the label, a confidence between 0 and 1, and a one-line explanation.

%s`, content)

	out, err := a.enhancer.Generate(ctx, prompt)
	if err != nil {
		return Sentiment{Label: "neutral", Confidence: 0.5, Explanation: "sentiment analysis unavailable"}
	}

	s := Sentiment{Label: "neutral", Confidence: 0.5, Explanation: strings.TrimSpace(out)}
	lower := strings.ToLower(out)
	if strings.Contains(lower, "positive") {
		s.Label = "positive"
	} else if strings.Contains(lower, "negative") {
		s.Label = "negative"
	}
	return s
}

var orgKeywords = []string{
	"Company", "Corporation", "Inc", "Ltd", "Organization", "Institute", "Fund",
}

// extractNewsData combines the regex extractors with a keyword heuristic
// for organization names.
func extractNewsData(content string) NewsData {
	data := NewsData{
		URLs:       extract.Extract(content, extract.KindURLs),
		Emails:     extract.Extract(content, extract.KindEmails),
		Statistics: extract.Extract(content, extract.KindNumbers),
	}

	seen := make(map[string]bool)
	words := strings.Fields(content)
	for i, word := range words {
		for _, kw := range orgKeywords {
			if strings.Contains(word, kw) && i > 0 {
				org := words[i-1] + " " + strings.Trim(word, ".,;:")
				if !seen[org] {
					seen[org] = true
					data.Organizations = append(data.Organizations, org)
				}
				break
			}
		}
	}
	return data
}
