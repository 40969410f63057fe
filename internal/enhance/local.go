package enhance

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// LocalEnhancer is the deterministic, always-available backend. It scores
// sentences by word frequency for condensation and summarization, cleans
// whitespace for optimization, and surfaces numeric or trend-bearing
// sentences as insights. Translation is a tagged passthrough.
type LocalEnhancer struct{}

func NewLocalEnhancer() *LocalEnhancer {
	return &LocalEnhancer{}
}

func (l *LocalEnhancer) Name() string {
	return "local"
}

var sentenceSplit = regexp.MustCompile(`(?s)(.*?[.!?])(?:\s+|$)`)

func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	matches := sentenceSplit.FindAllStringSubmatch(text, -1)
	var out []string
	consumed := 0
	for _, m := range matches {
		s := strings.TrimSpace(m[1])
		if s != "" {
			out = append(out, s)
		}
		consumed += len(m[0])
	}
	// Trailing fragment without terminal punctuation.
	if rest := strings.TrimSpace(text[min(consumed, len(text)):]); rest != "" {
		out = append(out, rest)
	}
	return out
}

var wordRe = regexp.MustCompile(`[a-zA-Z]{3,}`)

// scoreSentences ranks sentences by the document frequency of their words.
func scoreSentences(sentences []string) []float64 {
	freq := make(map[string]int)
	for _, s := range sentences {
		for _, w := range wordRe.FindAllString(strings.ToLower(s), -1) {
			freq[w]++
		}
	}

	scores := make([]float64, len(sentences))
	for i, s := range sentences {
		words := wordRe.FindAllString(strings.ToLower(s), -1)
		if len(words) == 0 {
			continue
		}
		total := 0
		for _, w := range words {
			total += freq[w]
		}
		scores[i] = float64(total) / float64(len(words))
	}
	return scores
}

// topSentences keeps the highest scoring sentences, original order, until
// the budget in characters is spent.
func topSentences(sentences []string, budget int) []string {
	scores := scoreSentences(sentences)

	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	kept := make(map[int]bool)
	used := 0
	for _, i := range idx {
		if used >= budget {
			break
		}
		kept[i] = true
		used += len(sentences[i]) + 1
	}
	if len(kept) == 0 && len(sentences) > 0 {
		kept[0] = true
	}

	var out []string
	for i, s := range sentences {
		if kept[i] {
			out = append(out, s)
		}
	}
	return out
}

func (l *LocalEnhancer) Condense(_ context.Context, text string, opts CondenseOptions) (*CondenseResult, error) {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return &CondenseResult{Text: "", OriginalLength: len(text)}, nil
	}

	budget := opts.TargetLength
	if budget <= 0 {
		ratio := opts.Ratio
		if ratio <= 0 || ratio >= 1 {
			ratio = 0.4
		}
		budget = int(float64(len(text)) * ratio)
	}

	condensed := strings.Join(topSentences(sentences, budget), " ")
	return &CondenseResult{
		Text:            condensed,
		OriginalLength:  len(text),
		CondensedLength: len(condensed),
	}, nil
}

var (
	multiSpace = regexp.MustCompile(`[ \t]+`)
	multiBlank = regexp.MustCompile(`\n{3,}`)
)

func (l *LocalEnhancer) Optimize(_ context.Context, text string, kind OptimizeKind) (*OptimizeResult, error) {
	var improvements []string

	cleaned := multiSpace.ReplaceAllString(text, " ")
	if cleaned != text {
		improvements = append(improvements, "normalized whitespace")
	}

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	cleaned = strings.Join(lines, "\n")
	cleaned = multiBlank.ReplaceAllString(cleaned, "\n\n")
	cleaned = strings.TrimSpace(cleaned)
	improvements = append(improvements, "trimmed line padding")

	if kind == OptimizeProfessional {
		// Collapse exclamations; professional copy does not shout.
		if strings.Contains(cleaned, "!") {
			cleaned = strings.ReplaceAll(cleaned, "!", ".")
			improvements = append(improvements, "neutralized exclamations")
		}
	}

	return &OptimizeResult{Text: cleaned, Improvements: improvements}, nil
}

func (l *LocalEnhancer) Summarize(ctx context.Context, text string, strategy SummaryStrategy) (*SummaryResult, error) {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return &SummaryResult{Summary: "", Strategy: strategy}, nil
	}

	budget := len(text) / 4
	if budget < 200 {
		budget = 200
	}
	top := topSentences(sentences, budget)

	var summary string
	switch strategy {
	case SummaryBullet:
		for i, s := range top {
			top[i] = "- " + s
		}
		summary = strings.Join(top, "\n")
	case SummaryExecutive:
		summary = "Executive Summary: " + strings.Join(top, " ")
	default:
		summary = strings.Join(top, " ")
	}

	return &SummaryResult{Summary: summary, Strategy: strategy}, nil
}

var trendWords = []string{
	"increase", "decrease", "growth", "decline", "risk", "challenge",
	"opportunity", "projected", "trend", "efficiency", "improvement",
	"transform", "concern",
}

func (l *LocalEnhancer) Insights(_ context.Context, text, focus string) (*InsightResult, error) {
	var insights []string
	digits := regexp.MustCompile(`\d`)

	for _, s := range splitSentences(text) {
		lower := strings.ToLower(s)
		hit := digits.MatchString(s)
		if !hit {
			for _, w := range trendWords {
				if strings.Contains(lower, w) {
					hit = true
					break
				}
			}
		}
		if hit {
			insights = append(insights, s)
		}
		if len(insights) >= 5 {
			break
		}
	}

	if len(insights) == 0 {
		insights = append(insights, fmt.Sprintf("No quantitative signals found in %d characters of input", len(text)))
	}

	return &InsightResult{Insights: insights, Focus: focus}, nil
}

// Translate is a passthrough: the local backend has no translation model,
// so the original text is returned tagged with the requested pair.
func (l *LocalEnhancer) Translate(_ context.Context, text string, opts TranslateOptions) (*TranslateResult, error) {
	return &TranslateResult{
		TranslatedText: text,
		Source:         opts.Source,
		Target:         opts.Target,
	}, nil
}

func (l *LocalEnhancer) Generate(_ context.Context, _ string) (string, error) {
	return "", ErrNoGenerative
}
