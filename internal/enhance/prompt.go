package enhance

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// TextGenerator is the minimal surface a generative backend must provide.
// The prompt adapter builds the per-operation prompts on top of it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// callTimeout bounds every generative call. There is no retry; a timeout
// surfaces as an error and Fallback downgrades it to the local path.
const callTimeout = 60 * time.Second

// promptEnhancer implements Enhancer by prompting a TextGenerator.
// This keeps the operation logic in one place instead of repeating it per
// backend.
type promptEnhancer struct {
	gen TextGenerator
}

// NewPromptEnhancer wraps a generative backend as a full Enhancer.
func NewPromptEnhancer(gen TextGenerator) Enhancer {
	return &promptEnhancer{gen: gen}
}

func (p *promptEnhancer) Name() string {
	return p.gen.Name()
}

func (p *promptEnhancer) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	return p.gen.Generate(ctx, prompt)
}

func (p *promptEnhancer) Condense(ctx context.Context, text string, opts CondenseOptions) (*CondenseResult, error) {
	target := opts.TargetLength
	if target <= 0 {
		ratio := opts.Ratio
		if ratio <= 0 || ratio >= 1 {
			ratio = 0.4
		}
		target = int(float64(len(text)) * ratio)
	}

	prompt := fmt.Sprintf(
		"Condense the following text to roughly %d characters while preserving the key information. Return only the condensed text.\n\n%s",
		target, text)

	out, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("condense: %w", err)
	}
	out = strings.TrimSpace(out)
	return &CondenseResult{
		Text:            out,
		OriginalLength:  len(text),
		CondensedLength: len(out),
	}, nil
}

func (p *promptEnhancer) Optimize(ctx context.Context, text string, kind OptimizeKind) (*OptimizeResult, error) {
	style := "clarity and structure"
	switch kind {
	case OptimizeReadability:
		style = "readability: shorter sentences, plain words, clear structure"
	case OptimizeProfessional:
		style = "a professional, formal business tone"
	}

	prompt := fmt.Sprintf(
		"Rewrite the following text optimizing for %s. Keep the meaning intact. Return only the rewritten text.\n\n%s",
		style, text)

	out, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}
	return &OptimizeResult{
		Text:         strings.TrimSpace(out),
		Improvements: []string{string(kind)},
	}, nil
}

func (p *promptEnhancer) Summarize(ctx context.Context, text string, strategy SummaryStrategy) (*SummaryResult, error) {
	var shape string
	switch strategy {
	case SummaryExecutive:
		shape = "an executive summary of at most one paragraph"
	case SummaryBullet:
		shape = "a bullet-point summary, one line per point, each starting with '-'"
	default:
		shape = "a short extractive summary using sentences from the text"
	}

	prompt := fmt.Sprintf("Write %s of the following text. Return only the summary.\n\n%s", shape, text)

	out, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	return &SummaryResult{Summary: strings.TrimSpace(out), Strategy: strategy}, nil
}

func (p *promptEnhancer) Insights(ctx context.Context, text, focus string) (*InsightResult, error) {
	focusLine := ""
	if focus != "" {
		focusLine = fmt.Sprintf(" Focus on %s.", focus)
	}

	prompt := fmt.Sprintf(
		"List the 3 to 5 most important insights from the following text.%s Return one insight per line, each starting with '-'.\n\n%s",
		focusLine, text)

	out, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}
	return &InsightResult{Insights: parseList(out), Focus: focus}, nil
}

func (p *promptEnhancer) Translate(ctx context.Context, text string, opts TranslateOptions) (*TranslateResult, error) {
	tone := ""
	if opts.Tone != "" {
		tone = fmt.Sprintf(" Use a %s tone.", opts.Tone)
	}

	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s.%s Return only the translation.\n\n%s",
		opts.Source, opts.Target, tone, text)

	out, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	return &TranslateResult{
		TranslatedText: strings.TrimSpace(out),
		Source:         opts.Source,
		Target:         opts.Target,
	}, nil
}

func (p *promptEnhancer) Generate(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt)
}

// parseList turns a model response into one item per line, stripping
// bullet markers and numbering.
func parseList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		for i := 0; i < len(line); i++ {
			if line[i] >= '0' && line[i] <= '9' {
				continue
			}
			if line[i] == '.' || line[i] == ')' {
				line = strings.TrimSpace(line[i+1:])
			}
			break
		}
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
