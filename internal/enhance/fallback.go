package enhance

import (
	"context"

	"github.com/RNSsanjay/agentium/internal/observe"
)

// Fallback wraps a generative enhancer over the local one. A failing
// remote call is logged and downgraded to the local heuristic for that
// call only; it is never retried and never aborts the run.
type Fallback struct {
	remote Enhancer
	local  Enhancer
	obs    *observe.Observer
}

func NewFallback(remote, local Enhancer, obs *observe.Observer) *Fallback {
	return &Fallback{remote: remote, local: local, obs: obs}
}

func (f *Fallback) Name() string {
	return f.remote.Name()
}

func (f *Fallback) warn(op string, err error) {
	f.obs.Log().Warn().
		Str("enhancer", f.remote.Name()).
		Str("op", op).
		Err(err).
		Msg("enhancer call failed, using local fallback")
}

func (f *Fallback) Condense(ctx context.Context, text string, opts CondenseOptions) (*CondenseResult, error) {
	res, err := f.remote.Condense(ctx, text, opts)
	if err != nil {
		f.warn("condense", err)
		return f.local.Condense(ctx, text, opts)
	}
	return res, nil
}

func (f *Fallback) Optimize(ctx context.Context, text string, kind OptimizeKind) (*OptimizeResult, error) {
	res, err := f.remote.Optimize(ctx, text, kind)
	if err != nil {
		f.warn("optimize", err)
		return f.local.Optimize(ctx, text, kind)
	}
	return res, nil
}

func (f *Fallback) Summarize(ctx context.Context, text string, strategy SummaryStrategy) (*SummaryResult, error) {
	res, err := f.remote.Summarize(ctx, text, strategy)
	if err != nil {
		f.warn("summarize", err)
		return f.local.Summarize(ctx, text, strategy)
	}
	return res, nil
}

func (f *Fallback) Insights(ctx context.Context, text, focus string) (*InsightResult, error) {
	res, err := f.remote.Insights(ctx, text, focus)
	if err != nil {
		f.warn("insights", err)
		return f.local.Insights(ctx, text, focus)
	}
	return res, nil
}

func (f *Fallback) Translate(ctx context.Context, text string, opts TranslateOptions) (*TranslateResult, error) {
	res, err := f.remote.Translate(ctx, text, opts)
	if err != nil {
		f.warn("translate", err)
		return f.local.Translate(ctx, text, opts)
	}
	return res, nil
}

// Generate does not fall back: the local backend has no generative model,
// so the error surfaces and callers use their own template fallback.
func (f *Fallback) Generate(ctx context.Context, prompt string) (string, error) {
	return f.remote.Generate(ctx, prompt)
}
