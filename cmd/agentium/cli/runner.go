package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/RNSsanjay/agentium/internal/analyzer"
	"github.com/RNSsanjay/agentium/internal/credential"
	"github.com/RNSsanjay/agentium/internal/dashboard"
	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/hub"
	"github.com/RNSsanjay/agentium/internal/memory"
	"github.com/RNSsanjay/agentium/internal/observe"
	"github.com/RNSsanjay/agentium/internal/pipeline"
	"github.com/RNSsanjay/agentium/internal/policy"
	"github.com/RNSsanjay/agentium/internal/report"
	"github.com/RNSsanjay/agentium/internal/store"
	"github.com/RNSsanjay/agentium/internal/ui"
)

// Runner wires the shared infrastructure every demo runs on: observer,
// store, enhancer, policy, report writer and memory manager.
type Runner struct {
	Observer *observe.Observer
	Store    store.Storage
	Enhancer enhance.Enhancer
	Enforcer *policy.Enforcer
	Writer   *report.Writer
	Memory   *memory.Manager
	UI       ui.UI
}

func newRunner(ctx context.Context) (*Runner, func(), error) {
	var obs *observe.Observer
	if ciMode {
		obs = observe.NewJSON(os.Stdout, verbose)
	} else {
		obs = observe.New(os.Stdout, verbose)
	}

	storeLayer := getStore()

	creds, err := credential.NewManager()
	if err != nil {
		obs.Log().Warn().Err(err).Msg("credential manager unavailable, stored secrets unreadable")
	}

	enhancer, err := enhance.Select(ctx, enhance.Config{
		Backend: backendName,
		Model:   modelName,
	}, configLookup(storeLayer, creds), obs)
	if err != nil {
		storeLayer.Close()
		obs.Close()
		return nil, nil, fmt.Errorf("failed to initialize enhancer: %w", err)
	}

	enforcer := policy.New(policy.DefaultPolicy)

	r := &Runner{
		Observer: obs,
		Store:    storeLayer,
		Enhancer: enhancer,
		Enforcer: enforcer,
		Writer:   report.NewWriter(outputDir, enforcer),
		Memory:   memory.NewManager(),
		UI:       ui.SilentUI{},
	}

	cleanup := func() {
		storeLayer.Close()
		obs.Close()
	}
	return r, cleanup, nil
}

func (r *Runner) beginRun(kind string) *store.Run {
	run := &store.Run{
		ID:        fmt.Sprintf("run-%d", time.Now().UnixNano()),
		Kind:      kind,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Status:    "running",
		Metadata:  map[string]string{"model": enhance.ModelName(r.Enhancer)},
	}
	if err := r.Store.CreateRun(run); err != nil {
		r.Observer.Log().Warn().Err(err).Msg("failed to record run")
	}
	return run
}

func (r *Runner) finishRun(run *store.Run, runErr error) {
	run.Status = "completed"
	if runErr != nil {
		run.Status = "failed"
		run.Metadata["error"] = runErr.Error()
	}
	run.UpdatedAt = time.Now()
	if err := r.Store.UpdateRun(run); err != nil {
		r.Observer.Log().Warn().Err(err).Msg("failed to update run")
	}
}

// indexReport stores a rendered report in the run history store, next to
// the on-disk copy the Writer produced.
func (r *Runner) indexReport(run *store.Run, format, path string, content []byte) {
	rep := &store.Report{
		ID:        fmt.Sprintf("%s-%s", run.ID, format),
		RunID:     run.ID,
		Path:      filepath.Base(path),
		Format:    format,
		CreatedAt: time.Now(),
	}
	if err := r.Store.SaveReport(rep, content); err != nil {
		r.Observer.Log().Warn().Err(err).Msg("failed to index report")
	}
}

// RunPipeline executes the content processing demo.
func (r *Runner) RunPipeline(ctx context.Context, content string) (err error) {
	run := r.beginRun("pipeline")
	defer func() { r.finishRun(run, err) }()

	if v := r.Enforcer.CheckInputSize(len(content)); v != nil {
		err = fmt.Errorf("input rejected: %s", v.Message)
		r.Observer.Log().Error().Err(err).Msg("pipeline aborted")
		return err
	}

	bus := pipeline.NewEventBus()
	ui.Attach(bus, r.UI)

	p := pipeline.New(r.Enhancer, r.Memory.Context("content_pipeline"), r.Observer, bus, run.ID)
	result, err := p.Process(ctx, content)
	if err != nil {
		return err
	}

	if _, err = r.Writer.WriteJSON("pipeline_results", result); err != nil {
		return err
	}
	md, err := pipeline.GenerateReport(result)
	if err != nil {
		return err
	}
	mdPath, err := r.Writer.WriteMarkdown("pipeline_report", md)
	if err != nil {
		return err
	}
	r.indexReport(run, "markdown", mdPath, []byte(md))
	bus.Publish(pipeline.Event{Type: pipeline.EventExportDone, RunID: run.ID})

	fmt.Printf("Pipeline complete: %d steps, %d insights, %d data points extracted\n",
		len(result.Steps), len(result.Insights), result.ExtractedData.Count())
	fmt.Printf("Report: %s\n", mdPath)
	return nil
}

// RunNews executes the multilingual news analysis demo over the built-in
// article set.
func (r *Runner) RunNews(ctx context.Context) (err error) {
	run := r.beginRun("news")
	defer func() { r.finishRun(run, err) }()

	articles := analyzer.SampleArticles()
	a := analyzer.New(r.Enhancer, r.Memory.Context("news_analyzer"), r.Observer)

	var analyses []*analyzer.Analysis
	for i, article := range articles {
		r.UI.UpdateStep(i+1, len(articles))
		r.UI.UpdateStatus("Analyzing: " + article.Title)

		analysis, aErr := a.Analyze(ctx, article)
		if aErr != nil {
			err = fmt.Errorf("analyzing %q: %w", article.Title, aErr)
			return err
		}
		analyses = append(analyses, analysis)
	}

	if _, err = r.Writer.WriteJSON("news_analysis", analyses); err != nil {
		return err
	}
	md, err := analyzer.GenerateReport(analyses)
	if err != nil {
		return err
	}
	mdPath, err := r.Writer.WriteMarkdown("news_report", md)
	if err != nil {
		return err
	}
	r.indexReport(run, "markdown", mdPath, []byte(md))

	fmt.Printf("Analyzed %d articles\n", len(analyses))
	fmt.Printf("Report: %s\n", mdPath)
	return nil
}

// RunDashboard executes the data intelligence demo. With a data
// directory, sources are discovered from disk; otherwise the built-in
// sample datasets are used.
func (r *Runner) RunDashboard(ctx context.Context, dataDir string) (err error) {
	run := r.beginRun("dashboard")
	defer func() { r.finishRun(run, err) }()

	sources := dashboard.SampleSources()
	if dataDir != "" {
		discovered, loadErrs := dashboard.DiscoverSources(dataDir)
		for _, e := range loadErrs {
			r.Observer.Log().Warn().Err(e).Msg("skipping data file")
		}
		if len(discovered) == 0 {
			err = fmt.Errorf("no usable data files in %s", dataDir)
			return err
		}
		sources = discovered
	}

	d := dashboard.New(r.Enhancer, r.Memory.Context("data_dashboard"), r.Observer)
	summary, err := d.Build(ctx, sources)
	if err != nil {
		return err
	}

	paths, err := dashboard.Export(r.Writer, summary, sources)
	if err != nil {
		return err
	}
	md, err := dashboard.GenerateReport(summary)
	if err != nil {
		return err
	}
	r.indexReport(run, "markdown", paths.Markdown, []byte(md))

	fmt.Println(dashboard.RenderTable(summary, sources))
	fmt.Printf("Artifacts: %s\n", paths.JSON)
	if paths.CSV != "" {
		fmt.Printf("           %s\n", paths.CSV)
	}
	fmt.Printf("           %s\n", paths.Markdown)
	return nil
}

// RunHub executes the communication hub demo. Console and file channels
// are always registered; Slack and webhook channels come from config.
func (r *Runner) RunHub(ctx context.Context, messagePath string) (err error) {
	run := r.beginRun("hub")
	defer func() { r.finishRun(run, err) }()

	content := hub.SampleMessage
	if messagePath != "" {
		data, readErr := os.ReadFile(messagePath) // #nosec G304
		if readErr != nil {
			err = fmt.Errorf("failed to read message file: %w", readErr)
			return err
		}
		content = string(data)
	}

	h := hub.New(r.Enhancer, r.Memory.Context("communication_hub"), r.Observer, r.Enforcer)
	h.Register(hub.NewConsoleChannel(os.Stdout))
	h.Register(hub.NewFileChannel(filepath.Join(r.Writer.OutputDir(), "notifications")))

	if token := r.lookupConfig("slack.token"); token != "" {
		if channel := r.lookupConfig("slack.channel"); channel != "" {
			h.Register(hub.NewSlackChannel(token, channel))
		}
	}
	if url := r.lookupConfig("webhook.url"); url != "" {
		h.Register(hub.NewWebhookChannel(url))
	}

	record, err := h.Distribute(ctx, "Agentium Notification", content)
	if err != nil {
		return err
	}

	// The built-in demo also pushes a workflow status update through the
	// same channels.
	if messagePath == "" {
		notification := h.WorkflowNotification(ctx, "Monthly Business Analytics", "Completed Successfully", hub.SampleWorkflowDetails())
		if _, err = h.Distribute(ctx, "Workflow Update", notification); err != nil {
			return err
		}
	}

	if _, err = r.Writer.WriteJSON("communication_record", record); err != nil {
		return err
	}

	fmt.Printf("Distributed to %d/%d channels\n", record.SuccessCount, len(record.Channels))
	for _, res := range record.Results {
		if res.Success {
			fmt.Printf("  %s: ok\n", res.Channel)
		} else {
			fmt.Printf("  %s: failed (%s)\n", res.Channel, res.Error)
		}
	}
	return nil
}

func (r *Runner) lookupConfig(key string) string {
	creds, err := credential.NewManager()
	if err != nil {
		creds = nil
	}
	return configLookup(r.Store, creds)(key)
}
