// Package app implements the application layer for sectx.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/atotto/clipboard"
	"go.trai.ch/sectx/internal/adapters/fs"
	"go.trai.ch/sectx/internal/adapters/telemetry"
	"go.trai.ch/sectx/internal/core/domain"
	"go.trai.ch/sectx/internal/core/ports"
	"go.trai.ch/sectx/internal/engine/builder"
	"go.trai.ch/sectx/internal/engine/collector"
	"go.trai.ch/sectx/internal/engine/links"
	"go.trai.ch/sectx/internal/engine/resolver"
	"go.trai.ch/sectx/internal/engine/staleness"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	documents     ports.DocumentLoader
	stores        ports.StoreOpener
	fingerprinter ports.Fingerprinter
	summarizers   ports.SummarizerFactory
	tracer        ports.Tracer
	logger        ports.Logger

	registry        *Registry
	noAutoUpdate    bool
	copyToClipboard func(string) error
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	documents ports.DocumentLoader,
	stores ports.StoreOpener,
	fingerprinter ports.Fingerprinter,
	summarizers ports.SummarizerFactory,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader:    loader,
		documents:       documents,
		stores:          stores,
		fingerprinter:   fingerprinter,
		summarizers:     summarizers,
		tracer:          tracer,
		logger:          log,
		registry:        NewRegistry(),
		copyToClipboard: clipboard.WriteAll,
	}
}

// WithClipboard replaces the clipboard writer. Used for testing.
func (a *App) WithClipboard(write func(string) error) *App {
	a.copyToClipboard = write
	return a
}

// DisableAutoUpdate turns off rebuild-on-read regardless of config.
func (a *App) DisableAutoUpdate() {
	a.noAutoUpdate = true
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// UseJSONLogs switches the logger to JSON lines when it supports it.
func (a *App) UseJSONLogs() {
	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(true)
	}
}

// Registry returns the injection hook registry.
func (a *App) Registry() *Registry {
	return a.registry
}

// EnableTracing exports spans to w until the returned function is called.
func (a *App) EnableTracing(w io.Writer) (func(context.Context) error, error) {
	return telemetry.Setup(w)
}

// session is everything needed to work on one document.
type session struct {
	doc       ports.Document
	cfg       domain.Config
	store     ports.EntryStore
	collector *collector.Collector
	builder   *builder.Builder
	checker   *staleness.Checker
}

func (a *App) open(docPath string) (*session, error) {
	doc, err := a.documents.Load(docPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(doc.Path())
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, err
	}
	if a.noAutoUpdate {
		cfg.AutoUpdate = false
	}

	cachePath := fs.NewLocator(cfg.CacheSuffix, cfg.CacheDir).Locate(doc.Path())
	return &session{
		doc:       doc,
		cfg:       cfg,
		store:     a.stores.Open(cachePath),
		collector: collector.New(links.NewExtractor(dir, cfg.AttachmentDir)),
		builder:   builder.New(fs.NewReader(cfg.BinaryProbeBytes), a.fingerprinter, a.tracer, a.logger),
		checker:   staleness.NewChecker(a.fingerprinter),
	}, nil
}

func (s *session) request(col domain.Collected, variant domain.Variant, summarizers ports.SummarizerFactory) builder.Request {
	req := builder.Request{
		Collected:    col,
		Variant:      variant,
		Store:        s.store,
		SystemPrompt: s.cfg.Summarizer.SystemPrompt,
	}
	if variant == domain.VariantSummary && len(s.cfg.Summarizer.Command) > 0 {
		req.Summarizer = summarizers.For(s.cfg.Summarizer)
	}
	return req
}

// Build builds and stores the entry of one variant for the selected section.
func (a *App) Build(ctx context.Context, docPath string, sel Selector, variant domain.Variant) (*domain.Entry, error) {
	s, err := a.open(docPath)
	if err != nil {
		return nil, err
	}
	sec, err := sel.Select(s.doc)
	if err != nil {
		return nil, err
	}

	col := s.collector.Collect(s.doc, sec)
	entry, err := s.builder.Build(ctx, s.request(col, variant, a.summarizers))
	if err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("built %s entry for %s from %d files", variant, col.HeadingPath, len(entry.FileHashes)))
	return entry, nil
}

// BuildVariants builds several variants of the selected section
// concurrently. Each variant is written or fails on its own; the returned
// entries keep the order of variants and omit failed builds.
func (a *App) BuildVariants(
	ctx context.Context,
	docPath string,
	sel Selector,
	variants []domain.Variant,
) ([]*domain.Entry, error) {
	s, err := a.open(docPath)
	if err != nil {
		return nil, err
	}
	sec, err := sel.Select(s.doc)
	if err != nil {
		return nil, err
	}

	col := s.collector.Collect(s.doc, sec)
	if len(col.Files) == 0 {
		return nil, domain.ErrNoLinks
	}

	type indexed struct {
		i   int
		res builder.Result
	}
	done := make(chan indexed, len(variants))
	for i, v := range variants {
		s.builder.BuildAsync(ctx, s.request(col, v, a.summarizers), func(res builder.Result) {
			done <- indexed{i: i, res: res}
		})
	}

	built := make([]*domain.Entry, len(variants))
	var errs error
	for range variants {
		r := <-done
		if r.res.Err != nil {
			errs = errors.Join(errs, zerr.With(r.res.Err, "variant", variants[r.i].String()))
			continue
		}
		built[r.i] = r.res.Entry
	}

	var entries []*domain.Entry
	for _, e := range built {
		if e != nil {
			a.logger.Info(fmt.Sprintf("built %s entry for %s from %d files", e.Variant, col.HeadingPath, len(e.FileHashes)))
			entries = append(entries, e)
		}
	}
	return entries, errs
}

// Target names one variant or all of them for build and invalidate.
type Target string

// Build and invalidate targets.
const (
	TargetFiles   Target = "files"
	TargetSummary Target = "summary"
	TargetAll     Target = "all"
)

// Variants returns the variants covered by the target.
func (t Target) Variants() ([]domain.Variant, error) {
	if t == TargetAll {
		return []domain.Variant{domain.VariantFiles, domain.VariantSummary}, nil
	}
	v, err := domain.ParseVariant(string(t))
	if err != nil {
		return nil, err
	}
	return []domain.Variant{v}, nil
}

// Invalidate deletes the selected section's entries and reports how many existed.
func (a *App) Invalidate(_ context.Context, docPath string, sel Selector, target Target) (int, error) {
	variants, err := target.Variants()
	if err != nil {
		return 0, err
	}
	s, err := a.open(docPath)
	if err != nil {
		return 0, err
	}
	sec, err := sel.Select(s.doc)
	if err != nil {
		return 0, err
	}

	path := PathOf(sec)
	removed := 0
	for _, v := range variants {
		id := domain.HeadingID(path, v)
		existing, err := s.store.Find(id, v)
		if err != nil {
			return removed, err
		}
		if existing == nil {
			continue
		}
		if err := s.store.Delete(id, v); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// EntryStatus describes one stored entry.
type EntryStatus struct {
	Entry *domain.Entry
	// Changed lists recorded files whose fingerprint no longer matches.
	Changed []string
}

// Valid reports whether every recorded file is unchanged.
func (e EntryStatus) Valid() bool {
	return len(e.Changed) == 0
}

// Status summarizes the cache resource of a document.
type Status struct {
	CachePath string
	Digest    string
	Entries   []EntryStatus
}

// Status lists every stored entry with its validity.
func (a *App) Status(_ context.Context, docPath string) (*Status, error) {
	s, err := a.open(docPath)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.List()
	if err != nil {
		return nil, err
	}
	digest, err := s.store.Digest()
	if err != nil {
		return nil, err
	}

	st := &Status{CachePath: s.store.Path(), Digest: digest}
	for _, e := range entries {
		st.Entries = append(st.Entries, EntryStatus{Entry: e, Changed: s.checker.SubsetStale(e.FileHashes)})
	}
	return st, nil
}

// GetContext returns the cached context that applies to the selected
// section. It never fails: any error or panic means no context.
func (a *App) GetContext(ctx context.Context, docPath string, sel Selector) (content string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error(zerr.With(zerr.New("context lookup panicked"), "panic", fmt.Sprint(r)))
			content, ok = "", false
		}
	}()

	res, err := a.resolve(ctx, docPath, sel)
	if err != nil {
		if !errors.Is(err, domain.ErrContextDisabled) {
			a.logger.Warn(fmt.Sprintf("no context: %v", err))
		}
		return "", false
	}
	if res == nil {
		return "", false
	}
	return res.Entry.Content, true
}

func (a *App) resolve(ctx context.Context, docPath string, sel Selector) (*resolver.Result, error) {
	s, err := a.open(docPath)
	if err != nil {
		return nil, err
	}
	if !s.cfg.Enabled {
		return nil, domain.ErrContextDisabled
	}
	sec, err := sel.Select(s.doc)
	if err != nil {
		return nil, err
	}

	col := s.collector.Collect(s.doc, sec)
	r := resolver.New(s.checker, a.tracer, a.logger)
	res, found := r.Resolve(ctx, s.store, resolver.Request{
		HeadingPath: col.HeadingPath,
		Files:       col.Files,
		Preference:  collector.Preference(col, s.cfg),
		AutoUpdate:  s.cfg.AutoUpdate,
		Rebuild: func(ctx context.Context, variant domain.Variant) error {
			_, err := s.builder.Build(ctx, s.request(col, variant, a.summarizers))
			return err
		},
	})
	if !found {
		return nil, nil
	}
	return &res, nil
}

// Inject returns prompt with the selected section's context spliced in by
// the registered hooks. The prompt is returned unchanged when injection is
// disabled or no context applies.
func (a *App) Inject(ctx context.Context, docPath string, sel Selector, prompt string) string {
	if !a.registry.Enabled() {
		return prompt
	}
	sectionContext, ok := a.GetContext(ctx, docPath, sel)
	if !ok {
		return prompt
	}
	return a.registry.Apply(prompt, sectionContext)
}

// EnableInjection turns injection on with the default splice hook and
// returns the teardown that undoes both.
func (a *App) EnableInjection() (teardown func()) {
	deregister := a.registry.Register("prepend-context", PrependContext)
	a.registry.SetEnabled(true)
	return func() {
		a.registry.SetEnabled(false)
		deregister()
	}
}

// CopyContext places the selected section's context on the clipboard.
func (a *App) CopyContext(ctx context.Context, docPath string, sel Selector) (string, error) {
	content, ok := a.GetContext(ctx, docPath, sel)
	if !ok {
		return "", domain.ErrEntryNotFound
	}
	if err := a.copyToClipboard(content); err != nil {
		return "", zerr.Wrap(err, domain.ErrClipboardFailed.Error())
	}
	return content, nil
}

// Components bundles what the command layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
