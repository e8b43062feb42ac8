// Package analysis implements the dependency analysis engine: the reverse index,
// the forward dependency cache, the atlas membership index and the facade that
// ties them to a session.
package analysis

import (
	"context"
	"fmt"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/zerr"
)

// Analyzer answers dependency queries and owns the session caches.
// It is not safe for concurrent use.
type Analyzer struct {
	cfg      *domain.Config
	resolver ports.DependencyResolver
	loader   ports.AtlasLoader
	logger   ports.Logger
	tracer   ports.Tracer
	session  *Session
}

// NewAnalyzer creates a new Analyzer with an empty session.
func NewAnalyzer(
	cfg *domain.Config,
	resolver ports.DependencyResolver,
	loader ports.AtlasLoader,
	fsys ports.Filesystem,
	logger ports.Logger,
	tracer ports.Tracer,
	progress ports.Progress,
) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		resolver: resolver,
		loader:   loader,
		logger:   logger,
		tracer:   tracer,
		session: &Session{
			Reverse: NewReverseIndexBuilder(resolver, progress, logger),
			Forward: NewForwardDependencyCache(resolver),
			Atlas:   NewAtlasMembershipIndex(fsys, loader, logger),
		},
	}
}

// AnalyzeForwardDependencies lists everything id depends on, transitively.
func (a *Analyzer) AnalyzeForwardDependencies(ctx context.Context, id domain.AssetID) (*domain.QueryResult, error) {
	if id.IsZero() {
		return nil, domain.ErrNoAssetSelected
	}
	a.session.last = nil

	ctx, span := a.tracer.Start(ctx, "analysis.dependencies", ports.WithAttribute("asset", id.String()))
	defer span.End()

	deps, hit, err := a.session.Forward.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("cache.hit", hit)
	span.SetAttribute("result.count", len(deps))

	result := domain.NewQueryResult(domain.QueryForward, id, deps)
	a.session.last = result
	return result, nil
}

// AnalyzeReferences lists the assets that directly depend on id.
// Images are additionally attributed to the atlas that packs them.
func (a *Analyzer) AnalyzeReferences(ctx context.Context, id domain.AssetID) (*domain.QueryResult, error) {
	if id.IsZero() {
		return nil, domain.ErrNoAssetSelected
	}
	a.session.last = nil

	ctx, span := a.tracer.Start(ctx, "analysis.references", ports.WithAttribute("asset", id.String()))
	defer span.End()

	refs, err := a.references(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("result.count", len(refs))

	result := domain.NewQueryResult(domain.QueryReferences, id, refs)
	a.session.last = result
	return result, nil
}

func (a *Analyzer) references(ctx context.Context, id domain.AssetID) ([]domain.AssetID, error) {
	index, err := a.ensureReverseIndex(ctx)
	if err != nil {
		return nil, err
	}

	refs, ok := index.Lookup(id)
	if !ok {
		return nil, assetError(domain.ErrNoReferences, "asset is not part of the reverse index", id)
	}

	if !a.cfg.IsImage(id) {
		return refs, nil
	}

	if a.session.Atlas.State() == domain.IndexUninitialized {
		if err := a.session.Atlas.Build(ctx, a.cfg.AtlasFolderPath); err != nil {
			return nil, err
		}
	}

	owner, found := a.session.Atlas.FindOwningAtlas(id.BaseName())
	if !found {
		return refs, nil
	}
	if index.AppendUnique(id, owner) {
		a.logger.Info(fmt.Sprintf("%s is packed into %s", id, owner))
	}
	refs, _ = index.Lookup(id)
	return refs, nil
}

func (a *Analyzer) ensureReverseIndex(ctx context.Context) (*domain.ReverseIndex, error) {
	if a.session.Reverse.State() == domain.IndexBuilt {
		return a.session.Reverse.Index(), nil
	}

	ctx, span := a.tracer.Start(ctx, "analysis.reverse_index")
	defer span.End()

	universe, err := a.resolver.EnumerateUniverse(ctx)
	if err != nil {
		err = resolverFailure(err, "failed to enumerate assets", domain.AssetID{})
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("universe.size", len(universe))

	index, err := a.session.Reverse.Build(ctx, universe)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return index, nil
}

// AnalyzeAtlasMembers lists the member names of the atlas stored at id, in file order.
func (a *Analyzer) AnalyzeAtlasMembers(ctx context.Context, id domain.AssetID) (*domain.QueryResult, error) {
	if id.IsZero() {
		return nil, domain.ErrNoAssetSelected
	}
	a.session.last = nil

	ctx, span := a.tracer.Start(ctx, "analysis.atlas", ports.WithAttribute("asset", id.String()))
	defer span.End()

	atlas, err := a.loader.Load(ctx, id)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to load atlas"), "asset", id.String())
		span.RecordError(err)
		return nil, err
	}
	if atlas == nil {
		err = assetError(domain.ErrNotAnAtlas, "type error", id)
		span.RecordError(err)
		return nil, err
	}

	result := &domain.QueryResult{
		Kind:    domain.QueryAtlasMembers,
		Subject: id,
		Items:   atlas.MemberNames(),
	}
	span.SetAttribute("result.count", len(result.Items))
	a.session.last = result
	return result, nil
}

// Reset drops every session cache. Resolvers holding their own caches are reset too.
func (a *Analyzer) Reset() {
	a.session.Reset()
	if r, ok := a.resolver.(interface{ Reset() }); ok {
		r.Reset()
	}
	a.logger.Info("session reset")
}

// State reports the state of the session caches.
func (a *Analyzer) State() SessionState {
	state := SessionState{
		ReverseIndex:  a.session.Reverse.State(),
		AtlasIndex:    a.session.Atlas.State(),
		Atlases:       a.session.Atlas.Len(),
		CachedForward: a.session.Forward.Len(),
	}
	if index := a.session.Reverse.Index(); index != nil {
		state.IndexedAssets = index.Len()
	}
	return state
}

// LastResult returns the result of the most recent successful query, or nil.
func (a *Analyzer) LastResult() *domain.QueryResult {
	return a.session.last
}
