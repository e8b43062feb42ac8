package analysis_test

import (
	"context"
	"testing"

	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports"
	"go.trai.ch/depscope/internal/core/ports/mocks"
	"go.trai.ch/depscope/internal/engine/analysis"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cfg      *domain.Config
	resolver *mocks.MockDependencyResolver
	loader   *mocks.MockAtlasLoader
	fs       *mocks.MockFilesystem
	logger   *mocks.MockLogger
	tracer   *mocks.MockTracer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		cfg:      domain.DefaultConfig(),
		resolver: mocks.NewMockDependencyResolver(ctrl),
		loader:   mocks.NewMockAtlasLoader(ctrl),
		fs:       mocks.NewMockFilesystem(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		tracer:   mocks.NewMockTracer(ctrl),
	}

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	f.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	return f
}

func (f *fixture) analyzer() *analysis.Analyzer {
	return f.analyzerWithProgress(nil)
}

func (f *fixture) analyzerWithProgress(progress ports.Progress) *analysis.Analyzer {
	return analysis.NewAnalyzer(f.cfg, f.resolver, f.loader, f.fs, f.logger, f.tracer, progress)
}

// graph wires ForwardDeps(id, false) for every key of direct.
func (f *fixture) graph(direct map[string][]string) {
	for id, deps := range direct {
		f.resolver.EXPECT().
			ForwardDeps(gomock.Any(), domain.NewAssetID(id), false).
			Return(domain.NewAssetIDs(deps...), nil).
			AnyTimes()
	}
}

func ids(paths ...string) []domain.AssetID {
	return domain.NewAssetIDs(paths...)
}

func newAnalyzerWithResolver(f *fixture, resolver ports.DependencyResolver) *analysis.Analyzer {
	return analysis.NewAnalyzer(f.cfg, resolver, f.loader, f.fs, f.logger, f.tracer, nil)
}
