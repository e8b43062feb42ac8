package ports

import "go.trai.ch/depscope/internal/core/domain"

// Renderer presents progress and query results to the user.
// It is the only place that knows about colors and highlight prefixes.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	Progress

	// RenderResult writes the result of a query.
	RenderResult(result *domain.QueryResult) error

	// Notice writes a short status line, such as a completion message.
	Notice(msg string)
}
