package services

import "context"

// fakeTravelModel lets tests script the generative collaborator.
type fakeTravelModel struct {
	summaryFn    func(ctx context.Context, prompt string) (string, error)
	structuredFn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeTravelModel) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	return f.summaryFn(ctx, prompt)
}

func (f *fakeTravelModel) GenerateStructuredItinerary(ctx context.Context, prompt string) (string, error) {
	return f.structuredFn(ctx, prompt)
}
