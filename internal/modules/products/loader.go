package products

import "context"

// Loader produces the current product collection.
// Implementations must honor ctx cancellation.
type Loader interface {
	Load(ctx context.Context) ([]Product, error)
}

type LoaderFunc func(ctx context.Context) ([]Product, error)

func (f LoaderFunc) Load(ctx context.Context) ([]Product, error) { return f(ctx) }

// Result is the outcome of one load. Products is never nil.
type Result struct {
	Products []Product
	Err      error
}

func (r Result) OK() bool { return r.Err == nil }

// Fetch runs l once and folds its outcome into a Result.
// A failed load carries an empty collection.
func Fetch(ctx context.Context, l Loader) Result {
	items, err := l.Load(ctx)
	if err != nil {
		return Result{Products: []Product{}, Err: err}
	}
	if items == nil {
		items = []Product{}
	}
	return Result{Products: items}
}
