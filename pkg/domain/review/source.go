package review

import "context"

// DiscoverOptions narrows which files a FileSource returns.
type DiscoverOptions struct {
	// IncludeJS adds JavaScript test files to the TypeScript default.
	IncludeJS bool
	// Exclude holds glob patterns matched against base names and paths.
	Exclude []string
}

// FileSource finds candidate files and loads their content.
type FileSource interface {
	// Discover returns candidate paths under root in a stable order.
	Discover(ctx context.Context, root string, opts DiscoverOptions) ([]string, error)
	// Read returns the UTF-8 content of path.
	Read(path string) (string, error)
}
