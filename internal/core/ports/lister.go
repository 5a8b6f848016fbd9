// Package ports defines the core interfaces for the application.
package ports

// DirectoryLister is the read-only filesystem view the resolvers search.
//
//go:generate go run go.uber.org/mock/mockgen -source=lister.go -destination=mocks/mock_lister.go -package=mocks
type DirectoryLister interface {
	// ListSubdirectories returns the names of the immediate subdirectories of path.
	// A missing path yields an empty list, not an error.
	ListSubdirectories(path string) ([]string, error)

	// Exists reports whether path is an existing directory.
	Exists(path string) bool
}
