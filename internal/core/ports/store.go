package ports

import "go.trai.ch/fxr/internal/core/domain"

// ResolutionStore defines the interface for storing the last resolution of each application.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResolutionStore interface {
	// Get retrieves the record for a runtime config path.
	// Returns nil, nil if not found.
	Get(configPath string) (*domain.ResolutionRecord, error)

	// Put stores the record.
	Put(record domain.ResolutionRecord) error
}
