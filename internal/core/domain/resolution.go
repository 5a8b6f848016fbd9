package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Resolution is the outcome of a successful framework resolution.
type Resolution struct {
	// Frameworks are ordered by dependency: a framework referenced again by a
	// later node sorts after its dependents, so the root framework is last.
	Frameworks []ResolvedFramework
	// Attempts is the number of passes the fixed-point loop needed.
	Attempts int
}

// Fingerprint returns a stable hash of the ordered name, version and directory triples.
func (r *Resolution) Fingerprint() string {
	hasher := xxhash.New()
	for _, fx := range r.Frameworks {
		_, _ = hasher.WriteString(fx.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(fx.Found.String())
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(fx.Directory)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// ResolutionRecord is the persisted summary of the last resolution of an application.
type ResolutionRecord struct {
	ConfigPath  string    `json:"config_path,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Frameworks  []string  `json:"frameworks,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// NewResolutionRecord summarizes r for storage.
func NewResolutionRecord(configPath string, r *Resolution, now time.Time) ResolutionRecord {
	names := make([]string, len(r.Frameworks))
	for i, fx := range r.Frameworks {
		names[i] = fx.Name + "@" + fx.Found.String()
	}
	return ResolutionRecord{
		ConfigPath:  configPath,
		Fingerprint: r.Fingerprint(),
		Frameworks:  names,
		Timestamp:   now,
	}
}
