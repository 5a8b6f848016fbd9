package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/fxr/internal/core/domain"
)

// Vertex implements ports.Vertex on a progrock vertex. Warnings go to the
// vertex's error stream so a renderer can tell unusable installs apart from
// ordinary search progress.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log writes a leveled line to the vertex.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "%-5s %s\n", level.String(), msg)
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as satisfied by an exact directory match.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
