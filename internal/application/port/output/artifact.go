package output

import (
	"context"
	"io"

	"ui-verifier/internal/domain/entity"
)

type ArtifactStore interface {
	Persist(ctx context.Context, path string, data io.Reader) error
}

// SnapshotRenderer turns a captured page into the document saved next to the error screenshot.
type SnapshotRenderer interface {
	Render(snapshot *entity.PageSnapshot) string
}
