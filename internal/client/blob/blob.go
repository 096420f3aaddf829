// Package blob stores photo attachments under path-addressed keys and
// hands back retrieval URLs. Two backends: Google Cloud Storage for
// deployments and a local-disk store for development.
package blob

import "context"

type Store interface {
	Save(ctx context.Context, path string, data []byte) (string, error)
}
