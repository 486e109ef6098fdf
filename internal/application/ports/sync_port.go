package ports

import "context"

// SyncTarget identifies the remote file a ledger snapshot is pushed to or
// pulled from. Repo is the "owner/name" form.
type SyncTarget struct {
	Token string
	Repo  string
	File  string
}

// SyncClient is the port for the remote backup of the serialized ledger.
// Push uploads a complete snapshot; Pull fetches the remote one. The caller
// owns validation of the pulled payload before adopting it.
type SyncClient interface {
	Push(ctx context.Context, target SyncTarget, content []byte, message string) error
	Pull(ctx context.Context, target SyncTarget) ([]byte, error)
}
