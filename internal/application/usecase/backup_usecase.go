package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/application/ports"
	"github.com/daftar-app/daftar/internal/domain"
	"github.com/daftar-app/daftar/internal/domain/calendar"
	"github.com/daftar-app/daftar/internal/domain/entity"
	"github.com/daftar-app/daftar/internal/domain/repository"
)

// BackupUseCase covers whole-document export/import, the GitHub remote sync
// and the settings block that configures it.
type BackupUseCase struct {
	store repository.Ledger
	sync  ports.SyncClient
}

// NewBackupUseCase builds the use case.
func NewBackupUseCase(store repository.Ledger, sync ports.SyncClient) *BackupUseCase {
	return &BackupUseCase{store: store, sync: sync}
}

// Export returns the complete ledger as a pretty-printed JSON snapshot, the
// same format the store writes to disk.
func (uc *BackupUseCase) Export() ([]byte, error) {
	return uc.store.Serialize()
}

// Import replaces the entire ledger with the given snapshot. A payload that
// is not a complete document is rejected in full and the current state
// survives untouched.
func (uc *BackupUseCase) Import(data []byte) (*dto.ImportResponse, error) {
	if err := uc.store.Deserialize(data); err != nil {
		return nil, err
	}
	return uc.importSummary(data)
}

// Push uploads the current snapshot to the configured GitHub repository. The
// commit message carries the Persian date of the backup.
func (uc *BackupUseCase) Push(ctx context.Context) (*dto.SyncResponse, error) {
	target, err := uc.target()
	if err != nil {
		return nil, err
	}
	data, err := uc.store.Serialize()
	if err != nil {
		return nil, err
	}
	message := fmt.Sprintf("Update accounting data - %s", calendar.Today())
	if err := uc.sync.Push(ctx, target, data, message); err != nil {
		return nil, err
	}
	return &dto.SyncResponse{Repo: target.Repo, File: target.File, Message: message}, nil
}

// Pull fetches the remote snapshot and adopts it as the new ledger state. An
// invalid remote payload is rejected without touching local state.
func (uc *BackupUseCase) Pull(ctx context.Context) (*dto.ImportResponse, error) {
	target, err := uc.target()
	if err != nil {
		return nil, err
	}
	data, err := uc.sync.Pull(ctx, target)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Deserialize(data); err != nil {
		return nil, err
	}
	return uc.importSummary(data)
}

// GetSettings reads the stored preferences. The token is reported as a flag
// only.
func (uc *BackupUseCase) GetSettings() (*dto.SettingsResponse, error) {
	s, err := uc.store.GetSettings()
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		Theme:    s.Theme,
		HasToken: s.GithubToken != "",
		RepoName: s.RepoName,
		FileName: s.FileName,
	}, nil
}

// UpdateSettings patches the stored preferences. Nil fields stay as they
// are; an explicit empty string clears the value.
func (uc *BackupUseCase) UpdateSettings(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.store.GetSettings()
	if err != nil {
		return nil, err
	}
	if in.Theme != nil {
		theme := strings.TrimSpace(*in.Theme)
		if theme != "dark" && theme != "light" {
			return nil, domain.ErrInvalidInput
		}
		s.Theme = theme
	}
	if in.GithubToken != nil {
		s.GithubToken = strings.TrimSpace(*in.GithubToken)
	}
	if in.RepoName != nil {
		s.RepoName = strings.TrimSpace(*in.RepoName)
	}
	if in.FileName != nil {
		name := strings.TrimSpace(*in.FileName)
		if name == "" {
			name = entity.DefaultSettings().FileName
		}
		s.FileName = name
	}
	if err := uc.store.UpdateSettings(s); err != nil {
		return nil, err
	}
	return uc.GetSettings()
}

// target assembles the sync target from settings; missing fields surface as
// ErrInvalidInput before any network call.
func (uc *BackupUseCase) target() (ports.SyncTarget, error) {
	s, err := uc.store.GetSettings()
	if err != nil {
		return ports.SyncTarget{}, err
	}
	if s.GithubToken == "" || s.RepoName == "" || s.FileName == "" {
		return ports.SyncTarget{}, fmt.Errorf("github sync is not configured: %w", domain.ErrInvalidInput)
	}
	return ports.SyncTarget{Token: s.GithubToken, Repo: s.RepoName, File: s.FileName}, nil
}

func (uc *BackupUseCase) importSummary(data []byte) (*dto.ImportResponse, error) {
	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &dto.ImportResponse{
		Products:      len(doc.Products),
		InputInvoices: len(doc.InputInvoices),
		SalesInvoices: len(doc.SalesInvoices),
	}, nil
}
