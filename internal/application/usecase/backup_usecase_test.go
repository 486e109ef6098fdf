package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/application/ports"
	"github.com/daftar-app/daftar/internal/application/usecase"
	"github.com/daftar-app/daftar/internal/domain"
	"github.com/daftar-app/daftar/internal/domain/entity"
)

// fakeSyncClient records pushes and serves a canned pull payload.
type fakeSyncClient struct {
	pushed  []byte
	message string
	remote  []byte
	err     error
}

func (f *fakeSyncClient) Push(_ context.Context, _ ports.SyncTarget, content []byte, message string) error {
	if f.err != nil {
		return f.err
	}
	f.pushed = content
	f.message = message
	return nil
}

func (f *fakeSyncClient) Pull(_ context.Context, _ ports.SyncTarget) ([]byte, error) {
	return f.remote, f.err
}

func strptr(s string) *string { return &s }

func newBackupUseCase(t *testing.T) (*usecase.BackupUseCase, *fakeSyncClient, *usecase.ProductUseCase) {
	t.Helper()
	store := newTestStore(t)
	sync := &fakeSyncClient{}
	return usecase.NewBackupUseCase(store, sync), sync, usecase.NewProductUseCase(store)
}

func configureSync(t *testing.T, backup *usecase.BackupUseCase) {
	t.Helper()
	_, err := backup.UpdateSettings(dto.UpdateSettingsRequest{
		GithubToken: strptr("ghp_test"),
		RepoName:    strptr("someone/ledger-backup"),
	})
	require.NoError(t, err)
}

func TestExportImport_RoundTrip(t *testing.T) {
	backup, _, products := newBackupUseCase(t)
	createProduct(t, products, "پیچ", 1000)
	createProduct(t, products, "مهره", 500)

	data, err := backup.Export()
	require.NoError(t, err)

	other, _, _ := newBackupUseCase(t)
	summary, err := other.Import(data)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Products)
	assert.Equal(t, 0, summary.InputInvoices)

	roundTrip, err := other.Export()
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(roundTrip))
}

func TestImport_RejectsPartialDocument(t *testing.T) {
	backup, _, products := newBackupUseCase(t)
	createProduct(t, products, "پیچ", 1000)

	_, err := backup.Import([]byte(`{"products":[]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)

	data, err := backup.Export()
	require.NoError(t, err)
	assert.Contains(t, string(data), "پیچ", "a rejected import keeps the prior state")
}

func TestPush_SendsSnapshotWithPersianDateMessage(t *testing.T) {
	backup, sync, products := newBackupUseCase(t)
	configureSync(t, backup)
	createProduct(t, products, "پیچ", 1000)

	resp, err := backup.Push(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "someone/ledger-backup", resp.Repo)
	assert.Equal(t, "accounting-data.json", resp.File, "file name defaults from settings")
	assert.Regexp(t, `^Update accounting data - \d{4}/\d{2}/\d{2}$`, sync.message)
	assert.Contains(t, string(sync.pushed), "پیچ")
}

func TestPush_UnconfiguredFails(t *testing.T) {
	backup, _, _ := newBackupUseCase(t)
	_, err := backup.Push(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPull_AdoptsRemoteSnapshot(t *testing.T) {
	source, _, products := newBackupUseCase(t)
	createProduct(t, products, "آچار", 2500)
	remote, err := source.Export()
	require.NoError(t, err)

	backup, sync, _ := newBackupUseCase(t)
	configureSync(t, backup)
	sync.remote = remote

	summary, err := backup.Pull(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Products)
}

func TestPull_InvalidRemoteKeepsLocalState(t *testing.T) {
	backup, sync, products := newBackupUseCase(t)
	configureSync(t, backup)
	createProduct(t, products, "پیچ", 1000)
	sync.remote = []byte(`{"inputInvoices":[]}`)

	_, err := backup.Pull(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidSnapshot)

	data, err := backup.Export()
	require.NoError(t, err)
	assert.Contains(t, string(data), "پیچ")
}

func TestSettings_DefaultsAndPatch(t *testing.T) {
	backup, _, _ := newBackupUseCase(t)

	s, err := backup.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "dark", s.Theme)
	assert.Equal(t, entity.DefaultSettings().FileName, s.FileName)
	assert.False(t, s.HasToken)

	s, err = backup.UpdateSettings(dto.UpdateSettingsRequest{
		Theme:       strptr("light"),
		GithubToken: strptr("ghp_x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "light", s.Theme)
	assert.True(t, s.HasToken, "the token itself is never echoed")

	_, err = backup.UpdateSettings(dto.UpdateSettingsRequest{Theme: strptr("sepia")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
