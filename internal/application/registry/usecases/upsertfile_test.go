package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modgate/internal/application/registry/dto"
	"modgate/internal/domain/registry"
	apperrors "modgate/internal/shared/errors"
	"modgate/internal/shared/logger"
	"modgate/internal/shared/services/markdown"
)

type fakeFileRepo struct {
	mu      sync.Mutex
	entries map[string]*registry.FileEntry
	nextID  uint
	err     error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{entries: make(map[string]*registry.FileEntry)}
}

func (f *fakeFileRepo) GetByName(_ context.Context, name string) (*registry.FileEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	entry, ok := f.entries[name]
	if !ok {
		return nil, registry.ErrEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeFileRepo) Upsert(_ context.Context, entry *registry.FileEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	copied := *entry
	if existing, ok := f.entries[entry.Name]; ok {
		copied.ID = existing.ID
	} else {
		f.nextID++
		copied.ID = f.nextID
	}
	f.entries[entry.Name] = &copied
	return nil
}

func (f *fakeFileRepo) Delete(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.entries[name]
	delete(f.entries, name)
	return ok, nil
}

func (f *fakeFileRepo) List(_ context.Context) ([]*registry.FileEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*registry.FileEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		out = append(out, entry)
	}
	return out, nil
}

func TestUpsertFileCreatesAndReplaces(t *testing.T) {
	files := newFakeFileRepo()
	uc := NewUpsertFileUseCase(files, time.Second, logger.NewLogger())

	first, err := uc.Execute(context.Background(), dto.UpsertFileRequest{
		Name:    "toolkit",
		Locator: "https://cdn.example.com/toolkit-1.0.zip",
		Notes:   "initial release",
	})
	require.NoError(t, err)
	assert.Equal(t, "toolkit", first.Name)

	second, err := uc.Execute(context.Background(), dto.UpsertFileRequest{
		Name:    "toolkit",
		Locator: "https://cdn.example.com/toolkit-1.1.zip",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "https://cdn.example.com/toolkit-1.1.zip", second.Locator)
}

func TestUpsertFileValidation(t *testing.T) {
	uc := NewUpsertFileUseCase(newFakeFileRepo(), time.Second, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.UpsertFileRequest{Locator: "x"})
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetAppError(err).Type)

	_, err = uc.Execute(context.Background(), dto.UpsertFileRequest{Name: "x"})
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetAppError(err).Type)
}

func TestDeleteFileIdempotent(t *testing.T) {
	files := newFakeFileRepo()
	upsert := NewUpsertFileUseCase(files, time.Second, logger.NewLogger())
	del := NewDeleteFileUseCase(files, time.Second, logger.NewLogger())

	_, err := upsert.Execute(context.Background(), dto.UpsertFileRequest{
		Name:    "toolkit",
		Locator: "https://cdn.example.com/toolkit-1.0.zip",
	})
	require.NoError(t, err)

	resp, err := del.Execute(context.Background(), "toolkit")
	require.NoError(t, err)
	assert.True(t, resp.Existed)

	resp, err = del.Execute(context.Background(), "toolkit")
	require.NoError(t, err)
	assert.False(t, resp.Existed)
}

func TestRenderNotesSanitizesHTML(t *testing.T) {
	files := newFakeFileRepo()
	entry, err := registry.NewFileEntry("toolkit", "https://cdn.example.com/toolkit.zip",
		"# Release\n\n**bold** <script>alert(1)</script>")
	require.NoError(t, err)
	require.NoError(t, files.Upsert(context.Background(), entry))

	uc := NewRenderNotesUseCase(files, markdown.NewService(), time.Second, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), "toolkit")
	require.NoError(t, err)
	assert.Contains(t, resp.HTML, "<strong>bold</strong>")
	assert.NotContains(t, resp.HTML, "<script>")
}

func TestRenderNotesMissingEntry(t *testing.T) {
	uc := NewRenderNotesUseCase(newFakeFileRepo(), markdown.NewService(), time.Second, logger.NewLogger())

	_, err := uc.Execute(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeResourceNotFound, apperrors.GetAppError(err).Type)
}
