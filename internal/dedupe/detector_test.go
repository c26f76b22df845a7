package dedupe

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/docintel/constants"
	"github.com/joseph-ayodele/docintel/internal/entity"
)

type fakeFileStore struct {
	files []*entity.File
}

func (f *fakeFileStore) ListByOwnerAndHash(_ context.Context, ownerID uuid.UUID, hash []byte, exclude uuid.UUID) ([]*entity.File, error) {
	var out []*entity.File
	for _, file := range f.files {
		if file.OwnerID != ownerID || file.ID == exclude || file.DeletedAt != nil {
			continue
		}
		if !bytes.Equal(file.ContentHash, hash) {
			continue
		}
		out = append(out, file)
	}
	return out, nil
}

type fakeFlagStore struct {
	flags map[[3]uuid.UUID]*entity.DuplicateFlag
}

func newFakeFlagStore() *fakeFlagStore {
	return &fakeFlagStore{flags: map[[3]uuid.UUID]*entity.DuplicateFlag{}}
}

func (f *fakeFlagStore) CreateIfAbsent(_ context.Context, flag *entity.DuplicateFlag) (*entity.DuplicateFlag, bool, error) {
	key := [3]uuid.UUID{flag.OwnerID, flag.FileID, flag.DuplicateFileID}
	if existing, ok := f.flags[key]; ok {
		return existing, false, nil
	}
	stored := *flag
	stored.ID = uuid.New()
	f.flags[key] = &stored
	return &stored, true, nil
}

func TestDetectDuplicatesCanonicalOrder(t *testing.T) {
	owner := uuid.New()
	hash := []byte{0xAA, 0xBB}
	a := &entity.File{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), OwnerID: owner, ContentHash: hash}
	b := &entity.File{ID: uuid.MustParse("ffffffff-0000-0000-0000-000000000001"), OwnerID: owner, ContentHash: hash}

	files := &fakeFileStore{files: []*entity.File{a}}
	flags := newFakeFlagStore()
	d := NewDetector(files, flags, nil)

	// detection runs for the later upload, but the earlier id is file_id
	got, err := d.DetectDuplicates(context.Background(), b)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].FileID)
	assert.Equal(t, b.ID, got[0].DuplicateFileID)
	assert.Equal(t, constants.DuplicateOpen, got[0].Status)
	assert.Equal(t, constants.DuplicateReasonHashMatch, got[0].Reason)
}

func TestDetectDuplicatesIdempotent(t *testing.T) {
	owner := uuid.New()
	hash := []byte{0x01}
	a := &entity.File{ID: uuid.New(), OwnerID: owner, ContentHash: hash}
	b := &entity.File{ID: uuid.New(), OwnerID: owner, ContentHash: hash}

	files := &fakeFileStore{files: []*entity.File{a, b}}
	flags := newFakeFlagStore()
	d := NewDetector(files, flags, nil)

	_, err := d.DetectDuplicates(context.Background(), a)
	require.NoError(t, err)
	_, err = d.DetectDuplicates(context.Background(), b)
	require.NoError(t, err)
	// one flag per unordered pair regardless of which side ran detection
	assert.Len(t, flags.flags, 1)
}

func TestDetectDuplicatesScopedToOwner(t *testing.T) {
	hash := []byte{0x02}
	mine := &entity.File{ID: uuid.New(), OwnerID: uuid.New(), ContentHash: hash}
	theirs := &entity.File{ID: uuid.New(), OwnerID: uuid.New(), ContentHash: hash}

	files := &fakeFileStore{files: []*entity.File{theirs}}
	flags := newFakeFlagStore()
	d := NewDetector(files, flags, nil)

	got, err := d.DetectDuplicates(context.Background(), mine)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, flags.flags)
}

func TestDetectDuplicatesSkipsEmptyHash(t *testing.T) {
	d := NewDetector(&fakeFileStore{}, newFakeFlagStore(), nil)
	got, err := d.DetectDuplicates(context.Background(), &entity.File{ID: uuid.New(), OwnerID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, got)
}
