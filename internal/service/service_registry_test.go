package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/jortega/trackvault/internal/crypto"
	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/internal/mock"
	"github.com/jortega/trackvault/internal/store"
	"github.com/jortega/trackvault/models"
)

func newTestRegistry(t *testing.T) (MasterPasswordRegistry, *mock.MockVaultRecordRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock.NewMockVaultRecordRepository(ctrl)
	return NewMasterPasswordRegistry(records, crypto.NewEnvelopeCodec(), logger.Nop()), records
}

func TestCreateVault(t *testing.T) {
	registry, records := newTestRegistry(t)
	ctx := context.Background()

	var saved models.MasterVaultRecord
	records.EXPECT().
		CreateVaultRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.MasterVaultRecord) error {
			saved = record
			return nil
		})

	record, err := registry.CreateVault(ctx, "acc-1", "123456")
	require.NoError(t, err)

	assert.Equal(t, "acc-1", record.AccountID)
	assert.Equal(t, saved, record)
	assert.False(t, record.CreatedAt.IsZero())

	// The stored hash must verify the original password and nothing else.
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte("123456")))
	require.Error(t, bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte("1234567")))

	salt, err := base64.StdEncoding.DecodeString(record.CreationSalt)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltLength)
}

func TestCreateVaultWeakPassword(t *testing.T) {
	registry, _ := newTestRegistry(t)

	// Exactly one character short of the minimum. No repository call may
	// happen: the gate runs before hashing and persistence.
	_, err := registry.CreateVault(context.Background(), "acc-1", "12345")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestCreateVaultAlreadyExists(t *testing.T) {
	registry, records := newTestRegistry(t)

	records.EXPECT().
		CreateVaultRecord(gomock.Any(), gomock.Any()).
		Return(store.ErrVaultRecordExists)

	_, err := registry.CreateVault(context.Background(), "acc-1", "123456")
	assert.ErrorIs(t, err, ErrVaultAlreadyExists)
}

func TestHasVault(t *testing.T) {
	registry, records := newTestRegistry(t)
	ctx := context.Background()

	records.EXPECT().
		GetVaultRecord(gomock.Any(), "acc-1").
		Return(models.MasterVaultRecord{AccountID: "acc-1"}, nil)

	has, err := registry.HasVault(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, has)

	records.EXPECT().
		GetVaultRecord(gomock.Any(), "acc-2").
		Return(models.MasterVaultRecord{}, store.ErrNotFound)

	has, err = registry.HasVault(ctx, "acc-2")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestHasVaultStorageError(t *testing.T) {
	registry, records := newTestRegistry(t)

	records.EXPECT().
		GetVaultRecord(gomock.Any(), "acc-1").
		Return(models.MasterVaultRecord{}, errors.New("connection refused"))

	_, err := registry.HasVault(context.Background(), "acc-1")
	assert.ErrorIs(t, err, ErrStorage)
}

func TestGetVaultRecordNoVault(t *testing.T) {
	registry, records := newTestRegistry(t)

	records.EXPECT().
		GetVaultRecord(gomock.Any(), "acc-1").
		Return(models.MasterVaultRecord{}, store.ErrNotFound)

	_, err := registry.GetVaultRecord(context.Background(), "acc-1")
	assert.ErrorIs(t, err, ErrNoVault)
}

func TestVerify(t *testing.T) {
	registry, _ := newTestRegistry(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, registry.Verify("correct horse", string(hash)))
	assert.False(t, registry.Verify("wrong horse", string(hash)))
	assert.False(t, registry.Verify("correct horse", "not a bcrypt hash"))
}
