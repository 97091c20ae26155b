package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega/trackvault/internal/logger"
	"github.com/jortega/trackvault/models"
)

// stubClassifier lets tests decide what counts as a unique violation
// without a live database.
type stubClassifier struct {
	unique bool
}

func (s stubClassifier) IsUniqueViolation(error) bool { return s.unique }

func newMockDB(t *testing.T, classifier ErrorClassifier) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, errorClassifier: classifier, logger: logger.Nop()}, mock
}

func TestCredentialRepository_SaveCredential(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{})
	repo := NewCredentialRepository(db, logger.Nop())

	record := models.CredentialRecord{
		ID:             "cred-1",
		ProjectID:      "proj-1",
		Type:           models.APIKey,
		Name:           "Prod Key",
		EncryptedValue: "ZW52ZWxvcGU=",
		IV:             "aXY=",
		Description:    "payment provider",
		CreatedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(
			record.ID,
			record.ProjectID,
			string(record.Type),
			record.Name,
			record.EncryptedValue,
			record.IV,
			sql.NullString{String: record.Description, Valid: true},
			record.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveCredential(context.Background(), record)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_SaveCredential_ExecError(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{})
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO credentials").
		WillReturnError(errors.New("disk full"))

	err := repo.SaveCredential(context.Background(), models.CredentialRecord{ID: "x"})
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCredentialRepository_ListCredentials(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{})
	repo := NewCredentialRepository(db, logger.Nop())

	newer := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "project_id", "credential_type", "credential_name",
		"encrypted_value", "iv", "description", "created_at",
	}).
		AddRow("cred-2", "proj-1", "secret_key", "Signing key", "ZW52Mg==", "aXYy", nil, newer).
		AddRow("cred-1", "proj-1", "api_key", "Prod Key", "ZW52MQ==", "aXYx", "payments", older)

	mock.ExpectQuery("SELECT (.+) FROM credentials").
		WithArgs("proj-1").
		WillReturnRows(rows)

	records, err := repo.ListCredentials(context.Background(), "proj-1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "cred-2", records[0].ID)
	assert.Equal(t, models.SecretKey, records[0].Type)
	assert.Empty(t, records[0].Description, "NULL description scans to empty string")

	assert.Equal(t, "cred-1", records[1].ID)
	assert.Equal(t, "payments", records[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_ListCredentials_QueryError(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{})
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM credentials").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListCredentials(context.Background(), "proj-1")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCredentialRepository_DeleteCredential_IdempotentOnZeroRows(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{})
	repo := NewCredentialRepository(db, logger.Nop())

	// Two deletes of the same absent id: both succeed, neither errors.
	mock.ExpectExec("DELETE FROM credentials").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM credentials").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteCredential(context.Background(), "ghost"))
	require.NoError(t, repo.DeleteCredential(context.Background(), "ghost"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRecordRepository_GetVaultRecord_NotFound(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{})
	repo := NewVaultRecordRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM vault_records").
		WithArgs("acc-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetVaultRecord(context.Background(), "acc-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVaultRecordRepository_GetVaultRecord_Found(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{})
	repo := NewVaultRecordRepository(db, logger.Nop())

	created := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"account_id", "password_hash", "creation_salt", "created_at"}).
		AddRow("acc-1", "$2a$12$hash", "c2FsdA==", created)

	mock.ExpectQuery("SELECT (.+) FROM vault_records").
		WithArgs("acc-1").
		WillReturnRows(rows)

	record, err := repo.GetVaultRecord(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", record.AccountID)
	assert.Equal(t, "$2a$12$hash", record.PasswordHash)
	assert.Equal(t, created, record.CreatedAt)
}

func TestVaultRecordRepository_CreateVaultRecord_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{unique: true})
	repo := NewVaultRecordRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO vault_records").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	err := repo.CreateVaultRecord(context.Background(), models.MasterVaultRecord{AccountID: "acc-1"})
	require.ErrorIs(t, err, ErrVaultRecordExists)
}

func TestVaultRecordRepository_CreateVaultRecord_Success(t *testing.T) {
	db, mock := newMockDB(t, stubClassifier{})
	repo := NewVaultRecordRepository(db, logger.Nop())

	record := models.MasterVaultRecord{
		AccountID:    "acc-1",
		PasswordHash: "$2a$12$hash",
		CreationSalt: "c2FsdA==",
		CreatedAt:    time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO vault_records").
		WithArgs(record.AccountID, record.PasswordHash, record.CreationSalt, record.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateVaultRecord(context.Background(), record))
	require.NoError(t, mock.ExpectationsWereMet())
}
