// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/enpass-cli/internal/logger"
	"github.com/MKhiriev/enpass-cli/models"
)

const selectCardsSQL = `SELECT id, uuid, title, subtitle, deleted, trashed, type, category, data FROM Cards`

var identityColumns = []string{"id", "version", "signature", "sync_uuid", "hash", "info"}

var cardColumns = []string{"id", "uuid", "title", "subtitle", "deleted", "trashed", "type", "category", "data"}

func newTestReader(t *testing.T) (VaultReader, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVaultReaderFromDB(db, logger.Nop()), mock
}

func identityInfo() []byte {
	info := make([]byte, 48)
	for i := 32; i < 48; i++ {
		info[i] = byte(i - 31)
	}
	return info
}

func TestIdentity(t *testing.T) {
	info := identityInfo()

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
		want    models.Identity
	}{
		{
			name: "success: exactly one row",
			rows: sqlmock.NewRows(identityColumns).
				AddRow(int64(1), int64(5), "walletx", "2e9c1f64-3b5a-4c17-9f20-8f1a2b3c4d5e", "hashmaterial", info),
			want: models.Identity{
				ID:              1,
				Version:         5,
				Signature:       "walletx",
				SyncUUID:        "2e9c1f64-3b5a-4c17-9f20-8f1a2b3c4d5e",
				HMACKeyMaterial: "hashmaterial",
				Info:            info,
			},
		},
		{
			name:    "error: empty table",
			rows:    sqlmock.NewRows(identityColumns),
			wantErr: ErrIdentityNotFound,
		},
		{
			name: "error: two rows",
			rows: sqlmock.NewRows(identityColumns).
				AddRow(int64(1), int64(5), "walletx", "uuid-1", "hash-1", info).
				AddRow(int64(2), int64(5), "walletx", "uuid-2", "hash-2", info),
			wantErr: ErrMultipleIdentities,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, mock := newTestReader(t)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT")).WillReturnRows(tt.rows)

			got, err := reader.Identity(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIdentity_QueryError(t *testing.T) {
	reader, mock := newTestReader(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).WillReturnError(errors.New("file is not a database"))

	_, err := reader.Identity(context.Background())
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestForEachCard_OrderingAndDefaultFilter(t *testing.T) {
	reader, mock := newTestReader(t)

	rows := sqlmock.NewRows(cardColumns).
		AddRow(int64(1), "uuid-a", "Amazon", "", false, false, "login", "website", []byte{0x01}).
		AddRow(int64(2), "uuid-b", "Bank", "main", false, false, "login", "finance", []byte{0x02})

	// Default filter excludes trashed and deleted rows and keeps the fixed
	// ordering clause.
	mock.ExpectQuery(regexp.QuoteMeta(
		selectCardsSQL+` WHERE trashed = ? AND deleted = ? ORDER BY title, trashed, deleted`,
	)).
		WithArgs(0, 0).
		WillReturnRows(rows)

	var titles []string
	err := reader.ForEachCard(context.Background(), models.CardFilter{}, func(card models.EncryptedCard) error {
		titles = append(titles, card.Title)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Amazon", "Bank"}, titles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForEachCard_CategoryFilter(t *testing.T) {
	reader, mock := newTestReader(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		selectCardsSQL+` WHERE category = ? AND trashed = ? AND deleted = ? ORDER BY title, trashed, deleted`,
	)).
		WithArgs("finance", 0, 0).
		WillReturnRows(sqlmock.NewRows(cardColumns))

	err := reader.ForEachCard(context.Background(), models.CardFilter{Category: "finance"}, func(models.EncryptedCard) error {
		t.Fatal("callback must not run for an empty result set")
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForEachCard_IncludeTrashedAndDeleted(t *testing.T) {
	reader, mock := newTestReader(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		selectCardsSQL + ` ORDER BY title, trashed, deleted`,
	)).
		WillReturnRows(sqlmock.NewRows(cardColumns).
			AddRow(int64(3), "uuid-c", "Old note", "", true, true, "note", "misc", []byte{0x03}))

	var got []models.EncryptedCard
	err := reader.ForEachCard(
		context.Background(),
		models.CardFilter{IncludeTrashed: true, IncludeDeleted: true},
		func(card models.EncryptedCard) error {
			got = append(got, card)
			return nil
		},
	)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Trashed)
	assert.True(t, got[0].Deleted)
}

func TestForEachCard_CallbackErrorAbortsIteration(t *testing.T) {
	reader, mock := newTestReader(t)

	rows := sqlmock.NewRows(cardColumns).
		AddRow(int64(1), "uuid-a", "A", "", false, false, "login", "website", []byte{0x01}).
		AddRow(int64(2), "uuid-b", "B", "", false, false, "login", "website", []byte{0x02})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).WillReturnRows(rows)

	wantErr := errors.New("sink is full")
	calls := 0
	err := reader.ForEachCard(context.Background(), models.CardFilter{}, func(models.EncryptedCard) error {
		calls++
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}

func TestForEachCard_ScanError(t *testing.T) {
	reader, mock := newTestReader(t)

	rows := sqlmock.NewRows(cardColumns).
		AddRow("not-an-int", "uuid-a", "A", "", false, false, "login", "website", []byte{0x01})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).WillReturnRows(rows)

	err := reader.ForEachCard(context.Background(), models.CardFilter{}, func(models.EncryptedCard) error {
		return nil
	})

	require.ErrorIs(t, err, ErrScanningRow)
}

func TestNewVaultReaderFromDB_Close(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	reader := NewVaultReaderFromDB(db, logger.Nop())
	require.NoError(t, reader.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
