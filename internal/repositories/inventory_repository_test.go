package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInventoryRepoTest(t *testing.T) (repository.InventoryRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewInventoryRepo(db), mock
}

func TestGetInventoryByID(t *testing.T) {
	ctx := t.Context()
	query := regexp.QuoteMeta(`FROM inventory i JOIN products p ON p.id = i.product_id WHERE i.id = $1`)
	columns := []string{"id", "product_id", "quantity", "last_restocked_date", "name", "sku"}

	t.Run("Success - With restock date", func(t *testing.T) {
		repo, mock := setupInventoryRepoTest(t)
		mock.ExpectQuery(query).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(3), int64(11), 40, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), "Phone", "PH-1"))

		inv, err := repo.GetInventoryByID(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, 40, inv.Quantity)
		require.NotNil(t, inv.LastRestockedDate)
		assert.Equal(t, "2024-04-01", inv.LastRestockedDate.String())
		assert.Equal(t, "PH-1", inv.SKU)
	})

	t.Run("Success - Never restocked", func(t *testing.T) {
		repo, mock := setupInventoryRepoTest(t)
		mock.ExpectQuery(query).WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(4), int64(12), 0, nil, "Pen", "PN-1"))

		inv, err := repo.GetInventoryByID(ctx, 4)

		require.NoError(t, err)
		assert.Nil(t, inv.LastRestockedDate)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		repo, mock := setupInventoryRepoTest(t)
		mock.ExpectQuery(query).WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

		inv, err := repo.GetInventoryByID(ctx, 5)

		assert.Nil(t, inv)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestUpdateInventory(t *testing.T) {
	ctx := t.Context()
	query := regexp.QuoteMeta(`UPDATE inventory SET product_id = $1, quantity = $2, last_restocked_date = $3 WHERE id = $4`)
	restocked := models.NewDate(2024, time.May, 5)

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupInventoryRepoTest(t)
		mock.ExpectExec(query).
			WithArgs(int64(11), 7, restocked.Time, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateInventory(ctx, &models.Inventory{ID: 3, ProductID: 11, Quantity: 7, LastRestockedDate: &restocked})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown id", func(t *testing.T) {
		repo, mock := setupInventoryRepoTest(t)
		mock.ExpectExec(query).
			WithArgs(int64(11), 7, nil, int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateInventory(ctx, &models.Inventory{ID: 99, ProductID: 11, Quantity: 7})

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		repo, mock := setupInventoryRepoTest(t)
		mock.ExpectExec(query).WillReturnError(errors.New("deadlock detected"))

		err := repo.UpdateInventory(ctx, &models.Inventory{ID: 3, ProductID: 11, Quantity: 7})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to update inventory")
	})
}
