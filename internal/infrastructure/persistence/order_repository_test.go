package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tastehunt/backend/internal/domain/order"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockOrderRepository creates a GormOrderRepository with a mocked SQL connection
func newMockOrderRepository(t *testing.T) (*GormOrderRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormOrderRepository(gormDB), mock, mockDB
}

func orderColumns() []string {
	return []string{
		"id", "items", "total_price", "customer_name", "status",
		"payment_status", "assigned_by_id", "assigned_to_cook_id",
		"created_at", "updated_at",
	}
}

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("finds existing order", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(orderColumns()).
			AddRow(orderID, []byte(`[{"name":"Soup","quantity":2,"price":"5"}]`),
				decimal.NewFromInt(10), "Alice", "pending", "unpaid",
				uuid.New(), uuid.New(), now, now)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnRows(rows)

		o, err := repo.FindByID(context.Background(), orderID)

		assert.NoError(t, err)
		require.NotNil(t, o)
		assert.Equal(t, orderID, o.ID)
		assert.Equal(t, "Alice", o.CustomerName)

		items, err := o.ParseItems()
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Soup", items[0].Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for unknown order", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		orderID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		o, err := repo.FindByID(context.Background(), orderID)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, o)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FetchRange(t *testing.T) {
	t.Run("fetches orders in range", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows(orderColumns()).
			AddRow(uuid.New(), []byte(`[]`), decimal.NewFromInt(10), "Guest",
				"completed", "paid", uuid.New(), uuid.New(),
				start.AddDate(0, 0, 3), start.AddDate(0, 0, 3))

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE created_at >= \$1 AND created_at <= \$2 ORDER BY created_at ASC`).
			WithArgs(start, end).
			WillReturnRows(rows)

		orders, err := repo.FetchRange(context.Background(), start, end, nil)

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("restricts to chef when given", func(t *testing.T) {
		repo, mock, mockDB := newMockOrderRepository(t)
		defer mockDB.Close()

		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		chefID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE created_at >= \$1 AND created_at <= \$2 AND assigned_to_cook_id = \$3 ORDER BY created_at ASC`).
			WithArgs(start, end, chefID).
			WillReturnRows(sqlmock.NewRows(orderColumns()))

		orders, err := repo.FetchRange(context.Background(), start, end, &chefID)

		assert.NoError(t, err)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_Save(t *testing.T) {
	repo, mock, mockDB := newMockOrderRepository(t)
	defer mockDB.Close()

	o, err := order.NewOrder(
		[]order.Item{{Name: "Soup", Quantity: 2, Price: decimal.NewFromInt(5)}},
		nil, "Alice", uuid.New(), uuid.New(),
	)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Save(context.Background(), o)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
