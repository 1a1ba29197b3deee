package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/product-listing/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(ctx, db))
	// running it twice must be harmless
	require.NoError(t, EnsureSchema(ctx, db))

	return db
}

func TestPostgres_Users(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db, nil)
	reader := NewUserReadRepository(db, nil)

	require.NoError(t, writer.Save(ctx, "A", "a@x.com", "hash-a"))

	user, err := reader.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Positive(t, user.ID)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "hash-a", user.Password)

	err = writer.Save(ctx, "B", "a@x.com", "hash-b")
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE email = $1", "a@x.com"))
	assert.Equal(t, 1, count)

	missing, err := reader.GetByEmail(ctx, "A@x.com")
	assert.NoError(t, err)
	assert.Nil(t, missing, "email lookups are case sensitive")
}

func TestPostgres_Products(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	writer := NewProductWriteRepository(db)
	reader := NewProductReadRepository(db)

	empty, err := reader.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	id, err := writer.Create(ctx, pen)
	require.NoError(t, err)

	got, err := reader.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.Product{
		ID:                 id,
		ProductName:        "Pen",
		ProductPrice:       5,
		ProductCategory:    "Office",
		ProductDescription: "Blue pen",
	}, *got)

	n, err := writer.Update(ctx, id, models.ProductInput{
		ProductName:        "Pencil",
		ProductPrice:       2,
		ProductCategory:    "Office",
		ProductDescription: "HB pencil",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = writer.Update(ctx, id+1000, pen)
	require.NoError(t, err)
	assert.Zero(t, n)

	missing, err := reader.GetByID(ctx, id+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := reader.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Pencil", all[0].ProductName)

	n, err = writer.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = writer.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, n)
}
