package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/lib/pq"
)

func setupPQ(t *testing.T) *sql.DB {
	t.Helper()

	var db *sql.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

func setupPGX(t *testing.T) *pgxpool.Pool {
	t.Helper()

	var db *pgxpool.Pool
	setupDatabase(t, func(dsn string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		var err error
		db, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		return db.Ping(ctx)
	})
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	return db
}

func setupDatabase(t *testing.T, connect func(string) error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=test",
			"POSTGRES_USER=test",
			"POSTGRES_DB=test",
			"listen_addresses='*'",
			"fsync='off'",
			"full_page_writes='off'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(120) //nolint:errcheck

	dsn := fmt.Sprintf("postgres://test:test@%s/test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		return connect(dsn)
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatalf("Could not purge resource: %s", err)
		}
	})
}

// createOrdersTable creates a customer table and an order table with 10 orders.
func createOrdersTable(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(`
		CREATE TABLE customer (
			"id" serial PRIMARY KEY,
			"email" text NOT NULL
		);
		CREATE TABLE "order" (
			"id" serial PRIMARY KEY,
			"customer_id" int NOT NULL REFERENCES customer ("id"),
			"order_date" timestamptz NOT NULL,
			"total_amount" numeric NOT NULL,
			"status" varchar(20) NOT NULL,
			"name" text,
			"shipping_address" text,
			"is_gift" bool NOT NULL DEFAULT false,
			"created_at" timestamptz NOT NULL DEFAULT now(),
			"updated_at" timestamptz
		);
	`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`
		INSERT INTO customer ("id", "email") VALUES
			(1, 'john@example.org'),
			(2, 'jane@example.org');
		INSERT INTO "order"
			("id", "customer_id", "order_date",  "total_amount", "status",   "name",            "shipping_address", "is_gift") VALUES
			(1,    1,             '2024-01-01',  10.50,          'paid',     'john smith',      'Main St 1',        false),
			(2,    1,             '2024-01-02',  99.00,          'paid',     'john doe',        'Main St 1',        true),
			(3,    1,             '2024-01-03',  5.25,           'shipped',  'test john',       'Main St 1',        false),
			(4,    2,             '2024-01-04',  120.00,         'archived', 'jane',            'Side St 9',        false),
			(5,    2,             '2024-01-05',  42.00,          'paid',     'johnny',          'Side St 9',        true),
			(6,    2,             '2024-01-06',  7.00,           'pending',  'jane test',       NULL,               false),
			(7,    1,             '2024-01-07',  300.00,         'shipped',  'john o''brien',   'Main St 1',        false),
			(8,    2,             '2024-01-08',  15.00,          'archived', NULL,              'Side St 9',        false),
			(9,    1,             '2024-01-09',  64.00,          'paid',     'big john',        'Main St 1',        false),
			(10,   2,             '2024-01-10',  1.00,           'pending',  'someone',         'Side St 9',        true);
	`); err != nil {
		t.Fatal(err)
	}
}
