// Helpers for running integration tests against a real MySQL dialect with
// testcontainers. Unit tests use in-memory sqlite; this harness exists to
// exercise the JSON column mapping and the unique indexes on a production
// database engine.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/legalbridge/legalbridge/internal/config"
)

const (
	dbName     = "legalbridge_test"
	dbUser     = "legalbridge"
	dbPassword = "legalbridge_pw"
)

// MySQLContainer wraps a running MySQL test container with the connection
// settings the service config needs.
type MySQLContainer struct {
	Container testcontainers.Container
	Host      string
	Port      string
}

// StartMySQL starts a MySQL container and blocks until the server accepts
// authenticated connections.
func StartMySQL(t *testing.T) *MySQLContainer {
	t.Helper()

	if os.Getenv("SKIP_CONTAINER_TESTS") != "" {
		t.Skip("SKIP_CONTAINER_TESTS is set")
	}

	ctx := context.Background()

	image := os.Getenv("DB_IMAGE")
	if image == "" {
		image = "mysql:8.4"
	}

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_DATABASE":             dbName,
				"MYSQL_USER":                 dbUser,
				"MYSQL_PASSWORD":             dbPassword,
				"MYSQL_RANDOM_ROOT_PASSWORD": "yes",
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(120 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MySQL container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to resolve container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to resolve mapped port: %v", err)
	}

	mc := &MySQLContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Port(),
	}

	if err := mc.waitReady(60 * time.Second); err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("MySQL never became ready: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate MySQL container: %v", err)
		}
	})

	return mc
}

// waitReady polls with the raw driver until the server answers an
// authenticated ping. The listening port opens before init finishes.
func (mc *MySQLContainer) waitReady(timeout time.Duration) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPassword, mc.Host, mc.Port, dbName)

	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		db, err := sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return nil
			}
		}
		lastErr = err
		time.Sleep(time.Second)
	}
	return lastErr
}

// Config returns a service config pointed at the container.
func (mc *MySQLContainer) Config() *config.Config {
	return &config.Config{
		Port:              "3000",
		DBType:            "mysql",
		DBHost:            mc.Host,
		DBPort:            mc.Port,
		DBDatabase:        dbName,
		DBUser:            dbUser,
		DBPassword:        dbPassword,
		DBConnectionLimit: 5,
		AuthzURL:          "http://localhost:8080",
		AuthzClientID:     "test-client",
		SignedURLSecret:   "integration-test-secret",
		SignedURLTTL:      time.Minute,
		MaxUploadBytes:    10 * 1024 * 1024,
		LogLevel:          "info",
	}
}
