package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	content := `
http:
  address: ":8080"
database:
  host: localhost
  port: 5432
  user: resto
  password: secret
  name: restobooking
  ssl_mode: disable
kafka:
  brokers:
    - localhost:9092
  bookings_topic: bookings
booking:
  default_duration_minutes: 60
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 60, cfg.Booking.DefaultDurationMinutes)
	assert.Equal(t, "host=localhost port=5432 user=resto password=secret dbname=restobooking sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
