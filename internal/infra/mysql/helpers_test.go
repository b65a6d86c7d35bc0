package mysql

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"database/sql"
	"encoding/pem"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	"github.com/kaitobq/mysql-bootstrap/internal/config"
)

func testConnectionConfig() config.ConnectionConfig {
	cfg := config.Default().DB
	cfg.Host = "db.local"
	cfg.User = "app"
	cfg.Password = "x"
	cfg.Database = "appdb"
	return cfg
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	return db, mock
}

// recordingOpener hands out queued handles and remembers every driver config it saw.
type recordingOpener struct {
	mu      sync.Mutex
	configs []*driver.Config
	dbs     []*sql.DB
}

func (o *recordingOpener) enqueue(dbs ...*sql.DB) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dbs = append(o.dbs, dbs...)
}

func (o *recordingOpener) open(cfg *driver.Config) (*sql.DB, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.configs = append(o.configs, cfg)
	if len(o.dbs) == 0 {
		return nil, errors.New("no database queued")
	}
	db := o.dbs[0]
	o.dbs = o.dbs[1:]
	return db, nil
}

func (o *recordingOpener) calls() []*driver.Config {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*driver.Config(nil), o.configs...)
}

// writeTestCA writes a self-signed CA certificate and returns its path.
func writeTestCA(t *testing.T) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test-ca"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ca.pem")
	encoded := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, os.WriteFile(path, encoded, 0o600))
	return path
}
