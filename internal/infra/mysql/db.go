package mysql

import (
	"crypto/tls"
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"

	"github.com/kaitobq/mysql-bootstrap/internal/config"
)

// Opener opens a database handle for a driver configuration.
type Opener func(cfg *driver.Config) (*sql.DB, error)

// OpenDB opens a handle through the MySQL connector. No connection is made until first use.
func OpenDB(cfg *driver.Config) (*sql.DB, error) {
	connector, err := driver.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create mysql connector: %w", err)
	}
	return sql.OpenDB(connector), nil
}

// DriverConfig returns the driver settings for cfg. An empty database connects without
// selecting a schema.
func DriverConfig(cfg config.ConnectionConfig, database, tlsName string, tlsConfig *tls.Config) *driver.Config {
	c := driver.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = cfg.Addr()
	c.DBName = database
	c.Timeout = cfg.ConnectTimeout
	c.Loc = cfg.Location
	c.ParseTime = true
	c.TLSConfig = tlsName
	c.TLS = tlsConfig
	return c
}
