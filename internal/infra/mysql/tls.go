package mysql

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync/atomic"

	driver "github.com/go-sql-driver/mysql"

	"github.com/kaitobq/mysql-bootstrap/internal/config"
)

// TLSOptions is the TLS material shared by the bootstrap connection and the pool.
type TLSOptions struct {
	CA               []byte
	AcceptSelfSigned bool
}

var tlsSeq atomic.Uint64

// LoadTLSOptions reads the CA certificate when TLS is enabled. It returns nil, nil
// when the SSL flag is off or no CA path is configured.
func LoadTLSOptions(cfg config.ConnectionConfig, readFile func(string) ([]byte, error)) (*TLSOptions, error) {
	if !cfg.TLSEnabled() {
		return nil, nil
	}
	if readFile == nil {
		readFile = os.ReadFile
	}
	ca, err := readFile(cfg.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read CA certificate %s: %w", ErrIO, cfg.CACertPath, err)
	}
	return &TLSOptions{CA: ca, AcceptSelfSigned: true}, nil
}

// Config builds a *tls.Config trusting the CA bytes.
func (o *TLSOptions) Config() (*tls.Config, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(o.CA) {
		return nil, fmt.Errorf("%w: CA certificate contains no PEM certificates", ErrConfig)
	}
	return &tls.Config{
		RootCAs:            pool,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: o.AcceptSelfSigned, //nolint:gosec // self-signed server certificates are accepted
	}, nil
}

// register makes the TLS config known to the driver under a fresh name.
func (o *TLSOptions) register() (string, *tls.Config, error) {
	tlsConfig, err := o.Config()
	if err != nil {
		return "", nil, err
	}
	name := fmt.Sprintf("bootstrap-%d", tlsSeq.Add(1))
	if err := driver.RegisterTLSConfig(name, tlsConfig); err != nil {
		return "", nil, fmt.Errorf("%w: register tls config: %w", ErrConfig, err)
	}
	return name, tlsConfig, nil
}
