package ufds

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"net/url"
	"os"

	"github.com/go-ldap/ldap/v3"

	"github.com/mhalicki/tritonkit/errors"
)

// session is a single bound connection to the directory. Implementations
// are not safe for concurrent use; the client serializes access.
type session interface {
	Bind(dn, password string) error
	Search(baseDN, filter string, attributes []string) ([]Entry, error)
	Modify(dn string, mods []Modification) error
	Close() error
}

// connector dials the directory and returns an unbound session. Tests
// substitute a fake; production uses the go-ldap backed implementation.
type connector interface {
	Connect(ctx context.Context) (session, error)
}

type ldapConnector struct {
	cfg Config
}

func (c *ldapConnector) Connect(ctx context.Context) (session, error) {
	opts := []ldap.DialOpt{
		ldap.DialWithDialer(&net.Dialer{Timeout: c.cfg.ConnectTimeout}),
	}

	u, err := url.Parse(c.cfg.URL)
	if err != nil {
		return nil, errors.InvalidEndpoint("ufds: invalid URL " + c.cfg.URL).WithCause(err)
	}
	if u.Scheme == "ldaps" {
		tlsCfg, err := c.tlsConfig(u.Hostname())
		if err != nil {
			return nil, err
		}
		opts = append(opts, ldap.DialWithTLSConfig(tlsCfg))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conn, err := ldap.DialURL(c.cfg.URL, opts...)
	if err != nil {
		return nil, errors.ServiceUnavailable("ufds", "connecting to directory "+c.cfg.URL).WithCause(err)
	}
	conn.SetTimeout(c.cfg.OperationTimeout)
	return &ldapSession{conn: conn}, nil
}

func (c *ldapConnector) tlsConfig(serverName string) (*tls.Config, error) {
	cfg := &tls.Config{
		ServerName:         serverName,
		InsecureSkipVerify: c.cfg.TLSSkipVerify,
		MinVersion:         tls.VersionTLS12,
	}
	if c.cfg.TLSCACert != "" {
		pem, err := os.ReadFile(c.cfg.TLSCACert)
		if err != nil {
			return nil, errors.Config("ufds: read CA file").WithCause(err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.Config("ufds: no certificates found in " + c.cfg.TLSCACert)
		}
		cfg.RootCAs = pool
	}
	return cfg, nil
}

type ldapSession struct {
	conn *ldap.Conn
}

func (s *ldapSession) Bind(dn, password string) error {
	if err := s.conn.Bind(dn, password); err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials) {
			return errors.InvalidRequest("invalid credentials").WithCause(err)
		}
		return errors.ServiceUnavailable("ufds", "bind failed").WithCause(err)
	}
	return nil
}

func (s *ldapSession) Search(baseDN, filter string, attributes []string) ([]Entry, error) {
	req := ldap.NewSearchRequest(
		baseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		filter, attributes, nil,
	)
	res, err := s.conn.Search(req)
	if err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject) {
			return nil, nil
		}
		return nil, errors.ServiceUnavailable("ufds", "search under "+baseDN+" failed").WithCause(err)
	}

	entries := make([]Entry, 0, len(res.Entries))
	for _, e := range res.Entries {
		attrs := make(map[string][]string, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs[a.Name] = a.Values
		}
		entries = append(entries, Entry{DN: e.DN, Attributes: attrs})
	}
	return entries, nil
}

func (s *ldapSession) Modify(dn string, mods []Modification) error {
	req := ldap.NewModifyRequest(dn, nil)
	for _, m := range mods {
		switch m.Op {
		case ModAdd:
			req.Add(m.Attribute, m.Values)
		case ModDelete:
			req.Delete(m.Attribute, m.Values)
		case ModReplace:
			req.Replace(m.Attribute, m.Values)
		}
	}
	if err := s.conn.Modify(req); err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject) {
			return errors.NotFound("entry not found: " + dn).WithCause(err)
		}
		return errors.ServiceUnavailable("ufds", "modify of "+dn+" failed").WithCause(err)
	}
	return nil
}

func (s *ldapSession) Close() error {
	return s.conn.Close()
}
