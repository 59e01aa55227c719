package ufds

import (
	"context"
	"strings"
	"sync"

	"github.com/go-ldap/ldap/v3"

	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/logger"
)

// Client talks to the UFDS directory. Operations open a connection, bind
// with the configured admin credentials, and close the connection when done.
type Client struct {
	cfg     Config
	log     *logger.Logger
	connect connector

	mu sync.Mutex
}

// New creates a UFDS client from the configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:     cfg,
		log:     logger.OrDefault(cfg.Logger, "ufds").WithComponent("ufds"),
		connect: &ldapConnector{cfg: cfg},
	}, nil
}

// adminSession opens a connection and binds with the admin credentials.
// The caller must Close the returned session.
func (c *Client) adminSession(ctx context.Context) (session, error) {
	sess, err := c.connect.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if err := sess.Bind(c.cfg.BindDN, c.cfg.BindPassword); err != nil {
		_ = sess.Close()
		return nil, err
	}
	return sess, nil
}

func (c *Client) userFilter(login string) string {
	return strings.ReplaceAll(c.cfg.UserFilterTemplate, "{login}", ldap.EscapeFilter(login))
}

// findUser returns the directory entry for the login, or a not-found error.
func (c *Client) findUser(sess session, login string) (Entry, error) {
	entries, err := sess.Search(c.cfg.UserBaseDN, c.userFilter(login), userAttributes)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, errors.NotFound("user not found: " + login)
	}
	if len(entries) > 1 {
		c.log.Warn("multiple directory entries for login, using first",
			logger.Fields("login", login, "count", len(entries)))
	}
	return entries[0], nil
}

// GetUser looks up an account by login.
func (c *Client) GetUser(ctx context.Context, login string) (User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.adminSession(ctx)
	if err != nil {
		return User{}, err
	}
	defer sess.Close()

	entry, err := c.findUser(sess, login)
	if err != nil {
		return User{}, err
	}
	return parseUserEntry(entry)
}

// Authenticate verifies a login and password against the directory. The
// account is looked up with the admin bind, then the connection rebinds as
// the user DN. Invalid credentials surface as an invalid request error.
func (c *Client) Authenticate(ctx context.Context, login, password string) (User, error) {
	if password == "" {
		return User{}, errors.InvalidRequest("password cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.adminSession(ctx)
	if err != nil {
		return User{}, err
	}
	defer sess.Close()

	entry, err := c.findUser(sess, login)
	if err != nil {
		return User{}, err
	}
	user, err := parseUserEntry(entry)
	if err != nil {
		return User{}, err
	}

	if err := sess.Bind(entry.DN, password); err != nil {
		c.log.Debug("authentication failed", logger.Fields("login", login))
		return User{}, err
	}

	c.log.Info("user authenticated", logger.Fields("login", login, "uuid", user.UUID))
	return user, nil
}

// ListGroups returns all groups under the group search base.
func (c *Client) ListGroups(ctx context.Context) ([]Group, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.adminSession(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	entries, err := sess.Search(c.cfg.GroupBaseDN, groupFilter, groupAttributes)
	if err != nil {
		return nil, err
	}

	groups := make([]Group, 0, len(entries))
	for _, entry := range entries {
		group, dropped, err := parseGroupEntry(entry)
		if err != nil {
			c.log.Warn("skipping group with malformed DN",
				logger.Fields("dn", entry.DN))
			continue
		}
		if dropped > 0 {
			c.log.Warn("dropped malformed member DNs from group",
				logger.Fields("group", group.Name, "dropped", dropped))
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// AddUserToGroup adds the user's DN to the group's member attribute.
func (c *Client) AddUserToGroup(ctx context.Context, login string, groupDN DN) error {
	return c.modifyMembership(ctx, login, groupDN, ModAdd)
}

// RemoveUserFromGroup removes the user's DN from the group's member
// attribute.
func (c *Client) RemoveUserFromGroup(ctx context.Context, login string, groupDN DN) error {
	return c.modifyMembership(ctx, login, groupDN, ModDelete)
}

func (c *Client) modifyMembership(ctx context.Context, login string, groupDN DN, op ModOp) error {
	if groupDN.IsZero() {
		return errors.InvalidRequest("group DN cannot be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sess, err := c.adminSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	entry, err := c.findUser(sess, login)
	if err != nil {
		return err
	}

	err = sess.Modify(groupDN.String(), []Modification{
		{Op: op, Attribute: "member", Values: []string{entry.DN}},
	})
	if err != nil {
		return err
	}

	c.log.Info("group membership updated",
		logger.Fields("login", login, "group", groupDN.String(), "added", op == ModAdd))
	return nil
}
