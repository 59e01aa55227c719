// Package ufds provides an LDAP client for the Triton UFDS directory, which
// stores accounts and groups. It covers authentication, user lookup, and
// group membership management.
package ufds
