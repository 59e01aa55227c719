// Package triton holds the core identifiers shared by every service client:
// the Service enumeration with its default ports and timeouts, typed UUID
// wrappers for the object kinds the APIs exchange, and a small query builder
// for list filters.
package triton
