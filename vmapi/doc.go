// Package vmapi provides a typed client for the Triton VMAPI service,
// covering VM lifecycle, snapshots, batch actions, and provisioning jobs.
package vmapi
