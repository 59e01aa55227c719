// Package imgapi provides a typed client for the Triton IMGAPI service,
// covering image manifests, lifecycle actions, and file transfer.
package imgapi
