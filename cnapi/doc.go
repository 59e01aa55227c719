// Package cnapi provides a typed client for the Triton CNAPI service, which
// tracks compute nodes and their capacity.
package cnapi
