package triton

import (
	"github.com/google/uuid"

	"github.com/mhalicki/tritonkit/errors"
)

// Typed UUID wrappers. The APIs identify every object by UUID; distinct Go
// types keep an instance id from being passed where a network id belongs.
// Embedding uuid.UUID provides String and the text/JSON marshalling.

// InstanceUUID identifies a VM instance.
type InstanceUUID struct{ uuid.UUID }

// ServerUUID identifies a compute node.
type ServerUUID struct{ uuid.UUID }

// OwnerUUID identifies an account that owns objects.
type OwnerUUID struct{ uuid.UUID }

// ImageUUID identifies an image.
type ImageUUID struct{ uuid.UUID }

// NetworkUUID identifies a network.
type NetworkUUID struct{ uuid.UUID }

// PackageUUID identifies a provisioning package.
type PackageUUID struct{ uuid.UUID }

// AppUUID identifies a SAPI application.
type AppUUID struct{ uuid.UUID }

// ServiceUUID identifies a SAPI service.
type ServiceUUID struct{ uuid.UUID }

// JobUUID identifies a workflow job.
type JobUUID struct{ uuid.UUID }

// RuleUUID identifies a firewall rule.
type RuleUUID struct{ uuid.UUID }

func parseUUID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.InvalidUUID(value, err)
	}
	return id, nil
}

// ParseInstanceUUID parses an instance UUID string.
func ParseInstanceUUID(value string) (InstanceUUID, error) {
	id, err := parseUUID(value)
	return InstanceUUID{id}, err
}

// ParseServerUUID parses a server UUID string.
func ParseServerUUID(value string) (ServerUUID, error) {
	id, err := parseUUID(value)
	return ServerUUID{id}, err
}

// ParseOwnerUUID parses an owner UUID string.
func ParseOwnerUUID(value string) (OwnerUUID, error) {
	id, err := parseUUID(value)
	return OwnerUUID{id}, err
}

// ParseImageUUID parses an image UUID string.
func ParseImageUUID(value string) (ImageUUID, error) {
	id, err := parseUUID(value)
	return ImageUUID{id}, err
}

// ParseNetworkUUID parses a network UUID string.
func ParseNetworkUUID(value string) (NetworkUUID, error) {
	id, err := parseUUID(value)
	return NetworkUUID{id}, err
}

// ParsePackageUUID parses a package UUID string.
func ParsePackageUUID(value string) (PackageUUID, error) {
	id, err := parseUUID(value)
	return PackageUUID{id}, err
}

// ParseAppUUID parses a SAPI application UUID string.
func ParseAppUUID(value string) (AppUUID, error) {
	id, err := parseUUID(value)
	return AppUUID{id}, err
}

// ParseServiceUUID parses a SAPI service UUID string.
func ParseServiceUUID(value string) (ServiceUUID, error) {
	id, err := parseUUID(value)
	return ServiceUUID{id}, err
}

// ParseJobUUID parses a workflow job UUID string.
func ParseJobUUID(value string) (JobUUID, error) {
	id, err := parseUUID(value)
	return JobUUID{id}, err
}

// ParseRuleUUID parses a firewall rule UUID string.
func ParseRuleUUID(value string) (RuleUUID, error) {
	id, err := parseUUID(value)
	return RuleUUID{id}, err
}

// NewInstanceUUID returns a random instance UUID, useful in tests.
func NewInstanceUUID() InstanceUUID { return InstanceUUID{uuid.New()} }

// NewOwnerUUID returns a random owner UUID, useful in tests.
func NewOwnerUUID() OwnerUUID { return OwnerUUID{uuid.New()} }

// NewServerUUID returns a random server UUID, useful in tests.
func NewServerUUID() ServerUUID { return ServerUUID{uuid.New()} }

// NewNetworkUUID returns a random network UUID, useful in tests.
func NewNetworkUUID() NetworkUUID { return NetworkUUID{uuid.New()} }

// IsZero reports whether the UUID is the nil UUID.
func (u InstanceUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u ServerUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u OwnerUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u ImageUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u NetworkUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u PackageUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u AppUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u ServiceUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u JobUUID) IsZero() bool { return u.UUID == uuid.Nil }

// IsZero reports whether the UUID is the nil UUID.
func (u RuleUUID) IsZero() bool { return u.UUID == uuid.Nil }
