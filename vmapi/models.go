package vmapi

import (
	"time"

	"github.com/mhalicki/tritonkit/triton"
)

// VM is a virtual machine as returned by VMAPI. Numeric sizing fields are
// typed loosely because VMAPI emits them as either integers or floats
// depending on the brand.
type VM struct {
	UUID  triton.InstanceUUID `json:"uuid"`
	Alias string              `json:"alias,omitempty"`
	Brand string              `json:"brand,omitempty"`
	State string              `json:"state,omitempty"`

	RAM               any `json:"ram,omitempty"`
	MaxPhysicalMemory any `json:"max_physical_memory,omitempty"`
	Quota             any `json:"quota,omitempty"`
	CPUShares         any `json:"cpu_shares,omitempty"`
	CPUCap            any `json:"cpu_cap,omitempty"`
	VCPUs             any `json:"vcpus,omitempty"`
	Disk              any `json:"disk,omitempty"`
	MaxSwap           any `json:"max_swap,omitempty"`
	MaxLockedMemory   any `json:"max_locked_memory,omitempty"`
	MaxLWPs           any `json:"max_lwps,omitempty"`

	ZoneState     string `json:"zone_state,omitempty"`
	ZonePath      string `json:"zonepath,omitempty"`
	ZPool         string `json:"zpool,omitempty"`
	ZFSFilesystem string `json:"zfs_filesystem,omitempty"`

	ServerUUID  *triton.ServerUUID  `json:"server_uuid,omitempty"`
	ImageUUID   *triton.ImageUUID   `json:"image_uuid,omitempty"`
	PackageName string              `json:"package_name,omitempty"`
	PackageUUID *triton.PackageUUID `json:"package_uuid,omitempty"`
	OwnerUUID   *triton.OwnerUUID   `json:"owner_uuid,omitempty"`

	CustomerMetadata map[string]any    `json:"customer_metadata,omitempty"`
	InternalMetadata map[string]any    `json:"internal_metadata,omitempty"`
	Tags             map[string]string `json:"tags,omitempty"`

	FirewallEnabled bool `json:"firewall_enabled,omitempty"`
	Autoboot        bool `json:"autoboot,omitempty"`
	Docker          bool `json:"docker,omitempty"`

	NICs      []NIC `json:"nics,omitempty"`
	Disks     []any `json:"disks,omitempty"`
	Snapshots []any `json:"snapshots,omitempty"`

	CreateTimestamp *time.Time `json:"create_timestamp,omitempty"`
	LastModified    *time.Time `json:"last_modified,omitempty"`
	BootTimestamp   *time.Time `json:"boot_timestamp,omitempty"`
	Destroyed       *time.Time `json:"destroyed,omitempty"`

	ComputeNode        string `json:"compute_node,omitempty"`
	PlatformBuildstamp string `json:"platform_buildstamp,omitempty"`
	LimitPriv          string `json:"limit_priv,omitempty"`

	DNSDomain         string   `json:"dns_domain,omitempty"`
	Resolvers         []string `json:"resolvers,omitempty"`
	FSAllowed         string   `json:"fs_allowed,omitempty"`
	MaintainResolvers bool     `json:"maintain_resolvers,omitempty"`
	Filesystems       []any    `json:"filesystems,omitempty"`
	Datasets          []string `json:"datasets,omitempty"`

	PrimaryIP string `json:"primary_ip,omitempty"`

	DeletionProtection      bool `json:"deletion_protection,omitempty"`
	IndestructibleZoneroot  bool `json:"indestructible_zoneroot,omitempty"`
}

// NIC is a network interface attached to a VM.
type NIC struct {
	MAC         string              `json:"mac"`
	Primary     bool                `json:"primary,omitempty"`
	NICTag      string              `json:"nic_tag,omitempty"`
	IP          string              `json:"ip,omitempty"`
	IPs         []string            `json:"ips,omitempty"`
	Netmask     string              `json:"netmask,omitempty"`
	Gateway     string              `json:"gateway,omitempty"`
	Gateways    []string            `json:"gateways,omitempty"`
	NetworkUUID *triton.NetworkUUID `json:"network_uuid,omitempty"`
	State       string              `json:"state,omitempty"`
	Model       string              `json:"model,omitempty"`
	VLANID      any                 `json:"vlan_id,omitempty"`
	MTU         any                 `json:"mtu,omitempty"`
	Interface   string              `json:"interface,omitempty"`
	AllowedIPs  []string            `json:"allowed_ips,omitempty"`
	BlockedIPs  []string            `json:"blocked_ips,omitempty"`
}

// NetworkConfig selects a network for a new VM.
type NetworkConfig struct {
	UUID    triton.NetworkUUID `json:"uuid"`
	Primary bool               `json:"primary,omitempty"`
	IP      string             `json:"ip,omitempty"`
}

// CreateVMRequest is the payload for provisioning a VM.
type CreateVMRequest struct {
	Alias            string              `json:"alias,omitempty"`
	Brand            string              `json:"brand"`
	OwnerUUID        triton.OwnerUUID    `json:"owner_uuid"`
	RAM              uint32              `json:"ram"`
	CPUShares        uint32              `json:"cpu_shares,omitempty"`
	CPUCap           uint32              `json:"cpu_cap,omitempty"`
	Quota            uint32              `json:"quota,omitempty"`
	VCPUs            uint32              `json:"vcpus,omitempty"`
	ImageUUID        triton.ImageUUID    `json:"image_uuid"`
	ServerUUID       *triton.ServerUUID  `json:"server_uuid,omitempty"`
	PackageUUID      *triton.PackageUUID `json:"package_uuid,omitempty"`
	Networks         []NetworkConfig     `json:"networks"`
	Tags             map[string]string   `json:"tags,omitempty"`
	CustomerMetadata map[string]string   `json:"customer_metadata,omitempty"`
	InternalMetadata map[string]string   `json:"internal_metadata,omitempty"`
	FirewallEnabled  *bool               `json:"firewall_enabled,omitempty"`
}

// UpdateVMRequest is the payload for mutating an existing VM. Only the set
// fields are applied.
type UpdateVMRequest struct {
	Alias            string            `json:"alias,omitempty"`
	RAM              uint32            `json:"ram,omitempty"`
	CPUShares        uint32            `json:"cpu_shares,omitempty"`
	CPUCap           uint32            `json:"cpu_cap,omitempty"`
	Quota            uint32            `json:"quota,omitempty"`
	Tags             map[string]string `json:"tags,omitempty"`
	CustomerMetadata map[string]string `json:"customer_metadata,omitempty"`
	InternalMetadata map[string]string `json:"internal_metadata,omitempty"`
	FirewallEnabled  *bool             `json:"firewall_enabled,omitempty"`
}

// Snapshot is a point-in-time snapshot of a VM.
type Snapshot struct {
	Name      string     `json:"name"`
	State     string     `json:"state,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateSnapshotRequest names a new snapshot. An empty name lets VMAPI pick
// a timestamp-based one.
type CreateSnapshotRequest struct {
	Name string `json:"name,omitempty"`
}

// SnapshotActionResponse is returned from snapshot create and delete calls.
type SnapshotActionResponse struct {
	Name       string     `json:"name"`
	State      string     `json:"state"`
	Message    string     `json:"message,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	JobUUID    string     `json:"job_uuid,omitempty"`
	VMUUID     string     `json:"vm_uuid,omitempty"`
	ActionType string     `json:"action_type,omitempty"`
	Action     string     `json:"action,omitempty"`
}

// BatchAction enumerates the lifecycle actions a batch request can apply.
type BatchAction string

// Supported batch actions.
const (
	BatchStart  BatchAction = "start"
	BatchStop   BatchAction = "stop"
	BatchReboot BatchAction = "reboot"
	BatchDelete BatchAction = "delete"
)

// DefaultBatchConcurrency caps parallel VM actions when the request does not
// specify one.
const DefaultBatchConcurrency = 10

// BatchRequest applies one action to a set of VMs.
type BatchRequest struct {
	Action      BatchAction           `json:"action"`
	VMUUIDs     []triton.InstanceUUID `json:"vm_uuids"`
	Concurrency int                   `json:"concurrency,omitempty"`
}

// BatchResult reports the outcome for a single VM within a batch.
type BatchResult struct {
	VMUUID  triton.InstanceUUID `json:"vm_uuid"`
	Success bool                `json:"success"`
	Error   string              `json:"error,omitempty"`
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// BatchResponse is the full result of a batch request.
type BatchResponse struct {
	Summary BatchSummary  `json:"summary"`
	Results []BatchResult `json:"results"`
}

// Job is a workflow job spawned by a VMAPI mutation.
type Job struct {
	UUID         string        `json:"uuid"`
	Name         string        `json:"name"`
	Execution    string        `json:"execution"`
	Params       any           `json:"params"`
	ExecAfter    string        `json:"exec_after,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
	Timeout      uint32        `json:"timeout,omitempty"`
	ChainResults []ChainResult `json:"chain_results,omitempty"`
}

// Done reports whether the job reached a terminal execution state.
func (j *Job) Done() bool {
	switch j.Execution {
	case "succeeded", "failed", "canceled":
		return true
	}
	return false
}

// ChainResult is the outcome of one workflow step inside a job.
type ChainResult struct {
	Result     string `json:"result"`
	Error      string `json:"error"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
}
