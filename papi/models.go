package papi

import (
	"net/url"

	"github.com/mhalicki/tritonkit/triton"
)

// ListPackagesParams filters the /packages listing.
type ListPackagesParams struct {
	Name      string
	Version   string
	Memory    uint64
	VCPUs     int
	Brand     string
	OS        string
	Group     string
	Active    *bool
	Default   *bool
	OwnerUUID triton.OwnerUUID
	Trait     string
	TraitVal  *bool
	Limit     int
	Offset    int
}

func (p *ListPackagesParams) values() url.Values {
	if p == nil {
		return nil
	}
	q := triton.NewQuery().
		Set("name", p.Name).
		Set("version", p.Version).
		SetInt("memory", int(p.Memory)).
		SetInt("vcpus", p.VCPUs).
		Set("brand", p.Brand).
		Set("os", p.OS).
		Set("group", p.Group)
	if p.Active != nil {
		q.SetBool("active", *p.Active)
	}
	if p.Default != nil {
		q.SetBool("default", *p.Default)
	}
	q.SetUUID("owner_uuid", p.OwnerUUID).
		Set("trait", p.Trait)
	if p.TraitVal != nil {
		q.SetBool("trait_val", *p.TraitVal)
	}
	return q.
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Values()
}

// Package is a provisioning package as returned by PAPI.
type Package struct {
	UUID    triton.PackageUUID `json:"uuid"`
	Name    string             `json:"name"`
	Version string             `json:"version,omitempty"`

	MaxPhysicalMemory uint64 `json:"max_physical_memory"`
	Quota             uint64 `json:"quota,omitempty"`
	CPUCap            uint32 `json:"cpu_cap,omitempty"`
	CPUShares         uint32 `json:"cpu_shares,omitempty"`
	MaxSwap           uint64 `json:"max_swap,omitempty"`
	MaxLWPs           uint32 `json:"max_lwps,omitempty"`
	ZFSIOPriority     uint32 `json:"zfs_io_priority,omitempty"`
	VCPUs             uint32 `json:"vcpus,omitempty"`
	Memory            uint64 `json:"memory,omitempty"`
	Disk              uint64 `json:"disk,omitempty"`

	OS          string `json:"os,omitempty"`
	Description string `json:"description,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Group       string `json:"group,omitempty"`

	Networks []PackageNetwork `json:"networks,omitempty"`

	Active  *bool `json:"active,omitempty"`
	Default *bool `json:"default,omitempty"`

	RAMRatio          float64 `json:"ram_ratio,omitempty"`
	CPUBurstRatio     float64 `json:"cpu_burst_ratio,omitempty"`
	CPUBurstDutyCycle float64 `json:"cpu_burst_duty_cycle,omitempty"`
	IOPriority        uint32  `json:"io_priority,omitempty"`
	IOThrottle        int32   `json:"io_throttle,omitempty"`

	BillingTags []string           `json:"billing_tags,omitempty"`
	Tags        map[string]string  `json:"tags,omitempty"`
	CommonName  string             `json:"common_name,omitempty"`
	OwnerUUIDs  []triton.OwnerUUID `json:"owner_uuids,omitempty"`
	Traits      map[string]bool    `json:"traits,omitempty"`
}

// PackageNetwork is a network definition embedded in a package.
type PackageNetwork struct {
	Name        string              `json:"name,omitempty"`
	Description string              `json:"description,omitempty"`
	Gateway     string              `json:"gateway,omitempty"`
	IP          string              `json:"ip,omitempty"`
	Netmask     string              `json:"netmask,omitempty"`
	NetworkUUID *triton.NetworkUUID `json:"network_uuid,omitempty"`
	Primary     bool                `json:"primary,omitempty"`
	Subnet      string              `json:"subnet,omitempty"`
	VLANID      int                 `json:"vlan_id,omitempty"`
	NICTag      string              `json:"nic_tag,omitempty"`
	Physical    bool                `json:"physical,omitempty"`
	CIDR        string              `json:"cidr,omitempty"`
}

// CreatePackageRequest is the payload for creating a package.
type CreatePackageRequest struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`

	MaxPhysicalMemory uint64 `json:"max_physical_memory"`
	Quota             uint64 `json:"quota,omitempty"`
	CPUCap            uint32 `json:"cpu_cap,omitempty"`
	CPUShares         uint32 `json:"cpu_shares,omitempty"`
	MaxSwap           uint64 `json:"max_swap,omitempty"`
	MaxLWPs           uint32 `json:"max_lwps,omitempty"`
	ZFSIOPriority     uint32 `json:"zfs_io_priority,omitempty"`
	VCPUs             uint32 `json:"vcpus,omitempty"`
	Memory            uint64 `json:"memory,omitempty"`
	Disk              uint64 `json:"disk,omitempty"`

	OS          string `json:"os,omitempty"`
	Description string `json:"description,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Group       string `json:"group,omitempty"`

	Networks []PackageNetwork `json:"networks,omitempty"`

	Active  *bool `json:"active,omitempty"`
	Default *bool `json:"default,omitempty"`

	RAMRatio          float64 `json:"ram_ratio,omitempty"`
	CPUBurstRatio     float64 `json:"cpu_burst_ratio,omitempty"`
	CPUBurstDutyCycle float64 `json:"cpu_burst_duty_cycle,omitempty"`
	IOPriority        uint32  `json:"io_priority,omitempty"`
	IOThrottle        int32   `json:"io_throttle,omitempty"`

	BillingTags []string           `json:"billing_tags,omitempty"`
	Tags        map[string]string  `json:"tags,omitempty"`
	CommonName  string             `json:"common_name,omitempty"`
	OwnerUUIDs  []triton.OwnerUUID `json:"owner_uuids,omitempty"`
	Traits      map[string]bool    `json:"traits,omitempty"`
}

// UpdatePackageRequest mutates an existing package. Only the set fields are
// applied.
type UpdatePackageRequest struct {
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`

	MaxPhysicalMemory uint64 `json:"max_physical_memory,omitempty"`
	Quota             uint64 `json:"quota,omitempty"`
	CPUCap            uint32 `json:"cpu_cap,omitempty"`
	CPUShares         uint32 `json:"cpu_shares,omitempty"`
	MaxSwap           uint64 `json:"max_swap,omitempty"`
	MaxLWPs           uint32 `json:"max_lwps,omitempty"`
	ZFSIOPriority     uint32 `json:"zfs_io_priority,omitempty"`
	VCPUs             uint32 `json:"vcpus,omitempty"`
	Memory            uint64 `json:"memory,omitempty"`
	Disk              uint64 `json:"disk,omitempty"`

	OS          string `json:"os,omitempty"`
	Description string `json:"description,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Group       string `json:"group,omitempty"`

	Networks []PackageNetwork `json:"networks,omitempty"`

	Active  *bool `json:"active,omitempty"`
	Default *bool `json:"default,omitempty"`

	BillingTags []string           `json:"billing_tags,omitempty"`
	Tags        map[string]string  `json:"tags,omitempty"`
	OwnerUUIDs  []triton.OwnerUUID `json:"owner_uuids,omitempty"`
	Traits      map[string]bool    `json:"traits,omitempty"`
}
