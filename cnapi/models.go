package cnapi

import (
	"net/url"
	"strings"
	"time"

	"github.com/mhalicki/tritonkit/triton"
)

// ListServersParams filters the /servers listing. Boolean filters are
// pointers because CNAPI distinguishes "unset" from "false".
type ListServersParams struct {
	Datacenter string
	Hostname   string
	UUID       triton.ServerUUID
	UUIDs      []triton.ServerUUID
	Setup      *bool
	Reserved   *bool
	Headnode   *bool
	Reservoir  *bool
	// Extras selects additional payload sections, comma-separated
	// (agents, vms, sysinfo, capacity, all).
	Extras string
	Fields string
	Limit  int
	Offset int
}

func (p *ListServersParams) values() url.Values {
	if p == nil {
		return nil
	}
	q := triton.NewQuery().
		Set("datacenter", p.Datacenter).
		Set("hostname", p.Hostname).
		SetUUID("uuid", p.UUID)
	if len(p.UUIDs) > 0 {
		uuids := make([]string, len(p.UUIDs))
		for i, u := range p.UUIDs {
			uuids[i] = u.String()
		}
		q.Set("uuids", strings.Join(uuids, ","))
	}
	if p.Setup != nil {
		q.SetBool("setup", *p.Setup)
	}
	if p.Reserved != nil {
		q.SetBool("reserved", *p.Reserved)
	}
	if p.Headnode != nil {
		q.SetBool("headnode", *p.Headnode)
	}
	if p.Reservoir != nil {
		q.SetBool("reservoir", *p.Reservoir)
	}
	return q.
		Set("extras", p.Extras).
		Set("fields", p.Fields).
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Values()
}

// Server is a compute node as reported by CNAPI. Capacity and sysinfo
// sections are only present when requested through extras.
type Server struct {
	UUID       triton.ServerUUID `json:"uuid"`
	Hostname   string            `json:"hostname,omitempty"`
	Datacenter string            `json:"datacenter,omitempty"`
	Status     string            `json:"status,omitempty"`

	Setup     *bool `json:"setup,omitempty"`
	SettingUp *bool `json:"setting_up,omitempty"`
	Headnode  *bool `json:"headnode,omitempty"`
	Reserved  *bool `json:"reserved,omitempty"`
	Reservoir *bool `json:"reservoir,omitempty"`

	BootPlatform    string `json:"boot_platform,omitempty"`
	CurrentPlatform string `json:"current_platform,omitempty"`
	Comments        string `json:"comments,omitempty"`

	Created       *time.Time `json:"created,omitempty"`
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	LastBoot      *time.Time `json:"last_boot,omitempty"`

	TransitionalStatus string `json:"transitional_status,omitempty"`
	RackIdentifier     string `json:"rack_identifier,omitempty"`
	DatacenterName     string `json:"datacenter_name,omitempty"`

	RAM     uint64 `json:"ram,omitempty"`
	Sysinfo any    `json:"sysinfo,omitempty"`

	MemoryAvailableBytes     uint64 `json:"memory_available_bytes,omitempty"`
	MemoryARCBytes           uint64 `json:"memory_arc_bytes,omitempty"`
	MemoryTotalBytes         uint64 `json:"memory_total_bytes,omitempty"`
	MemoryProvisionableBytes int64  `json:"memory_provisionable_bytes,omitempty"`

	ReservationRatio    float64            `json:"reservation_ratio,omitempty"`
	OverprovisionRatio  float64            `json:"overprovision_ratio,omitempty"`
	OverprovisionRatios map[string]float64 `json:"overprovision_ratios,omitempty"`

	DiskPoolSizeBytes            uint64 `json:"disk_pool_size_bytes,omitempty"`
	DiskInstalledImagesUsedBytes uint64 `json:"disk_installed_images_used_bytes,omitempty"`
	DiskZoneQuotaBytes           uint64 `json:"disk_zone_quota_bytes,omitempty"`
	DiskKVMQuotaBytes            uint64 `json:"disk_kvm_quota_bytes,omitempty"`
	DiskKVMZvolUsedBytes         uint64 `json:"disk_kvm_zvol_used_bytes,omitempty"`
	DiskKVMZvolVolsizeBytes      uint64 `json:"disk_kvm_zvol_volsize_bytes,omitempty"`
	DiskCoresQuotaBytes          uint64 `json:"disk_cores_quota_bytes,omitempty"`

	UnreservedCPU  int64 `json:"unreserved_cpu,omitempty"`
	UnreservedRAM  int64 `json:"unreserved_ram,omitempty"`
	UnreservedDisk int64 `json:"unreserved_disk,omitempty"`

	NICs   []ServerNIC    `json:"nics,omitempty"`
	Traits map[string]any `json:"traits,omitempty"`

	BootParams     any    `json:"boot_params,omitempty"`
	KernelFlags    any    `json:"kernel_flags,omitempty"`
	DefaultConsole string `json:"default_console,omitempty"`
	Serial         string `json:"serial,omitempty"`

	VMs map[string]any `json:"vms,omitempty"`
}

// Capacity summarizes what is still provisionable on this server.
func (s *Server) Capacity() ServerCapacity {
	return ServerCapacity{
		UnreservedCPU:  s.UnreservedCPU,
		UnreservedRAM:  s.UnreservedRAM,
		UnreservedDisk: s.UnreservedDisk,
	}
}

// ServerCapacity is the unreserved capacity of a compute node.
type ServerCapacity struct {
	UnreservedCPU  int64 `json:"unreserved_cpu"`
	UnreservedRAM  int64 `json:"unreserved_ram"`
	UnreservedDisk int64 `json:"unreserved_disk"`
}

// UpdateServerRequest mutates operator-controlled server settings.
type UpdateServerRequest struct {
	Reserved           *bool           `json:"reserved,omitempty"`
	ReservationRatio   *float64        `json:"reservation_ratio,omitempty"`
	OverprovisionRatio *float64        `json:"overprovision_ratio,omitempty"`
	Comments           string          `json:"comments,omitempty"`
	Traits             map[string]bool `json:"traits,omitempty"`
}

// ServerNIC is a physical interface on a compute node.
type ServerNIC struct {
	Interface        string   `json:"interface"`
	MAC              string   `json:"mac"`
	IP4Addr          string   `json:"ip4addr,omitempty"`
	Netmask          string   `json:"netmask,omitempty"`
	NICTagsProvided  []string `json:"nic_tags_provided,omitempty"`
	LinkStatus       string   `json:"link_status,omitempty"`
}

// Task is a cn-agent task tracked by CNAPI. Server setup and reboot return
// one; poll GetTask until Finished reports true.
type Task struct {
	ID         string            `json:"id"`
	Task       string            `json:"task,omitempty"`
	ServerUUID triton.ServerUUID `json:"server_uuid,omitempty"`
	Status     string            `json:"status,omitempty"`
	Progress   int               `json:"progress,omitempty"`
	Timestamp  *time.Time        `json:"timestamp,omitempty"`
	History    []map[string]any  `json:"history,omitempty"`
}

// Finished reports whether the task reached a terminal state.
func (t *Task) Finished() bool {
	switch t.Status {
	case "complete", "failure":
		return true
	}
	return false
}

// Failed reports whether the task finished unsuccessfully.
func (t *Task) Failed() bool { return t.Status == "failure" }

// SetupServerRequest carries the optional parameters for server setup.
type SetupServerRequest struct {
	Hostname    string `json:"hostname,omitempty"`
	NICTags     any    `json:"nics,omitempty"`
	PostsetupSc string `json:"postsetup_script,omitempty"`
}

// RebootServerRequest carries the optional parameters for a server reboot.
type RebootServerRequest struct {
	// Origin identifies the requesting system in the audit trail.
	Origin string `json:"origin,omitempty"`
	// Drain waits for cn-agent tasks to finish before rebooting.
	Drain bool `json:"drain,omitempty"`
}

// ListTasksParams filters task listings.
type ListTasksParams struct {
	ServerUUID triton.ServerUUID
	Status     string
	Limit      int
	Offset     int
}

func (p *ListTasksParams) values() url.Values {
	if p == nil {
		return nil
	}
	return triton.NewQuery().
		SetUUID("server_uuid", p.ServerUUID).
		Set("status", p.Status).
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Values()
}
