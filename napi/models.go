package napi

import (
	"net/url"
	"time"

	"github.com/mhalicki/tritonkit/triton"
)

// ListNetworksParams filters the /networks listing.
type ListNetworksParams struct {
	Name            string
	UUID            triton.NetworkUUID
	VLANID          int
	OwnerUUID       triton.OwnerUUID
	ProvisionableBy string
	Fabric          *bool
	Limit           int
	Offset          int
}

func (p *ListNetworksParams) values() url.Values {
	if p == nil {
		return nil
	}
	q := triton.NewQuery().
		Set("name", p.Name).
		SetUUID("uuid", p.UUID).
		SetInt("vlan_id", p.VLANID).
		SetUUID("owner_uuid", p.OwnerUUID).
		Set("provisionable_by", p.ProvisionableBy)
	if p.Fabric != nil {
		q.SetBool("fabric", *p.Fabric)
	}
	return q.
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Values()
}

// Network is a network as returned by NAPI.
type Network struct {
	UUID    triton.NetworkUUID `json:"uuid"`
	Name    string             `json:"name"`
	VLANID  int                `json:"vlan_id"`
	Subnet  string             `json:"subnet"`
	Netmask string             `json:"netmask"`
	Gateway string             `json:"gateway,omitempty"`

	ProvisionStartIP string `json:"provision_start_ip,omitempty"`
	ProvisionEndIP   string `json:"provision_end_ip,omitempty"`

	NICTag      string `json:"nic_tag"`
	Description string `json:"description,omitempty"`

	OwnerUUIDs []triton.OwnerUUID `json:"owner_uuids,omitempty"`
	Routes     map[string]string  `json:"routes,omitempty"`
	Resolvers  []string           `json:"resolvers,omitempty"`

	Fabric             bool   `json:"fabric,omitempty"`
	InternetNAT        bool   `json:"internet_nat,omitempty"`
	MTU                int    `json:"mtu,omitempty"`
	Family             string `json:"family,omitempty"`
	VNetID             int    `json:"vnet_id,omitempty"`
	GatewayProvisioned bool   `json:"gateway_provisioned,omitempty"`
}

// CreateNetworkRequest is the payload for creating a network.
type CreateNetworkRequest struct {
	Name    string `json:"name"`
	VLANID  int    `json:"vlan_id"`
	Subnet  string `json:"subnet"`
	Netmask string `json:"netmask"`
	Gateway string `json:"gateway,omitempty"`

	ProvisionStartIP string `json:"provision_start_ip,omitempty"`
	ProvisionEndIP   string `json:"provision_end_ip,omitempty"`

	NICTag      string `json:"nic_tag"`
	Description string `json:"description,omitempty"`

	OwnerUUIDs []triton.OwnerUUID `json:"owner_uuids,omitempty"`
	Routes     map[string]string  `json:"routes,omitempty"`
	Resolvers  []string           `json:"resolvers,omitempty"`

	Fabric      *bool `json:"fabric,omitempty"`
	InternetNAT *bool `json:"internet_nat,omitempty"`
	MTU         int   `json:"mtu,omitempty"`
}

// UpdateNetworkRequest mutates an existing network. Only the set fields are
// applied.
type UpdateNetworkRequest struct {
	Name             string             `json:"name,omitempty"`
	ProvisionStartIP string             `json:"provision_start_ip,omitempty"`
	ProvisionEndIP   string             `json:"provision_end_ip,omitempty"`
	Resolvers        []string           `json:"resolvers,omitempty"`
	Routes           map[string]string  `json:"routes,omitempty"`
	OwnerUUIDs       []triton.OwnerUUID `json:"owner_uuids,omitempty"`
}

// NetworkPool groups networks that can provision interchangeably.
type NetworkPool struct {
	UUID           string               `json:"uuid"`
	Name           string               `json:"name"`
	Description    string               `json:"description,omitempty"`
	Networks       []triton.NetworkUUID `json:"networks"`
	NICTag         string               `json:"nic_tag,omitempty"`
	NICTagsPresent []string             `json:"nic_tags_present,omitempty"`
	Family         string               `json:"family,omitempty"`
	OwnerUUIDs     []triton.OwnerUUID   `json:"owner_uuids,omitempty"`
}

// NIC is a network interface record keyed by MAC address.
type NIC struct {
	MAC     string `json:"mac"`
	Primary bool   `json:"primary,omitempty"`

	OwnerUUID     *triton.OwnerUUID `json:"owner_uuid,omitempty"`
	BelongsToUUID string            `json:"belongs_to_uuid,omitempty"`
	BelongsToType string            `json:"belongs_to_type,omitempty"`

	IP      string `json:"ip,omitempty"`
	Netmask string `json:"netmask,omitempty"`
	VLANID  int    `json:"vlan_id,omitempty"`
	NICTag  string `json:"nic_tag,omitempty"`

	NetworkUUID     *triton.NetworkUUID `json:"network_uuid,omitempty"`
	State           string              `json:"state,omitempty"`
	NICTagsProvided []string            `json:"nic_tags_provided,omitempty"`
	Gateway         string              `json:"gateway,omitempty"`
	Resolvers       []string            `json:"resolvers,omitempty"`

	CreatedTimestamp  *time.Time `json:"created_timestamp,omitempty"`
	ModifiedTimestamp *time.Time `json:"modified_timestamp,omitempty"`

	AllowDHCPSpoofing bool `json:"allow_dhcp_spoofing,omitempty"`
}

// ListNICsParams filters the /nics listing.
type ListNICsParams struct {
	OwnerUUID     triton.OwnerUUID
	BelongsToUUID string
	BelongsToType string
	NICTag        string
	NetworkUUID   triton.NetworkUUID
	Limit         int
	Offset        int
}

func (p *ListNICsParams) values() url.Values {
	if p == nil {
		return nil
	}
	return triton.NewQuery().
		SetUUID("owner_uuid", p.OwnerUUID).
		Set("belongs_to_uuid", p.BelongsToUUID).
		Set("belongs_to_type", p.BelongsToType).
		Set("nic_tag", p.NICTag).
		SetUUID("network_uuid", p.NetworkUUID).
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Values()
}

// IP is one address on a network, with the record describing what holds it.
type IP struct {
	IP          string             `json:"ip"`
	NetworkUUID triton.NetworkUUID `json:"network_uuid,omitempty"`
	Reserved    bool               `json:"reserved"`
	Free        bool               `json:"free"`

	OwnerUUID     *triton.OwnerUUID `json:"owner_uuid,omitempty"`
	BelongsToUUID string            `json:"belongs_to_uuid,omitempty"`
	BelongsToType string            `json:"belongs_to_type,omitempty"`
}

// UpdateIPRequest mutates an address record. Reserving an address keeps it
// out of automatic provisioning; clearing ownership releases it.
type UpdateIPRequest struct {
	Reserved      *bool             `json:"reserved,omitempty"`
	OwnerUUID     *triton.OwnerUUID `json:"owner_uuid,omitempty"`
	BelongsToUUID string            `json:"belongs_to_uuid,omitempty"`
	BelongsToType string            `json:"belongs_to_type,omitempty"`
	Unassign      bool              `json:"unassign,omitempty"`
}
