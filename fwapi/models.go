package fwapi

import (
	"net/url"
	"time"

	"github.com/mhalicki/tritonkit/triton"
)

// Rule is a firewall rule as returned by FWAPI. Timestamps are Unix seconds
// on the wire.
type Rule struct {
	UUID    triton.RuleUUID `json:"uuid"`
	Rule    string          `json:"rule"`
	Enabled bool            `json:"enabled"`
	Version string          `json:"version"`

	Description string                `json:"description,omitempty"`
	OwnerUUID   *triton.OwnerUUID     `json:"owner_uuid,omitempty"`
	Global      bool                  `json:"global,omitempty"`
	VMs         []triton.InstanceUUID `json:"vms,omitempty"`
	CreatedBy   string                `json:"created_by,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// CreatedTime returns the creation timestamp, zero if unset.
func (r *Rule) CreatedTime() time.Time {
	if r.CreatedAt == 0 {
		return time.Time{}
	}
	return time.Unix(r.CreatedAt, 0).UTC()
}

// UpdatedTime returns the last update timestamp, zero if unset.
func (r *Rule) UpdatedTime() time.Time {
	if r.UpdatedAt == 0 {
		return time.Time{}
	}
	return time.Unix(r.UpdatedAt, 0).UTC()
}

// CreateRuleRequest is the payload for creating a firewall rule.
type CreateRuleRequest struct {
	Rule        string                `json:"rule"`
	Enabled     *bool                 `json:"enabled,omitempty"`
	Description string                `json:"description,omitempty"`
	OwnerUUID   *triton.OwnerUUID     `json:"owner_uuid,omitempty"`
	Global      *bool                 `json:"global,omitempty"`
	VMs         []triton.InstanceUUID `json:"vms,omitempty"`
}

// UpdateRuleRequest mutates an existing firewall rule. Only the set fields
// are applied.
type UpdateRuleRequest struct {
	Rule        string                `json:"rule,omitempty"`
	Enabled     *bool                 `json:"enabled,omitempty"`
	Description string                `json:"description,omitempty"`
	OwnerUUID   *triton.OwnerUUID     `json:"owner_uuid,omitempty"`
	Global      *bool                 `json:"global,omitempty"`
	VMs         []triton.InstanceUUID `json:"vms,omitempty"`
}

// ListRulesParams filters the /rules listing.
type ListRulesParams struct {
	OwnerUUID triton.OwnerUUID
	Global    *bool
	Enabled   *bool
	VM        triton.InstanceUUID
	Limit     int
	Offset    int
}

func (p *ListRulesParams) values() url.Values {
	if p == nil {
		return nil
	}
	q := triton.NewQuery().
		SetUUID("owner_uuid", p.OwnerUUID)
	if p.Global != nil {
		q.SetBool("global", *p.Global)
	}
	if p.Enabled != nil {
		q.SetBool("enabled", *p.Enabled)
	}
	return q.
		SetUUID("vm", p.VM).
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Values()
}
