package sapi

import (
	"encoding/json"

	"github.com/mhalicki/tritonkit/triton"
)

// InstanceType distinguishes VM instances from agents.
type InstanceType string

const (
	// InstanceTypeVM is a VM instance running on a compute node.
	InstanceTypeVM InstanceType = "vm"
	// InstanceTypeAgent is a non-VM agent instance.
	InstanceTypeAgent InstanceType = "agent"
)

// Application is a SAPI application definition.
type Application struct {
	UUID        triton.AppUUID   `json:"uuid"`
	Name        string           `json:"name"`
	OwnerUUID   triton.OwnerUUID `json:"owner_uuid"`
	Params      map[string]any   `json:"params,omitempty"`
	Metadata    map[string]any   `json:"metadata,omitempty"`
	Manifests   json.RawMessage  `json:"manifests,omitempty"`
	Master      json.RawMessage  `json:"master,omitempty"`
	Description string           `json:"description,omitempty"`
	CreatedAt   string           `json:"created_at,omitempty"`
	UpdatedAt   string           `json:"updated_at,omitempty"`
}

// Service is a SAPI service definition under an application.
type Service struct {
	UUID            triton.ServiceUUID `json:"uuid"`
	Name            string             `json:"name"`
	ApplicationUUID triton.AppUUID     `json:"application_uuid"`
	Params          map[string]any     `json:"params,omitempty"`
	Metadata        map[string]any     `json:"metadata,omitempty"`
	Manifests       json.RawMessage    `json:"manifests,omitempty"`
	Master          json.RawMessage    `json:"master,omitempty"`
	Type            InstanceType       `json:"type,omitempty"`
	CreatedAt       string             `json:"created_at,omitempty"`
	UpdatedAt       string             `json:"updated_at,omitempty"`
}

// Instance is a deployed instance of a SAPI service.
type Instance struct {
	UUID            triton.InstanceUUID `json:"uuid"`
	ServiceUUID     triton.ServiceUUID  `json:"service_uuid"`
	ApplicationUUID *triton.AppUUID     `json:"application_uuid,omitempty"`
	Name            string              `json:"name,omitempty"`
	ServiceName     string              `json:"service_name,omitempty"`
	Version         string              `json:"version,omitempty"`
	Hostname        string              `json:"hostname,omitempty"`
	ServerUUID      *triton.ServerUUID  `json:"server_uuid,omitempty"`
	Params          map[string]any      `json:"params,omitempty"`
	Metadata        map[string]any      `json:"metadata,omitempty"`
	Manifests       json.RawMessage     `json:"manifests,omitempty"`
	Master          bool                `json:"master,omitempty"`
	State           string              `json:"state,omitempty"`
	JobUUID         *triton.JobUUID     `json:"job_uuid,omitempty"`
	Type            InstanceType        `json:"type,omitempty"`
	CreatedAt       string              `json:"created_at,omitempty"`
	UpdatedAt       string              `json:"updated_at,omitempty"`
}
