package vmapi

import (
	"net/url"

	"github.com/mhalicki/tritonkit/triton"
)

// ListVMsParams filters the /vms listing. Zero-value fields are omitted from
// the query string.
type ListVMsParams struct {
	OwnerUUID  triton.OwnerUUID
	State      string
	Alias      string
	ServerUUID triton.ServerUUID
	ImageUUID  triton.ImageUUID
	Brand      string
	Limit      int
	Offset     int
	Fields     string
}

func (p *ListVMsParams) values() url.Values {
	if p == nil {
		return nil
	}
	return triton.NewQuery().
		SetUUID("owner_uuid", p.OwnerUUID).
		Set("state", p.State).
		Set("alias", p.Alias).
		SetUUID("server_uuid", p.ServerUUID).
		SetUUID("image_uuid", p.ImageUUID).
		Set("brand", p.Brand).
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Set("fields", p.Fields).
		Values()
}

// ListJobsParams filters the /jobs listing.
type ListJobsParams struct {
	VMUUID    triton.InstanceUUID
	Execution string
	Task      string
	Limit     int
	Offset    int
}

func (p *ListJobsParams) values() url.Values {
	if p == nil {
		return nil
	}
	return triton.NewQuery().
		SetUUID("vm_uuid", p.VMUUID).
		Set("execution", p.Execution).
		Set("task", p.Task).
		SetInt("limit", p.Limit).
		SetInt("offset", p.Offset).
		Values()
}
