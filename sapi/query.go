package sapi

import (
	"net/url"

	"github.com/mhalicki/tritonkit/triton"
)

// ServiceQuery filters ListServices.
type ServiceQuery struct {
	name            string
	applicationUUID triton.AppUUID
	serviceType     InstanceType
	includeMaster   bool
}

// NewServiceQuery creates an empty query.
func NewServiceQuery() *ServiceQuery { return &ServiceQuery{} }

// WithName filters by service name.
func (q *ServiceQuery) WithName(name string) *ServiceQuery {
	q.name = name
	return q
}

// WithApplicationUUID filters by owning application.
func (q *ServiceQuery) WithApplicationUUID(uuid triton.AppUUID) *ServiceQuery {
	q.applicationUUID = uuid
	return q
}

// WithType filters by service type.
func (q *ServiceQuery) WithType(t InstanceType) *ServiceQuery {
	q.serviceType = t
	return q
}

// IncludeMaster includes master configuration details in responses.
func (q *ServiceQuery) IncludeMaster(include bool) *ServiceQuery {
	q.includeMaster = include
	return q
}

func (q *ServiceQuery) values() url.Values {
	if q == nil {
		return nil
	}
	out := triton.NewQuery().
		Set("name", q.name).
		SetUUID("application_uuid", q.applicationUUID).
		Set("type", string(q.serviceType))
	if q.includeMaster {
		out.SetBool("include_master", true)
	}
	return out.Values()
}

// InstanceQuery filters ListInstances.
type InstanceQuery struct {
	serviceUUID   triton.ServiceUUID
	instanceType  InstanceType
	includeMaster bool
}

// NewInstanceQuery creates an empty query.
func NewInstanceQuery() *InstanceQuery { return &InstanceQuery{} }

// WithServiceUUID filters by parent service.
func (q *InstanceQuery) WithServiceUUID(uuid triton.ServiceUUID) *InstanceQuery {
	q.serviceUUID = uuid
	return q
}

// WithType filters by instance type.
func (q *InstanceQuery) WithType(t InstanceType) *InstanceQuery {
	q.instanceType = t
	return q
}

// IncludeMaster includes master configuration details.
func (q *InstanceQuery) IncludeMaster(include bool) *InstanceQuery {
	q.includeMaster = include
	return q
}

func (q *InstanceQuery) values() url.Values {
	if q == nil {
		return nil
	}
	out := triton.NewQuery().
		SetUUID("service_uuid", q.serviceUUID).
		Set("type", string(q.instanceType))
	if q.includeMaster {
		out.SetBool("include_master", true)
	}
	return out.Values()
}
