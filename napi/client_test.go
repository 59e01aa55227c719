package napi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mhalicki/tritonkit/errors"
	"github.com/mhalicki/tritonkit/logger"
	"github.com/mhalicki/tritonkit/triton"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, Logger: logger.Nop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestListNetworks_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("name"); got != "admin" {
			t.Errorf("expected name=admin, got %q", got)
		}
		if got := q.Get("vlan_id"); got != "100" {
			t.Errorf("expected vlan_id=100, got %q", got)
		}
		if got := q.Get("fabric"); got != "true" {
			t.Errorf("expected fabric=true, got %q", got)
		}
		_, _ = w.Write([]byte(`[{"uuid":"` + triton.NewInstanceUUID().String() + `","name":"admin","vlan_id":100,"subnet":"10.0.0.0/24","netmask":"255.255.255.0","nic_tag":"admin"}]`))
	}))
	defer srv.Close()

	fabric := true
	c := testClient(t, srv.URL)
	networks, err := c.ListNetworks(context.Background(), &ListNetworksParams{
		Name:   "admin",
		VLANID: 100,
		Fabric: &fabric,
	})
	if err != nil {
		t.Fatalf("ListNetworks: %v", err)
	}
	if len(networks) != 1 || networks[0].Name != "admin" {
		t.Errorf("unexpected networks: %+v", networks)
	}
}

func TestUpdateNetwork_UsesPut(t *testing.T) {
	uuid := triton.NetworkUUID{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/networks/"+uuid.String() {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req UpdateNetworkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "renamed" {
			t.Errorf("unexpected request: %+v", req)
		}
		_, _ = w.Write([]byte(`{"uuid":"` + uuid.String() + `","name":"renamed","vlan_id":0,"subnet":"10.0.0.0/24","netmask":"255.255.255.0","nic_tag":"admin"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	network, err := c.UpdateNetwork(context.Background(), uuid, &UpdateNetworkRequest{Name: "renamed"})
	if err != nil {
		t.Fatalf("UpdateNetwork: %v", err)
	}
	if network.Name != "renamed" {
		t.Errorf("unexpected network: %+v", network)
	}
}

func TestDeleteNIC_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/nics/90b8d0175d90" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	if err := c.DeleteNIC(context.Background(), "90b8d0175d90"); err != nil {
		t.Fatalf("DeleteNIC: %v", err)
	}
}

func TestGetNIC_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"ResourceNotFound","message":"nic not found"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.GetNIC(context.Background(), "90b8d0175d90")
	if !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReserveIP_Payload(t *testing.T) {
	network := triton.NewNetworkUUID()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/networks/"+network.String()+"/ips/10.0.0.20" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req UpdateIPRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Reserved == nil || !*req.Reserved {
			t.Errorf("expected reserved=true, got %+v", req)
		}
		_, _ = w.Write([]byte(`{"ip":"10.0.0.20","reserved":true,"free":false}`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	record, err := c.ReserveIP(context.Background(), network, "10.0.0.20")
	if err != nil {
		t.Fatalf("ReserveIP: %v", err)
	}
	if !record.Reserved {
		t.Errorf("unexpected record: %+v", record)
	}
}

func TestListIPs_Path(t *testing.T) {
	network := triton.NewNetworkUUID()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/networks/"+network.String()+"/ips" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"ip":"10.0.0.1","reserved":true,"free":false},{"ip":"10.0.0.2","reserved":false,"free":true}]`))
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	ips, err := c.ListIPs(context.Background(), network)
	if err != nil {
		t.Fatalf("ListIPs: %v", err)
	}
	if len(ips) != 2 || !ips[1].Free {
		t.Errorf("unexpected ips: %+v", ips)
	}
}
