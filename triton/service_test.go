package triton

import (
	"testing"
	"time"
)

func TestParseService(t *testing.T) {
	cases := []struct {
		in   string
		want Service
		ok   bool
	}{
		{"vmapi", ServiceVMAPI, true},
		{"VMAPI", ServiceVMAPI, true},
		{"  sapi  ", ServiceSAPI, true},
		{"Workflow", ServiceWorkflow, true},
		{"nosuch", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseService(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseService(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseService(%q) expected error", tc.in)
		}
	}
}

func TestService_Defaults(t *testing.T) {
	if ServiceUFDS.DefaultPort() != 636 {
		t.Errorf("ufds port: got %d", ServiceUFDS.DefaultPort())
	}
	if ServiceVMAPI.DefaultPort() != 80 {
		t.Errorf("vmapi port: got %d", ServiceVMAPI.DefaultPort())
	}
	if ServiceUFDS.DefaultScheme() != "ldaps" {
		t.Errorf("ufds scheme: got %s", ServiceUFDS.DefaultScheme())
	}
	if ServiceNAPI.DefaultScheme() != "http" {
		t.Errorf("napi scheme: got %s", ServiceNAPI.DefaultScheme())
	}

	timeouts := map[Service]time.Duration{
		ServiceVMAPI:    30 * time.Second,
		ServiceCNAPI:    30 * time.Second,
		ServiceWorkflow: 30 * time.Second,
		ServiceIMGAPI:   60 * time.Second,
		ServiceUFDS:     15 * time.Second,
		ServiceNAPI:     20 * time.Second,
		ServicePAPI:     20 * time.Second,
		ServiceFWAPI:    20 * time.Second,
		ServiceSAPI:     20 * time.Second,
		ServiceAmon:     20 * time.Second,
	}
	for svc, want := range timeouts {
		if got := svc.DefaultTimeout(); got != want {
			t.Errorf("%s timeout: got %v, want %v", svc, got, want)
		}
	}
}

func TestKnownServices(t *testing.T) {
	services := KnownServices()
	if len(services) != 10 {
		t.Fatalf("expected 10 services, got %d", len(services))
	}
	seen := map[Service]bool{}
	for _, s := range services {
		if seen[s] {
			t.Errorf("duplicate service %s", s)
		}
		seen[s] = true
	}
}
