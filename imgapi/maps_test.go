package imgapi

import (
	"encoding/json"
	"testing"
)

func TestStringMap_MixedValues(t *testing.T) {
	var m StringMap
	err := json.Unmarshal([]byte(`{"alpha":true,"beta":42,"gamma":"delta","skip":null,"nested":{"x":1}}`), &m)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["alpha"] != "true" || m["beta"] != "42" || m["gamma"] != "delta" {
		t.Errorf("unexpected map: %v", m)
	}
	if _, ok := m["skip"]; ok {
		t.Error("null values must be dropped")
	}
	if _, ok := m["nested"]; ok {
		t.Error("object values must be dropped")
	}
}

func TestBoolMap_StringValues(t *testing.T) {
	var m BoolMap
	err := json.Unmarshal([]byte(`{"virtio":"true","uefi":false,"other":"invalid"}`), &m)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !m["virtio"] || m["uefi"] {
		t.Errorf("unexpected map: %v", m)
	}
	if _, ok := m["other"]; ok {
		t.Error("non-boolean strings must be dropped")
	}
}
