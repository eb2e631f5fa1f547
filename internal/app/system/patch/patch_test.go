package patch

import (
	"encoding/json"
	"testing"
)

func TestField_Absent(t *testing.T) {
	var in struct {
		FolderID Field[string] `json:"folder_id"`
	}
	if err := json.Unmarshal([]byte(`{}`), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if in.FolderID.Present {
		t.Error("Present = true for absent field, want false")
	}
	if in.FolderID.IsSet() || in.FolderID.IsClear() {
		t.Error("absent field should be neither set nor clear")
	}
}

func TestField_Value(t *testing.T) {
	var in struct {
		FolderID Field[string] `json:"folder_id"`
	}
	if err := json.Unmarshal([]byte(`{"folder_id":"abc123"}`), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !in.FolderID.IsSet() {
		t.Error("IsSet() = false for supplied value, want true")
	}
	if in.FolderID.IsClear() {
		t.Error("IsClear() = true for supplied value, want false")
	}
	if in.FolderID.Value != "abc123" {
		t.Errorf("Value = %q, want %q", in.FolderID.Value, "abc123")
	}
}

func TestField_ExplicitNull(t *testing.T) {
	var in struct {
		FolderID Field[string] `json:"folder_id"`
	}
	if err := json.Unmarshal([]byte(`{"folder_id":null}`), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !in.FolderID.Present {
		t.Error("Present = false for explicit null, want true")
	}
	if !in.FolderID.IsClear() {
		t.Error("IsClear() = false for explicit null, want true")
	}
	if in.FolderID.IsSet() {
		t.Error("IsSet() = true for explicit null, want false")
	}
}

func TestField_IntValue(t *testing.T) {
	var in struct {
		Weight Field[int] `json:"weight"`
	}
	if err := json.Unmarshal([]byte(`{"weight":-3}`), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !in.Weight.IsSet() || in.Weight.Value != -3 {
		t.Errorf("Weight = %+v, want set value -3", in.Weight)
	}
}

func TestField_Constructors(t *testing.T) {
	if f := Set("x"); !f.IsSet() || f.Value != "x" {
		t.Errorf("Set(x) = %+v", f)
	}
	if f := Clear[string](); !f.IsClear() {
		t.Errorf("Clear() = %+v", f)
	}
}

func TestField_BadType(t *testing.T) {
	var in struct {
		Weight Field[int] `json:"weight"`
	}
	if err := json.Unmarshal([]byte(`{"weight":"heavy"}`), &in); err == nil {
		t.Error("Unmarshal() with mismatched type should error")
	}
}
