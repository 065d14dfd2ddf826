// Package utility - Test transform tag: parse config và convert giá trị DTO.
package utility

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fieldByName lấy reflect.Value có thể set của một field trong struct pointer.
func fieldByName(ptr interface{}, name string) reflect.Value {
	return reflect.ValueOf(ptr).Elem().FieldByName(name)
}

func TestParseTransformTag_FullOptions(t *testing.T) {
	config, err := ParseTransformTag("str_time,format=2006-01-02,default=2024-01-01,map=StartDate,optional")
	if err != nil {
		t.Fatalf("ParseTransformTag trả về lỗi: %v", err)
	}
	if config.Type != "str_time" {
		t.Errorf("Type = %q, muốn str_time", config.Type)
	}
	if config.Format != "2006-01-02" {
		t.Errorf("Format = %q, muốn 2006-01-02", config.Format)
	}
	if config.Default != "2024-01-01" {
		t.Errorf("Default = %q, muốn 2024-01-01", config.Default)
	}
	if config.MapTo != "StartDate" {
		t.Errorf("MapTo = %q, muốn StartDate", config.MapTo)
	}
	if !config.Optional {
		t.Error("Optional phải là true")
	}
}

func TestTransformFieldValue_StrTime(t *testing.T) {
	config, _ := ParseTransformTag("str_time,format=2006-01-02")
	got, err := TransformFieldValue("2024-03-15", config)
	if err != nil {
		t.Fatalf("TransformFieldValue trả về lỗi: %v", err)
	}

	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Errorf("str_time = %v, muốn %d (UnixMilli của 2024-03-15 UTC)", got, want)
	}
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid")
	hex := "507f1f77bcf86cd799439011"

	got, err := TransformFieldValue(hex, config)
	if err != nil {
		t.Fatalf("TransformFieldValue trả về lỗi: %v", err)
	}
	oid, ok := got.(primitive.ObjectID)
	if !ok {
		t.Fatalf("Kết quả không phải ObjectID: %T", got)
	}
	if oid.Hex() != hex {
		t.Errorf("ObjectID = %s, muốn %s", oid.Hex(), hex)
	}

	if _, err := TransformFieldValue("không phải hex", config); err == nil {
		t.Error("Chuỗi không phải hex phải trả về lỗi")
	}
}

func TestTransformFieldValue_EmptyValue(t *testing.T) {
	// Rỗng + default → áp default
	withDefault, _ := ParseTransformTag("str_string,default=active")
	got, err := TransformFieldValue("", withDefault)
	if err != nil {
		t.Fatalf("Giá trị rỗng có default trả về lỗi: %v", err)
	}
	if got != "active" {
		t.Errorf("Default = %v, muốn active", got)
	}

	// Rỗng + optional → bỏ qua (nil, không lỗi)
	optional, _ := ParseTransformTag("str_objectid,optional")
	got, err = TransformFieldValue("", optional)
	if err != nil {
		t.Fatalf("Giá trị rỗng optional trả về lỗi: %v", err)
	}
	if got != nil {
		t.Errorf("Optional rỗng phải trả về nil, nhận %v", got)
	}

	// Rỗng + required → lỗi
	required, _ := ParseTransformTag("str_objectid,required")
	if _, err := TransformFieldValue("", required); err == nil {
		t.Error("Giá trị rỗng required phải trả về lỗi")
	}
}

func TestAssignTransformed_PointerDeref(t *testing.T) {
	type target struct {
		IsActive bool
	}
	v := true
	var dst target

	err := AssignTransformed(fieldByName(&dst, "IsActive"), &v)
	if err != nil {
		t.Fatalf("AssignTransformed trả về lỗi: %v", err)
	}
	if !dst.IsActive {
		t.Error("*bool true phải gán được vào field bool")
	}

	// Pointer nil → bỏ qua, không lỗi
	var nilPtr *bool
	if err := AssignTransformed(fieldByName(&dst, "IsActive"), nilPtr); err != nil {
		t.Errorf("Pointer nil phải được bỏ qua, nhận lỗi: %v", err)
	}
}
