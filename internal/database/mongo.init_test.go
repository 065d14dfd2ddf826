// Package database - Test parse struct tag index.
package database

import (
	"testing"
)

func TestParseIndexTag_Single(t *testing.T) {
	configs := parseIndexTag("single")
	if len(configs) != 1 {
		t.Fatalf("Tag 'single' phải cho 1 cấu hình, nhận %d", len(configs))
	}
	if _, ok := configs[0]["single"]; !ok {
		t.Error("Cấu hình thiếu key 'single'")
	}
}

func TestParseIndexTag_CompoundWithOrder(t *testing.T) {
	configs := parseIndexTag("single;compound:attendance_key_unique,order:-1")
	if len(configs) != 2 {
		t.Fatalf("Tag 2 phần phải cho 2 cấu hình, nhận %d", len(configs))
	}

	compound := configs[1]
	if compound["compound"] != "attendance_key_unique" {
		t.Errorf("Tên group compound = %q, muốn attendance_key_unique", compound["compound"])
	}
	if compound["order"] != "-1" {
		t.Errorf("Order = %q, muốn -1", compound["order"])
	}
}

func TestParseOrder(t *testing.T) {
	if parseOrder("compound:x,order:-1") != -1 {
		t.Error("order:-1 phải cho thứ tự giảm dần")
	}
	if parseOrder("compound:x") != 1 {
		t.Error("Không có order phải mặc định tăng dần")
	}
}
