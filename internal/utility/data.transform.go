package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransformConfig chứa cấu hình được parse từ struct tag `transform` trên DTO.
// Tag format: "[type][,format=<value>][,default=<value>][,map=<field>][,optional|required]"
// Naming convention của type: <input_type>_<output_type>. Ví dụ:
//   - transform:"str_objectid"                  → string → primitive.ObjectID
//   - transform:"str_objectid_ptr"              → string → *primitive.ObjectID
//   - transform:"str_time,format=2006-01-02"    → string → int64 timestamp (UnixMilli)
//   - transform:"str_int64"                     → string → int64
//   - transform:"str_bool"                      → string → bool
type TransformConfig struct {
	Type     string // Loại transform (rỗng = copy trực tiếp)
	Format   string // Format cho str_time
	Default  string // Giá trị mặc định khi input rỗng
	Optional bool   // Bỏ qua field nếu không có giá trị
	Required bool   // Bắt buộc phải có giá trị
	MapTo    string // Tên field đích trong Model nếu khác tên field DTO
}

// ParseTransformTag parse tag transform thành TransformConfig.
func ParseTransformTag(tag string) (*TransformConfig, error) {
	config := &TransformConfig{Format: "2006-01-02T15:04:05"}
	if tag == "" {
		return config, nil
	}

	parts := strings.Split(tag, ",")
	config.Type = strings.TrimSpace(parts[0])

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
		case part == "optional":
			config.Optional = true
		case part == "required":
			config.Required = true
		case strings.Contains(part, "="):
			kv := strings.SplitN(part, "=", 2)
			key, value := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
			switch key {
			case "format":
				config.Format = value
			case "default":
				config.Default = value
			case "map":
				config.MapTo = value
			}
		}
	}

	return config, nil
}

// TransformFieldValue transform giá trị từ DTO field sang Model field theo config.
// Giá trị nil/rỗng được xử lý theo thứ tự: default → optional (bỏ qua) → required (lỗi).
func TransformFieldValue(value interface{}, config *TransformConfig) (interface{}, error) {
	empty := value == nil
	if strValue, ok := value.(string); ok && strValue == "" {
		empty = true
	}

	if empty {
		if config.Default != "" {
			return applyTransform(config.Default, config)
		}
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng không có giá trị")
		}
		return nil, nil
	}

	return applyTransform(value, config)
}

// applyTransform chuyển đổi value theo transform type.
func applyTransform(value interface{}, config *TransformConfig) (interface{}, error) {
	switch config.Type {
	case "str_objectid":
		return transformToObjectID(value)
	case "str_objectid_ptr":
		return transformToObjectIDPtr(value)
	case "str_time":
		return transformToTime(value, config.Format)
	case "str_int64":
		return transformToInt64(value)
	case "str_bool":
		return transformToBool(value)
	case "str_string":
		// Passthrough, dùng khi chỉ cần default/optional trên field string
		return value, nil
	default:
		return value, nil
	}
}

func transformToObjectID(value interface{}) (primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return primitive.NilObjectID, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("không thể convert string '%s' sang ObjectID: %w", strValue, err)
	}
	return objID, nil
}

func transformToObjectIDPtr(value interface{}) (*primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return nil, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return nil, fmt.Errorf("không thể convert string '%s' sang ObjectID: %w", strValue, err)
	}
	return &objID, nil
}

// transformToTime parse string theo format và trả về UnixMilli.
// Parse ở UTC để ngày "2006-01-02" luôn ra cùng một timestamp bất kể timezone của server.
func transformToTime(value interface{}, format string) (int64, error) {
	strValue, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return 0, nil
	}

	t, err := time.Parse(format, strValue)
	if err != nil {
		return 0, fmt.Errorf("không thể parse time '%s' với format '%s': %w", strValue, format, err)
	}
	return t.UnixMilli(), nil
}

func transformToInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("không thể convert %T sang int64", value)
	}
}

func transformToBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("không thể convert %T sang bool", value)
	}
}

// AssignTransformed gán giá trị đã transform vào field đích (hỗ trợ convert type tương thích).
func AssignTransformed(target reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}
	val := reflect.ValueOf(value)
	// DTO hay dùng pointer (vd *bool) để phân biệt "không gửi" với zero value
	if val.Kind() == reflect.Ptr && target.Kind() != reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	switch {
	case val.Type().AssignableTo(target.Type()):
		target.Set(val)
	case val.Type().ConvertibleTo(target.Type()):
		target.Set(val.Convert(target.Type()))
	default:
		return fmt.Errorf("không thể convert giá trị từ type %v sang type %v", val.Type(), target.Type())
	}
	return nil
}
