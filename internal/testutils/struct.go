package testutils

import (
	"reflect"
	"testing"
)

type structInfo struct {
	Name         string
	FieldTypeMap map[string]string
}

func getStructFieldInfo(v any) structInfo {
	result := structInfo{FieldTypeMap: make(map[string]string)}

	typ := reflect.TypeOf(v)

	// If it's a pointer, resolve it to the element
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		return result
	}

	result.Name = typ.Name()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldName := field.Name
		var jsonTagValue *string = nil
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			jsonTagValue = &fieldName
		} else if jsonTag != "-" {
			jsonTagValue = &jsonTag
		}

		if jsonTagValue != nil {
			result.FieldTypeMap[*jsonTagValue] = field.Type.String()
		}
	}

	return result
}

// ValidateModelContract asserts that every serialised field of `i` exists
// in `j` under the same json tag with the same type. Used to keep handler
// input/output models and their SDK counterparts in sync
func ValidateModelContract(i any, j any, t *testing.T) {
	t.Helper()
	structA := getStructFieldInfo(i)
	structB := getStructFieldInfo(j)
	for structAField, structAType := range structA.FieldTypeMap {
		structBType, ok := structB.FieldTypeMap[structAField]
		if !ok {
			t.Errorf(
				"%s[%s] doesn't exist in %s",
				structA.Name,
				structAField,
				structB.Name,
			)
			continue
		}
		if structAType != structBType {
			t.Errorf(
				"%s[%s]'s type[%s] doesn't match %s[%s]'s type[%s]",
				structA.Name,
				structAField,
				structAType,
				structB.Name,
				structAField,
				structBType,
			)
		}
	}
}
