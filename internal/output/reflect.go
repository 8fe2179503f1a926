package output

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ActiveState/pylink/internal/locale"
)

type structMeta struct {
	fields          []string
	localizedFields []string
	values          []interface{}
}

// parseStructMeta collects the exported fields of a struct. A `locale:"id,Fallback"` tag controls the label
// printed for a field.
func parseStructMeta(v interface{}) (structMeta, error) {
	structRfl := reflect.ValueOf(v)

	if structRfl.Kind() != reflect.Struct {
		return structMeta{}, fmt.Errorf("expected struct, got: %s", structRfl.Kind().String())
	}

	info := structMeta{}
	for i := 0; i < structRfl.Type().NumField(); i++ {
		fieldRfl := structRfl.Type().Field(i)
		if !fieldRfl.IsExported() {
			continue
		}

		info.fields = append(info.fields, fieldRfl.Name)
		info.values = append(info.values, structRfl.Field(i).Interface())

		label := fieldRfl.Name
		if tag, ok := fieldRfl.Tag.Lookup("locale"); ok {
			id, fallback := tag, fieldRfl.Name
			if idx := strings.Index(tag, ","); idx >= 0 {
				id, fallback = tag[:idx], tag[idx+1:]
			}
			label = locale.Tl(id, fallback)
		}
		info.localizedFields = append(info.localizedFields, label)
	}

	return info, nil
}
