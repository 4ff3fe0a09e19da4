package config

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"github.com/keboola/remote-files/internal/pkg/utils/url"
)

const maskedValue = "*****"

type KVs []KV

type KV struct {
	Key   string
	Value string
}

func (v KVs) String() string {
	var out strings.Builder
	for _, kv := range v {
		out.WriteString(kv.Key)
		out.WriteString(": ")
		out.WriteString(kv.Value)
		out.WriteString("\n")
	}
	return out.String()
}

// Dump the configuration as key-value pairs.
// Values of fields tagged `sensitive:"true"` are masked, `sensitive:"url"` removes credentials from the URL.
func (c Config) Dump() KVs {
	out := make(KVs, 0)
	dump(reflect.ValueOf(c), "", &out)
	return out
}

func dump(v reflect.Value, parent string, out *KVs) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fieldName, _, _ := strings.Cut(t.Field(i).Tag.Get("configKey"), ",")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		key := fieldName
		if parent != "" {
			key = parent + "." + fieldName
		}

		field := v.Field(i)
		switch {
		case field.Kind() == reflect.Struct:
			dump(field, key, out)
		case t.Field(i).Tag.Get("sensitive") == "true":
			value := ""
			if !field.IsZero() {
				value = maskedValue
			}
			*out = append(*out, KV{Key: key, Value: value})
		case t.Field(i).Tag.Get("sensitive") == "url":
			*out = append(*out, KV{Key: key, Value: url.SanitizeURLString(field.String())})
		default:
			*out = append(*out, KV{Key: key, Value: cast.ToString(field.Interface())})
		}
	}
}
