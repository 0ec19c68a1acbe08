package xpgx

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
)

// scanRow scans the current row into a struct pointer, matching columns to
// fields by db tag. Columns without a matching field are discarded.
func scanRow(rows pgx.Rows, dest interface{}) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: dest must be a struct pointer, got %T", dest)
	}

	fields := map[string]interface{}{}
	collectFields(v.Elem(), fields)

	targets := make([]interface{}, 0, len(rows.FieldDescriptions()))
	for _, fd := range rows.FieldDescriptions() {
		if ptr, ok := fields[fd.Name]; ok {
			targets = append(targets, ptr)
		} else {
			var sink interface{}
			targets = append(targets, &sink)
		}
	}

	return rows.Scan(targets...)
}

// scanRows scans all rows into *[]T or *[]*T.
func scanRows(rows pgx.Rows, dest interface{}) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("xpgx: dest must be a slice pointer, got %T", dest)
	}

	slice := v.Elem()
	elemType := slice.Type().Elem()
	isPtr := elemType.Kind() == reflect.Ptr
	if isPtr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("xpgx: slice element must be a struct, got %s", elemType)
	}

	for rows.Next() {
		elem := reflect.New(elemType)
		if err := scanRow(rows, elem.Interface()); err != nil {
			return err
		}
		if isPtr {
			slice = reflect.Append(slice, elem)
		} else {
			slice = reflect.Append(slice, elem.Elem())
		}
	}
	v.Elem().Set(slice)

	return rows.Err()
}

func collectFields(v reflect.Value, out map[string]interface{}) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(v.Field(i), out)
			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		out[tag] = v.Field(i).Addr().Interface()
	}
}
