// Copyright © 2025 tjj
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/china-tjj/adapt"
)

var targetTypes = map[string]reflect.Type{
	"string":   reflect.TypeOf(""),
	"bool":     reflect.TypeOf(false),
	"int8":     reflect.TypeOf(int8(0)),
	"int16":    reflect.TypeOf(int16(0)),
	"int32":    reflect.TypeOf(int32(0)),
	"int64":    reflect.TypeOf(int64(0)),
	"int":      reflect.TypeOf(0),
	"uint8":    reflect.TypeOf(uint8(0)),
	"uint16":   reflect.TypeOf(uint16(0)),
	"uint32":   reflect.TypeOf(uint32(0)),
	"uint64":   reflect.TypeOf(uint64(0)),
	"uint":     reflect.TypeOf(uint(0)),
	"float32":  reflect.TypeOf(float32(0)),
	"float64":  reflect.TypeOf(float64(0)),
	"char":     reflect.TypeOf(adapt.Char(0)),
	"date":     reflect.TypeOf(time.Time{}),
	"duration": reflect.TypeOf(time.Duration(0)),
	"uuid":     reflect.TypeOf(uuid.UUID{}),
}

func targetNames() []string {
	names := make([]string, 0, len(targetTypes))
	for name := range targetTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func targetType(name string) (reflect.Type, error) {
	typ, ok := targetTypes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown type %q (one of: %s)", name, strings.Join(targetNames(), ", "))
	}
	return typ, nil
}
