// Copyright 2025 The Jettison Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jettison

import (
	"math"
	"reflect"
)

// Value coercion for encoding. Values arrive as map[string]any, so the
// concrete Go type is whatever the caller put in: coercion accepts every
// numeric kind for numeric fields and normalizes it to the codec's
// canonical form. A nil value coerces to the zero value, which is how
// missing map keys encode. Type switches cover the common concrete types;
// reflection handles named types with the same underlying kind.

const (
	maxInt64Float  = float64(1 << 63)  // 2^63, first float64 above MaxInt64
	minInt64Float  = -float64(1 << 63) // exactly MinInt64
	maxUint64Float = float64(1 << 64)  // 2^64, first float64 above MaxUint64
)

// toBool reports value as a bool. Only booleans qualify; numbers do not
// carry truthiness here.
func toBool(value any) (bool, bool) {
	switch b := value.(type) {
	case nil:
		return false, true
	case bool:
		return b, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	return false, false
}

// toInt64 reports value as an int64, saturating at the int64 range.
// Floats truncate toward zero; NaN coerces to 0.
func toInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case nil:
		return 0, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uint64ToInt64(uint64(n)), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uint64ToInt64(n), true
	case float32:
		return floatToInt64(float64(n)), true
	case float64:
		return floatToInt64(n), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uint64ToInt64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return floatToInt64(rv.Float()), true
	}
	return 0, false
}

// toUint64 reports value as a uint64. Negative inputs clamp to 0, in line
// with the clamping the fixed-width integer codecs apply.
func toUint64(value any) (uint64, bool) {
	switch n := value.(type) {
	case nil:
		return 0, true
	case int:
		return int64ToUint64(int64(n)), true
	case int8:
		return int64ToUint64(int64(n)), true
	case int16:
		return int64ToUint64(int64(n)), true
	case int32:
		return int64ToUint64(int64(n)), true
	case int64:
		return int64ToUint64(n), true
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case float32:
		return floatToUint64(float64(n)), true
	case float64:
		return floatToUint64(n), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int64ToUint64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		return floatToUint64(rv.Float()), true
	}
	return 0, false
}

// toFloat64 reports value as a float64.
func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case nil:
		return 0, true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	}
	return 0, false
}

// toString reports value as a string. Byte slices pass through as-is.
func toString(value any) (string, bool) {
	switch s := value.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// sliceInfo reports the length of any slice or array value together with
// an element accessor. A nil value counts as an empty sequence.
func sliceInfo(value any) (int, func(int) any, bool) {
	switch s := value.(type) {
	case nil:
		return 0, nil, true
	case []any:
		return len(s), func(i int) any { return s[i] }, true
	case []bool:
		return len(s), func(i int) any { return s[i] }, true
	case []int:
		return len(s), func(i int) any { return s[i] }, true
	case []int64:
		return len(s), func(i int) any { return s[i] }, true
	case []uint64:
		return len(s), func(i int) any { return s[i] }, true
	case []float64:
		return len(s), func(i int) any { return s[i] }, true
	}
	rv := reflect.ValueOf(value)
	if k := rv.Kind(); k == reflect.Slice || k == reflect.Array {
		return rv.Len(), func(i int) any { return rv.Index(i).Interface() }, true
	}
	return 0, nil, false
}

func uint64ToInt64(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

func int64ToUint64(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}

func floatToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= maxInt64Float:
		return math.MaxInt64
	case f <= minInt64Float:
		return math.MinInt64
	default:
		return int64(f)
	}
}

func floatToUint64(f float64) uint64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= maxUint64Float:
		return math.MaxUint64
	default:
		return uint64(f)
	}
}
