/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package segmenttree

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the element type stored in a tree.
type Number interface {
	constraints.Integer | constraints.Float
}

// PositiveInfinity and NegativeInfinity are the extreme values of T,
// resolved through reflect so that named numeric types work too.
func PositiveInfinity[T Number]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(int64(^uint64(0) >> (65 - rv.Type().Bits())))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(^uint64(0) >> (64 - rv.Type().Bits()))
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(1))
	}
	return v
}

func NegativeInfinity[T Number]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(-int64(^uint64(0)>>(65-rv.Type().Bits())) - 1)
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(-1))
	}
	// unsigned types stay at 0
	return v
}
