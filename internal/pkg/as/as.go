// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package as has checked integer conversions that panic on overflow
// instead of silently truncating.
package as

import (
	"fmt"
	"math"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func Uint32[T integer](v T) uint32 {
	if v < 0 || uint64(v) > math.MaxUint32 {
		panic(fmt.Sprintf("value %d out of uint32 range", v))
	}

	return uint32(v)
}

func Uint64[T integer](v T) uint64 {
	if v < 0 {
		panic(fmt.Sprintf("value %d out of uint64 range", v))
	}

	return uint64(v)
}

func Int[T integer](v T) int {
	if v > 0 && uint64(v) > math.MaxInt {
		panic(fmt.Sprintf("value %d out of int range", v))
	}

	return int(v)
}
