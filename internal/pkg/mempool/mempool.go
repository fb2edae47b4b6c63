// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package mempool

import (
	"github.com/colega/zeropool"
	"github.com/docker/go-units"
	"github.com/valyala/bytebufferpool"
)

var pool = zeropool.New(func() []byte {
	return make([]byte, 256*units.KiB)
})

// GetSlice returns a full-length scratch slice of at least 256 KiB.
func GetSlice() []byte {
	s := pool.Get()
	return s[:cap(s)]
}

func PutSlice(slice []byte) {
	pool.Put(slice[:0])
}

func Get() *bytebufferpool.ByteBuffer {
	return bytebufferpool.Get()
}

func Put(b *bytebufferpool.ByteBuffer) {
	bytebufferpool.Put(b)
}
