// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

// Sub extracts the half-open range [begin, end) from v. Negative
// indices count back from the end, -1 being the last byte. Indices
// are clipped into [0, Len], so math.MaxInt works as an "end of view"
// sentinel. The result is invalid when the resolved range is empty in
// the wrong order or lies entirely outside the view. A zero-length v
// is returned unchanged whatever the indices.
func (v View) Sub(begin, end int) View {
	if v.n == 0 {
		return v
	}

	if begin < 0 {
		begin += v.n
	}
	if end < 0 {
		end += v.n
	}

	if begin > end || begin >= v.n || end < 0 {
		return View{}
	}

	if begin < 0 {
		begin = 0
	}
	if end > v.n {
		end = v.n
	}

	return View{buf: v.buf, off: v.off + begin, n: end - begin}.check()
}
