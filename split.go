// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package strv

// SplitFirst scans v for the first byte belonging to the delimiter
// set, returns everything before it and shrinks v to everything after
// it, discarding the delimiter byte. When no delimiter is found, the
// delimiter set is invalid or v itself is invalid, the whole of v is
// returned and v becomes invalid. A nil receiver returns the invalid
// view.
func (v *View) SplitFirst(delims View) View {
	return v.splitFirst(delims, false)
}

// SplitFirstFold is SplitFirst with ASCII case-insensitive delimiter
// membership.
func (v *View) SplitFirstFold(delims View) View {
	return v.splitFirst(delims, true)
}

// SplitLast is SplitFirst scanning backwards: the returned view is
// everything after the last delimiter byte and v keeps everything
// before it.
func (v *View) SplitLast(delims View) View {
	return v.splitLast(delims, false)
}

// SplitLastFold is SplitLast with ASCII case-insensitive delimiter
// membership.
func (v *View) SplitLastFold(delims View) View {
	return v.splitLast(delims, true)
}

func (v *View) splitFirst(delims View, fold bool) View {
	if v == nil {
		return View{}
	}

	i := -1
	if v.IsValid() && delims.IsValid() {
		i = indexAny(v.window(), delims, fold)
	}

	if i < 0 {
		out := *v
		*v = View{}
		return out
	}

	out := View{buf: v.buf, off: v.off, n: i}
	// the empty remainder of a trailing delimiter stays anchored on the
	// delimiter itself
	rest := View{buf: v.buf, off: v.off + i, n: v.n - i - 1}
	if rest.n > 0 {
		rest.off++
	}
	*v = rest.check()

	return out.check()
}

func (v *View) splitLast(delims View, fold bool) View {
	if v == nil {
		return View{}
	}

	i := -1
	if v.IsValid() && delims.IsValid() {
		i = lastIndexAny(v.window(), delims, fold)
	}

	if i < 0 {
		out := *v
		*v = View{}
		return out
	}

	out := View{buf: v.buf, off: v.off + i, n: v.n - i - 1}
	if out.n > 0 {
		out.off++
	}
	*v = View{buf: v.buf, off: v.off, n: i}.check()

	return out.check()
}

// SplitAt consumes index bytes from the front of v, or from the back
// with a negative index counting from the end, and returns the
// consumed side. The index is clipped into [0, Len]; consuming more
// than is available takes everything and leaves v valid-empty. A nil
// receiver returns the invalid view.
func (v *View) SplitAt(index int) View {
	if v == nil {
		return View{}
	}

	neg := index < 0
	if neg {
		index += v.n
	}
	if index < 0 {
		index = 0
	}
	if index > v.n {
		index = v.n
	}

	front := View{buf: v.buf, off: v.off, n: index}
	back := View{buf: v.buf, off: v.off + index, n: v.n - index}

	if neg {
		*v = front.check()
		return back.check()
	}

	*v = back.check()

	return front.check()
}

// PopByte consumes and returns the first byte of v, or 0 when v is
// empty, invalid or a nil receiver.
func (v *View) PopByte() byte {
	if v == nil || v.n == 0 {
		return 0
	}

	return v.SplitAt(1).At(0)
}

// SplitBefore removes and returns everything before pos, a view known
// to reference a location inside v. Only pos's start is considered:
// at v's upper bound the whole of v is consumed leaving it valid
// empty, at v's start a valid empty view is returned and v is
// untouched, and outside v's bounds the result is invalid with v
// untouched. pos must derive from the same backing buffer as v; that
// is a precondition, not something checked here.
func (v *View) SplitBefore(pos View) View {
	if v == nil || !v.IsValid() || !pos.IsValid() {
		return View{}
	}

	p := pos.off - v.off
	if p < 0 || p > v.n {
		return View{}
	}

	return v.SplitAt(p)
}

// SplitAfter removes and returns everything at and after the end of
// pos. Only pos's end is considered: at v's end or at v's start a
// valid empty view is returned and v is untouched, outside v's bounds
// the result is invalid with v untouched. The same backing-buffer
// precondition as SplitBefore applies.
func (v *View) SplitAfter(pos View) View {
	if v == nil || !v.IsValid() || !pos.IsValid() {
		return View{}
	}

	p := pos.off + pos.n - v.off
	if p < 0 || p > v.n {
		return View{}
	}

	if p == 0 {
		// a split point at the very start takes nothing
		return View{buf: v.buf, off: v.off, n: 0}
	}

	out := View{buf: v.buf, off: v.off + p, n: v.n - p}
	*v = View{buf: v.buf, off: v.off, n: p}.check()

	return out.check()
}
