// Package strview slices read-only byte spans without allocating.
//
// A View aliases memory it does not own. When that memory belongs to an
// arena, the View is valid only until the arena is reset or freed. Chopping
// methods move the receiver's window; they never write to the bytes.
package strview

import (
	"bytes"
	"iter"
	"unsafe"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/arenakit/internal/buf"
)

// View is a read-only window over a byte span. The zero View is empty.
type View struct {
	data []byte
}

// FromBytes returns a View over b.
func FromBytes(b []byte) View {
	return View{data: b}
}

// FromString returns a View over the bytes of s without copying.
func FromString(s string) View {
	return View{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.data) }

// Empty reports whether the view has no bytes.
func (v View) Empty() bool { return len(v.data) == 0 }

// Bytes returns the viewed bytes. Callers must not modify them; the
// capacity is clipped so appends never write past the view.
func (v View) Bytes() []byte { return v.data[:len(v.data):len(v.data)] }

// String copies the view into a new string.
func (v View) String() string { return string(v.data) }

// Sub returns the n bytes starting at off, or false when they do not fit.
func (v View) Sub(off, n int) (View, bool) {
	b, ok := buf.Slice(v.data, off, n)
	if !ok {
		return View{}, false
	}
	return View{data: b}, true
}

// IsSpace matches the ASCII whitespace set of C's isspace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsDigit matches ASCII decimal digits.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// TrimLeft drops leading whitespace.
func (v View) TrimLeft() View {
	i := 0
	for i < len(v.data) && IsSpace(v.data[i]) {
		i++
	}
	return View{data: v.data[i:]}
}

// TrimRight drops trailing whitespace.
func (v View) TrimRight() View {
	n := len(v.data)
	for n > 0 && IsSpace(v.data[n-1]) {
		n--
	}
	return View{data: v.data[:n]}
}

// Trim drops leading and trailing whitespace.
func (v View) Trim() View { return v.TrimLeft().TrimRight() }

// TakeLeftWhile returns the longest prefix whose bytes all satisfy pred.
func (v View) TakeLeftWhile(pred func(byte) bool) View {
	i := 0
	for i < len(v.data) && pred(v.data[i]) {
		i++
	}
	return View{data: v.data[:i]}
}

// IndexOf returns the position of the first c in the view.
func (v View) IndexOf(c byte) (int, bool) {
	i := bytes.IndexByte(v.data, c)
	return i, i >= 0
}

// Equal reports whether both views hold the same bytes.
func (v View) Equal(o View) bool { return bytes.Equal(v.data, o.data) }

// EqualFold reports whether both views are equal under ASCII case folding.
// Bytes outside A-Z are compared exactly.
func (v View) EqualFold(o View) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if lowerASCII(v.data[i]) != lowerASCII(o.data[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// HasPrefix reports whether the view starts with prefix.
func (v View) HasPrefix(prefix View) bool { return bytes.HasPrefix(v.data, prefix.data) }

// HasSuffix reports whether the view ends with suffix.
func (v View) HasSuffix(suffix View) bool { return bytes.HasSuffix(v.data, suffix.data) }

// ParseU64 reads the leading decimal digits as an unsigned integer and ignores
// the rest. No digits yields 0. Values past the uint64 range wrap.
func (v View) ParseU64() uint64 {
	var n uint64
	for _, c := range v.data {
		if !IsDigit(c) {
			break
		}
		n = n*10 + uint64(c-'0')
	}
	return n
}

// Decode converts the view from a legacy encoding (for example
// charmap.Windows1252) into a UTF-8 string.
func (v View) Decode(enc encoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(v.data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ChopLeft removes and returns the first n bytes, or the whole view when it
// is shorter than n.
func (v *View) ChopLeft(n int) View {
	n = clamp(n, len(v.data))
	out := View{data: v.data[:n]}
	v.data = v.data[n:]
	return out
}

// ChopRight removes and returns the last n bytes, or the whole view when it
// is shorter than n.
func (v *View) ChopRight(n int) View {
	n = clamp(n, len(v.data))
	cut := len(v.data) - n
	out := View{data: v.data[cut:]}
	v.data = v.data[:cut]
	return out
}

// ChopByDelim removes and returns everything before the first delim, and the
// delim itself. Without a delim the whole view is returned and v becomes
// empty.
func (v *View) ChopByDelim(delim byte) View {
	i := bytes.IndexByte(v.data, delim)
	if i < 0 {
		out := *v
		v.data = v.data[len(v.data):]
		return out
	}
	out := View{data: v.data[:i]}
	v.data = v.data[i+1:]
	return out
}

// TryChopByDelim is ChopByDelim that leaves v untouched and reports false
// when delim is absent.
func (v *View) TryChopByDelim(delim byte) (View, bool) {
	i := bytes.IndexByte(v.data, delim)
	if i < 0 {
		return View{}, false
	}
	out := View{data: v.data[:i]}
	v.data = v.data[i+1:]
	return out, true
}

// ChopByView removes and returns everything before the first occurrence of
// delim, and the occurrence itself. A match in the last possible position is
// found; the delimiter is never part of the result. Without a match, or with
// an empty delim, the whole view is returned and v becomes empty.
func (v *View) ChopByView(delim View) View {
	i := -1
	if len(delim.data) > 0 {
		i = bytes.Index(v.data, delim.data)
	}
	if i < 0 {
		out := *v
		v.data = v.data[len(v.data):]
		return out
	}
	out := View{data: v.data[:i]}
	v.data = v.data[i+len(delim.data):]
	return out
}

// ChopLeftWhile removes and returns the longest prefix satisfying pred.
func (v *View) ChopLeftWhile(pred func(byte) bool) View {
	return v.ChopLeft(v.TakeLeftWhile(pred).Len())
}

// ChopU64 removes the leading decimal digits and returns their value.
func (v *View) ChopU64() uint64 {
	return v.ChopLeftWhile(IsDigit).ParseU64()
}

// Split yields the pieces of v between delim bytes. A trailing delim does not
// produce a final empty piece.
func (v View) Split(delim byte) iter.Seq[View] {
	return func(yield func(View) bool) {
		rest := v
		for !rest.Empty() {
			if !yield(rest.ChopByDelim(delim)) {
				return
			}
		}
	}
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	return min(n, limit)
}
