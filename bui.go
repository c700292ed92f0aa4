package sqlchain

import (
	"strconv"
	"unsafe"
)

/*
Short for "builder". Tiny text buffer used by every renderer in this package.
Unlike the `Builder` steps, it has no notion of statements: it only appends
text. The zero value is ready to use.
*/
type bui struct{ Text []byte }

// Makes a `bui` with the specified text capacity.
func makeBui(textCap int) bui { return bui{make([]byte, 0, textCap)} }

// Returns inner text as a string, performing a free cast.
func (self bui) String() string { return bytesToMutableString(self.Text) }

// Increases the capacity (not length) of the text buffer by the specified
// amount. If there's already enough capacity, avoids allocation.
func (self *bui) Grow(size int) { self.Text = growBytes(self.Text, size) }

// Appends the string as-is.
func (self *bui) Str(val string) { self.Text = append(self.Text, val...) }

// Appends a single space.
func (self *bui) Space() { self.Text = append(self.Text, ' ') }

// Appends the decimal representation of the integer.
func (self *bui) Int(val int) { self.Text = strconv.AppendInt(self.Text, int64(val), 10) }

/*
Appends the value enclosed in single quotes. No escaping is performed: the
caller is responsible for sanitizing the value.
*/
func (self *bui) Quote(val string) {
	self.Text = append(self.Text, quoteSingle)
	self.Text = append(self.Text, val...)
	self.Text = append(self.Text, quoteSingle)
}

// Appends the values delimited by ", ". Empty input appends nothing.
func (self *bui) List(vals []string) {
	for ind, val := range vals {
		if ind > 0 {
			self.Str(`, `)
		}
		self.Str(val)
	}
}

// Same as `(*bui).List` but quotes each value.
func (self *bui) QuoteList(vals []string) {
	for ind, val := range vals {
		if ind > 0 {
			self.Str(`, `)
		}
		self.Quote(val)
	}
}

// Appends `field op 'value'`.
func (self *bui) Cond(field, op, value string) {
	self.Str(field)
	self.Space()
	self.Str(op)
	self.Space()
	self.Quote(value)
}

const quoteSingle = '\''

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed from
the standard library. Reasonably safe. Should not be used when the underlying
byte array is volatile.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func growBytes(prev []byte, size int) []byte {
	len, cap := len(prev), cap(prev)
	if cap-len >= size {
		return prev
	}

	next := make([]byte, len, 2*cap+size)
	copy(next, prev)
	return next
}
