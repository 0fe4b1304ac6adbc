package codec

// BitState describes how full a bit buffer is.
type BitState uint8

const (
	BitsEmpty   BitState = iota // no bits buffered
	BitsPartial                 // last octet partly filled (outgoing) or partly consumed (incoming)
	BitsFull                    // only whole octets buffered (outgoing) or a fresh octet loaded (incoming)
)

func (s BitState) String() string {
	switch s {
	case BitsEmpty:
		return "empty"
	case BitsPartial:
		return "partial"
	case BitsFull:
		return "full"
	default:
		return "unknown"
	}
}

// OutgoingBits accumulates bit fields and packs them LSB first, eight per
// octet. Bit 0 of each octet holds the earliest bit of its group.
type OutgoingBits struct {
	packed []byte
	n      int
}

// Push appends one bit.
func (b *OutgoingBits) Push(v bool) {
	i := b.n % 8
	if i == 0 {
		b.packed = append(b.packed, 0)
	}
	if v {
		b.packed[len(b.packed)-1] |= 1 << i
	}
	b.n++
}

// Len returns the number of buffered bits.
func (b *OutgoingBits) Len() int {
	return b.n
}

func (b *OutgoingBits) State() BitState {
	switch {
	case b.n == 0:
		return BitsEmpty
	case b.n%8 == 0:
		return BitsFull
	default:
		return BitsPartial
	}
}

// Take returns the packed octets, unused high bits zero, and empties the
// buffer. The slice is only valid until the next Push.
func (b *OutgoingBits) Take() []byte {
	p := b.packed
	b.packed = b.packed[:0]
	b.n = 0
	return p
}

// IncomingBits holds the unread bits of the last octet loaded by a bit decode.
type IncomingBits struct {
	octet byte
	left  uint8
}

// Load replaces the buffer with the eight bits of octet.
func (b *IncomingBits) Load(octet byte) {
	b.octet = octet
	b.left = 8
}

// Pop returns the next bit. ok is false when the buffer is empty.
func (b *IncomingBits) Pop() (v bool, ok bool) {
	if b.left == 0 {
		return false, false
	}
	v = b.octet&1 != 0
	b.octet >>= 1
	b.left--
	return v, true
}

// Reset discards any unread bits.
func (b *IncomingBits) Reset() {
	b.octet = 0
	b.left = 0
}

// Len returns the number of unread bits.
func (b *IncomingBits) Len() int {
	return int(b.left)
}

func (b *IncomingBits) State() BitState {
	switch b.left {
	case 0:
		return BitsEmpty
	case 8:
		return BitsFull
	default:
		return BitsPartial
	}
}
