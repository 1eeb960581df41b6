package ghashutil

import "github.com/joshuapare/hashkit/internal/buf"

const mm2M uint32 = 0x5bd1e995

func mm2Mix(h, k uint32) uint32 {
	k *= mm2M
	k ^= k >> 24
	k *= mm2M
	return h*mm2M ^ k
}

func mm2Finalize(h uint32) uint32 {
	h ^= h >> 13
	h *= mm2M
	h ^= h >> 15
	return h
}

// Murmur2 is the one-shot MurmurHash2 of data. It is quicker than
// Murmur2A for small keys.
func Murmur2(data []byte, seed uint32) uint32 {
	return murmur2(data, seed, false)
}

// murmur2 hashes data, followed by one NUL byte when nul is set.
func murmur2[S buf.Bytes](data S, seed uint32, nul bool) uint32 {
	n := len(data)
	total := n
	if nul {
		total++
	}

	h := seed ^ uint32(total)
	i := 0
	for ; i+4 <= n; i += 4 {
		h = mm2Mix(h, buf.U32LE(data[i:i+4]))
	}

	var tail [4]byte
	t := 0
	for ; i < n; i++ {
		tail[t] = data[i]
		t++
	}
	if nul {
		t++
	}
	if t == 4 {
		h = mm2Mix(h, buf.U32LE(tail[:]))
		t = 0
	}

	switch t {
	case 3:
		h ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(tail[0])
		h *= mm2M
	}
	return mm2Finalize(h)
}

// Murmur2A is the incremental MurmurHash2A. The zero value is a hasher
// seeded with 0.
type Murmur2A struct {
	hash  uint32
	tail  uint32
	count uint32
	size  uint32
}

// NewMurmur2A returns a hasher seeded with seed.
func NewMurmur2A(seed uint32) *Murmur2A {
	return &Murmur2A{hash: seed}
}

func (m *Murmur2A) mixTail(data []byte) []byte {
	for len(data) > 0 && (len(data) < 4 || m.count != 0) {
		m.tail |= uint32(data[0]) << (m.count * 8)
		m.count++
		data = data[1:]
		if m.count == 4 {
			m.hash = mm2Mix(m.hash, m.tail)
			m.tail = 0
			m.count = 0
		}
	}
	return data
}

// Add feeds data into the hash.
func (m *Murmur2A) Add(data []byte) {
	m.size += uint32(len(data))
	data = m.mixTail(data)
	for ; len(data) >= 4; data = data[4:] {
		m.hash = mm2Mix(m.hash, buf.U32LE(data))
	}
	m.mixTail(data)
}

// AddString feeds the bytes of s into the hash.
func (m *Murmur2A) AddString(s string) {
	m.Add([]byte(s))
}

// AddInt feeds the four little-endian bytes of v into the hash.
func (m *Murmur2A) AddInt(v int32) {
	var b [4]byte
	buf.PutU32LE(b[:], uint32(v))
	m.Add(b[:])
}

// Sum32 finishes the hash. The hasher must not be fed afterwards.
func (m *Murmur2A) Sum32() uint32 {
	h := mm2Mix(m.hash, m.tail)
	h = mm2Mix(h, m.size)
	return mm2Finalize(h)
}
