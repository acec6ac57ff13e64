package go_algorithm

// mat16 holds signed 8-bit values in int16 slots; the wider storage absorbs
// the multiply output before the byte-extraction step narrows it again.
type mat16 [matSize][matSize]int16

// mat8 is the byte-truncated form used when summing lane results.
type mat8 [matSize][matSize]int8

// MatList is the per-seed sequence of 256 matrices the evaluator multiplies
// through. It is immutable once built; a cached list is shared by every
// evaluation under the same seed.
type MatList struct {
	mats [matNum]mat16
}

// CreateMatList derives the matrix list for a 32-byte seed. Each scrypt round
// fills two matrices, one from the even pad slots and one from the odd.
func CreateMatList(seed []byte) *MatList {
	cache := calcSeedCache(seed)
	ml := new(MatList)
	for i := 0; i < epochLength; i++ {
		pad := cache[i*padWords : (i+1)*padWords]
		ml.mats[2*i].fillFromPad(pad, 0)
		ml.mats[2*i+1].fillFromPad(pad, 1)
	}
	return ml
}

// fillFromPad populates column col of the matrix from pad slots col*4+off and
// col*4+2+off, four signed bytes per 32-bit word, low byte first.
func (m *mat16) fillFromPad(pad []uint32, off int) {
	for col := 0; col < matSize; col++ {
		lo := pad[(col*4+off)*32 : (col*4+off)*32+32]
		hi := pad[(col*4+off+2)*32 : (col*4+off+2)*32+32]
		for j := 0; j < 64; j++ {
			var w uint32
			if j < 32 {
				w = lo[j]
			} else {
				w = hi[j-32]
			}
			m[4*j][col] = int16(int8(w))
			m[4*j+1][col] = int16(int8(w >> 8))
			m[4*j+2][col] = int16(int8(w >> 16))
			m[4*j+3][col] = int16(int8(w >> 24))
		}
	}
}

func (m *mat16) toIdentity() {
	for i := 0; i < matSize; i++ {
		for j := 0; j < matSize; j++ {
			m[i][j] = 0
		}
		m[i][i] = 1
	}
}

// mul sets m = a·b. The accumulator only matters modulo 2^16: the reduction
// forms acc + acc<<8 truncated to 16 bits and keeps the second byte,
// sign-extended. This matches the AVX2 epi16 kernel bit for bit.
func (m *mat16) mul(a, b *mat16) {
	var acc [matSize]int32
	for i := 0; i < matSize; i++ {
		for j := range acc {
			acc[j] = 0
		}
		for k := 0; k < matSize; k++ {
			aik := int32(a[i][k])
			if aik == 0 {
				continue
			}
			bk := &b[k]
			for j := 0; j < matSize; j++ {
				acc[j] += aik * int32(bk[j])
			}
		}
		for j := 0; j < matSize; j++ {
			t := uint16(acc[j]) + uint16(acc[j])<<8
			m[i][j] = int16(int8(t >> 8))
		}
	}
}

// toMat8 truncates every entry to its low byte.
func (m *mat16) toMat8(out *mat8) {
	for i := 0; i < matSize; i++ {
		for j := 0; j < matSize; j++ {
			out[i][j] = int8(m[i][j])
		}
	}
}

// add sets m = a + b with every sum truncated to its low byte.
func (m *mat8) add(a, b *mat8) {
	for i := 0; i < matSize; i++ {
		for j := 0; j < matSize; j++ {
			tmp := int(a[i][j]) + int(b[i][j])
			m[i][j] = int8(tmp & 0xFF)
		}
	}
}
