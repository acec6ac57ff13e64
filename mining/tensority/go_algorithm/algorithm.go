package go_algorithm

import (
	"encoding/binary"
	"sync"

	"github.com/bytom/tensority/crypto/sha3pool"
	"github.com/bytom/tensority/protocol/bc"
)

// LegacyAlgorithm calculates the tensority digest without reusing a cached
// matrix list. Callers that evaluate many headers per seed should go through
// the tensority.Cache instead.
func LegacyAlgorithm(bh, seed *bc.Hash) *bc.Hash {
	matList := CreateMatList(seed.Bytes())
	return Hash(bh, matList)
}

// Hash evaluates one block header hash against a derived matrix list.
// The matrix list is only read.
func Hash(bh *bc.Hash, matList *MatList) *bc.Hash {
	data := mulMatrix(bh.Bytes(), matList)
	return hashMatrix(data)
}

// mulMatrix runs the four header lanes and sums their byte-truncated results.
// Lanes are independent; the WaitGroup is the join before the sum.
func mulMatrix(headerhash []byte, matList *MatList) *mat8 {
	var resArr [4]mat8
	var wg sync.WaitGroup
	wg.Add(4)
	for k := 0; k < 4; k++ {
		go func(k int) {
			defer wg.Done()
			laneHash(headerhash[k*8:(k+1)*8], matList, &resArr[k])
		}(k)
	}
	wg.Wait()

	res := new(mat8)
	res.add(&resArr[0], &resArr[1])
	res.add(res, &resArr[2])
	res.add(res, &resArr[3])
	return res
}

// laneHash folds 64 matrix multiplications driven by the SHA3 digest of one
// 8-byte header chunk, starting from the identity matrix.
func laneHash(chunk []byte, matList *MatList, out *mat8) {
	var sequence [32]byte
	sha3pool.Sum256(sequence[:], chunk)

	ma := new(mat16)
	mc := new(mat16)
	ma.toIdentity()
	for j := 0; j < 2; j++ {
		for i := 0; i < 32; i += 2 {
			mc.mul(ma, &matList.mats[sequence[i]])
			ma.mul(mc, &matList.mats[sequence[i+1]])
		}
	}
	ma.toMat8(out)
}

// hashMatrix packs the summed matrix into 256x64 words, folds the rows with
// FNV and hashes the surviving row.
func hashMatrix(res *mat8) *bc.Hash {
	var mat32 [matSize][matSize / 4]uint32
	for i := 0; i < matSize; i++ {
		for j := 0; j < matSize/4; j++ {
			mat32[i][j] = ((uint32(uint8(res[i][j+192]))) << 24) |
				((uint32(uint8(res[i][j+128]))) << 16) |
				((uint32(uint8(res[i][j+64]))) << 8) |
				((uint32(uint8(res[i][j]))) << 0)
		}
	}

	for k := matSize; k > 1; k = k / 2 {
		for j := 0; j < k/2; j++ {
			for i := 0; i < matSize/4; i++ {
				mat32[j][i] = fnv(mat32[j][i], mat32[j+k/2][i])
			}
		}
	}

	dataBytes := make([]byte, matSize)
	for i := 0; i < matSize/4; i++ {
		binary.LittleEndian.PutUint32(dataBytes[i*4:], mat32[0][i])
	}

	var h [32]byte
	sha3pool.Sum256(h[:], dataBytes)
	bcHash := bc.NewHash(h)
	return &bcHash
}

func fnv(a, b uint32) uint32 {
	return a*0x01000193 ^ b
}
