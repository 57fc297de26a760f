// Package digest unifies the hash engines behind one closed algorithm
// enumeration and a byte-buffer-in, digest-out calling convention.
package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/guilt/refsum/pkg/md5"
	"github.com/guilt/refsum/pkg/sha1"
	"github.com/guilt/refsum/pkg/sha2"
	"github.com/guilt/refsum/pkg/sha3"
)

// Algorithm names one of the supported hash algorithms. The set is closed;
// dispatch over it is exhaustive.
type Algorithm int

// Constants for hash algorithms.
const (
	MD5 Algorithm = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	SHAKE128
	SHAKE256
)

// Algorithms lists every supported algorithm in display order.
var Algorithms = []Algorithm{
	MD5, SHA1, SHA224, SHA256, SHA384, SHA512,
	SHA3_224, SHA3_256, SHA3_384, SHA3_512, SHAKE128, SHAKE256,
}

var names = [...]string{
	MD5:      "md5",
	SHA1:     "sha1",
	SHA224:   "sha224",
	SHA256:   "sha256",
	SHA384:   "sha384",
	SHA512:   "sha512",
	SHA3_224: "sha3-224",
	SHA3_256: "sha3-256",
	SHA3_384: "sha3-384",
	SHA3_512: "sha3-512",
	SHAKE128: "shake128",
	SHAKE256: "shake256",
}

// String returns the canonical display name, e.g. "sha3-256".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(names) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return names[a]
}

var sizes = [...]int{
	MD5:      md5.Size,
	SHA1:     sha1.Size,
	SHA224:   sha2.Size224,
	SHA256:   sha2.Size256,
	SHA384:   sha2.Size384,
	SHA512:   sha2.Size512,
	SHA3_224: sha3.Size224,
	SHA3_256: sha3.Size256,
	SHA3_384: sha3.Size384,
	SHA3_512: sha3.Size512,
	SHAKE128: 32,
	SHAKE256: 32,
}

// Size returns the digest size in bytes. For the extendable SHAKE algorithms
// this is the default used when the caller does not pick a length.
func (a Algorithm) Size() int {
	if a < 0 || int(a) >= len(sizes) {
		panic(fmt.Sprintf("digest: unknown algorithm %d", int(a)))
	}
	return sizes[a]
}

// Extendable reports whether the algorithm produces caller-chosen-length
// output.
func (a Algorithm) Extendable() bool {
	return a == SHAKE128 || a == SHAKE256
}

// Parse maps a display name to its Algorithm.
func Parse(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm: %s", name)
}

// Sum returns the digest of data at the algorithm's default output size.
func Sum(a Algorithm, data []byte) []byte {
	switch a {
	case MD5:
		d := md5.Sum(data)
		return d[:]
	case SHA1:
		d := sha1.Sum(data)
		return d[:]
	case SHA224:
		d := sha2.Sum224(data)
		return d[:]
	case SHA256:
		d := sha2.Sum256(data)
		return d[:]
	case SHA384:
		d := sha2.Sum384(data)
		return d[:]
	case SHA512:
		d := sha2.Sum512(data)
		return d[:]
	case SHA3_224:
		d := sha3.Sum224(data)
		return d[:]
	case SHA3_256:
		d := sha3.Sum256(data)
		return d[:]
	case SHA3_384:
		d := sha3.Sum384(data)
		return d[:]
	case SHA3_512:
		d := sha3.Sum512(data)
		return d[:]
	case SHAKE128:
		return sha3.SumShake128(data, a.Size())
	case SHAKE256:
		return sha3.SumShake256(data, a.Size())
	}
	panic(fmt.Sprintf("digest: unknown algorithm %d", int(a)))
}

// SumLength returns length bytes of extendable output. Only the SHAKE
// algorithms are extendable; asking any other algorithm for a chosen length
// is a caller bug.
func SumLength(a Algorithm, data []byte, length int) []byte {
	switch a {
	case SHAKE128:
		return sha3.SumShake128(data, length)
	case SHAKE256:
		return sha3.SumShake256(data, length)
	}
	panic(fmt.Sprintf("digest: %s is not extendable", a))
}

// HexSum returns the digest of data as a lowercase hex string.
func HexSum(a Algorithm, data []byte) string {
	return hex.EncodeToString(Sum(a, data))
}

// HexSumLength returns length bytes of extendable output as a lowercase hex
// string.
func HexSumLength(a Algorithm, data []byte, length int) string {
	return hex.EncodeToString(SumLength(a, data, length))
}
