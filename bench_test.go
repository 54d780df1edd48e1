package blake2b

import (
	"fmt"
	"testing"

	"github.com/libblake2/blake2b/ref"
)

func BenchmarkCompress(b *testing.B) {
	var h [8]uint64
	var m [16]uint64

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h = compress(&h, &m, [2]uint64{BlockSize, 0}, [2]uint64{})
	}
}

func BenchmarkCompressRef(b *testing.B) {
	var h [8]uint64
	var m [16]uint64

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ref.Compress(&h, &m, [2]uint64{BlockSize, 0}, [2]uint64{}, &h)
	}
}

func BenchmarkBasic(b *testing.B) {
	sizes := []int64{0, 16, 32, 64, 128, 256, 512, 1024, 4 * 1024, 8 * 1024, 64 * 1024}

	for _, size := range sizes {
		size := size
		input := make([]byte, size)
		h, _ := NewSized(64)

		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(size)

			for i := 0; i < b.N; i++ {
				_ = h.Hash(input)
			}
		})
	}
}

func BenchmarkSources(b *testing.B) {
	const size = 8 * 1024
	input := make([]byte, size)
	str := string(input)
	words := make([]uint64, size/8)
	h, _ := NewSized(64)

	b.Run("bytes", func(b *testing.B) {
		b.SetBytes(size)
		for i := 0; i < b.N; i++ {
			_ = h.Hash(input)
		}
	})

	b.Run("string", func(b *testing.B) {
		b.SetBytes(size)
		for i := 0; i < b.N; i++ {
			_ = h.HashString(str)
		}
	})

	b.Run("words", func(b *testing.B) {
		b.SetBytes(size)
		for i := 0; i < b.N; i++ {
			_ = h.HashWords(words)
		}
	})
}
