package benchmark

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/yndnr/pagetoken-go/pkg/crypto/envelope"
	"github.com/yndnr/pagetoken-go/pkg/pagetoken"
)

// EntryCounts defines the payload sizes for benchmarking.
var EntryCounts = []int{1, 2, 4, 8, 16}

// benchKey returns a fixed key sized for alg.
func benchKey(alg envelope.Algorithm) []byte {
	key := make([]byte, alg.KeySize())
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

// newPayload builds a payload cycling through every value kind.
func newPayload(count int) pagetoken.Payload {
	base := time.Date(2024, 1, 15, 0, 0, 0, 123456789, time.UTC)
	entries := make([]pagetoken.Entry, count)
	for i := range entries {
		key := fmt.Sprintf("field_%d", i)
		switch i % 5 {
		case 0:
			entries[i] = pagetoken.Desc(key, pagetoken.Time(base.Add(time.Duration(i)*time.Hour)))
		case 1:
			entries[i] = pagetoken.Asc(key, pagetoken.Int(int64(i)*1_000_003))
		case 2:
			entries[i] = pagetoken.Asc(key, pagetoken.String(fmt.Sprintf("user-%04d@example.com", i)))
		case 3:
			entries[i] = pagetoken.Desc(key, pagetoken.Float(float64(i)+0.25))
		default:
			entries[i] = pagetoken.Asc(key, pagetoken.Bool(i%2 == 0))
		}
	}
	return pagetoken.NewPayload(entries...)
}

// newManager creates a manager, encrypted unless alg is empty.
func newManager(b *testing.B, alg envelope.Algorithm) *pagetoken.Manager {
	b.Helper()
	cfg := pagetoken.Config{}
	if alg != "" {
		cfg = pagetoken.Config{CipherKey: benchKey(alg), CipherAlgorithm: alg}
	}
	m, err := pagetoken.New(cfg)
	if err != nil {
		b.Fatalf("pagetoken.New failed: %v", err)
	}
	return m
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithEntryCounts runs a benchmark function with various payload sizes.
func runWithEntryCounts(b *testing.B, counts []int, benchFn func(b *testing.B, count int)) {
	for _, count := range counts {
		b.Run(fmt.Sprintf("entries_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}
