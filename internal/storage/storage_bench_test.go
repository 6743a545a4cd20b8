package storage

import (
	"path/filepath"
	"testing"
)

func seedHistory(b *testing.B, h *History, n int) {
	b.Helper()
	for i := 0; i < n; i++ {
		if err := h.Append(report(int64(i), int64(40+i%7)), 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppend_EmptyHistory(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h, err := New(filepath.Join(b.TempDir(), "history.json"))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		if err := h.Append(report(1, 42), 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAppend_GrownHistory(b *testing.B) {
	b.ReportAllocs()
	h, err := New(filepath.Join(b.TempDir(), "history.json"))
	if err != nil {
		b.Fatal(err)
	}
	seedHistory(b, h, 200)
	b.ResetTimer()

	date := int64(1000)
	for i := 0; i < b.N; i++ {
		date++
		if err := h.Append(report(date, 42), 0); err != nil {
			b.Fatal(err)
		}
	}
}
