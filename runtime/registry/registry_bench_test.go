package registry

import (
	"testing"
)

func BenchmarkLookupCached(b *testing.B) {
	r := NewIEEE4882()
	if _, err := r.Lookup("syst:err"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Lookup("syst:err"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookupColdScan(b *testing.B) {
	r := NewIEEE4882()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		// Fresh registry so every lookup pays the pattern scan.
		r = NewIEEE4882()
		b.StartTimer()
		if _, err := r.Lookup("system:error"); err != nil {
			b.Fatal(err)
		}
	}
}
