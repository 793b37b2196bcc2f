package fk_test

import (
	"testing"

	"github.com/katalvlaran/armkin/arm"
	"github.com/katalvlaran/armkin/fk"
)

// BenchmarkSolve measures one full forward solve on the reference arm.
func BenchmarkSolve(b *testing.B) {
	s := fk.New(arm.Default())
	th := fk.Thetas{20, 80, -60, 10}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(th); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTransform measures a single DH row transform.
func BenchmarkTransform(b *testing.B) {
	r := fk.Row{Theta: 0.35, D: 118, A: 54, Alpha: 1.57}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = fk.Transform(r)
	}
}
