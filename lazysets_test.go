package lazysets

import (
	"math"
	"testing"

	"lazysets/set"
)

// TestAnalysisBoxBounds 函数验证顶层封装的组合与包围盒计算。
func TestAnalysisBoxBounds(t *testing.T) {
	p, err := set.NewHParallelotope([][]float64{
		{1, 0},
		{0, 1},
	}, []float64{2, 3, 1, 1})
	if err != nil {
		t.Fatalf("NewHParallelotope failed: %v", err)
	}
	h, err := set.NewHyperrectangle([]float64{5}, []float64{2})
	if err != nil {
		t.Fatalf("NewHyperrectangle failed: %v", err)
	}

	a := NewAnalysis(p, h)
	if a.Dim() != 3 {
		t.Fatalf("Expected dim 3, got %d", a.Dim())
	}

	// 包围盒：[-1,2] × [-1,3] × [3,7]
	box, err := a.BoxBounds()
	if err != nil {
		t.Fatalf("BoxBounds failed: %v", err)
	}
	wantLow := []float64{-1, -1, 3}
	wantHigh := []float64{2, 3, 7}
	for i := range wantLow {
		if math.Abs(box.Low()[i]-wantLow[i]) > 1e-9 || math.Abs(box.High()[i]-wantHigh[i]) > 1e-9 {
			t.Errorf("BoxBounds mismatch at %d: low %f high %f, expected %f %f",
				i, box.Low()[i], box.High()[i], wantLow[i], wantHigh[i])
		}
	}

	// 分解为 [2,1] 两块
	cpa, err := a.Decompose([]int{2, 1})
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}
	if cpa.Len() != 2 || cpa.Dim() != 3 {
		t.Errorf("Expected 2 blocks of total dim 3, got %d blocks, dim %d", cpa.Len(), cpa.Dim())
	}
}

// TestAnalysisEmpty 函数验证空参数组合得到空集合且分解被拒绝。
func TestAnalysisEmpty(t *testing.T) {
	a := NewAnalysis()
	if _, ok := a.S.(*set.EmptySet[float64]); !ok {
		t.Fatalf("NewAnalysis() should hold the empty set, got %T", a.S)
	}
	if _, err := a.BoxBounds(); err == nil {
		t.Errorf("BoxBounds of the empty set should fail")
	}
}
