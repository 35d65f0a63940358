package decompose

import (
	"math"
	"testing"

	"lazysets/set"
)

// TestDecomposeProduct 函数是组合代数与分解的回归测试：
// 由组合代数构造的复合集合分解后得到 CartesianProductArray，
// 且维度和不变量保持成立。
func TestDecomposeProduct(t *testing.T) {
	// 组合一个 4 维集合：平行六面体 [-1,2]×[-1,3] 与盒 [0,2]×[-1,1]
	p, err := set.NewHParallelotope([][]float64{
		{1, 0},
		{0, 1},
	}, []float64{2, 3, 1, 1})
	if err != nil {
		t.Fatalf("NewHParallelotope failed: %v", err)
	}
	h, err := set.NewHyperrectangle([]float64{1, 0}, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewHyperrectangle failed: %v", err)
	}
	s := set.Product[float64](p, h)

	blocks, err := UniformBlocks(s.Dim(), 2)
	if err != nil {
		t.Fatalf("UniformBlocks failed: %v", err)
	}
	cpa, err := Decompose[float64](s, blocks)
	if err != nil {
		t.Fatalf("Decompose failed: %v", err)
	}

	// 维度和不变量
	if cpa.Dim() != s.Dim() {
		t.Errorf("Decomposed dim %d != original dim %d", cpa.Dim(), s.Dim())
	}
	if cpa.Len() != 2 {
		t.Fatalf("Expected 2 blocks, got %d", cpa.Len())
	}

	// 轴对齐情形下分解是精确的：逐块核对盒的角点
	b0, ok := cpa.At(0).(*set.Hyperrectangle[float64])
	if !ok {
		t.Fatalf("Block 0 should be a Hyperrectangle, got %T", cpa.At(0))
	}
	wantLow := []float64{-1, -1}
	wantHigh := []float64{2, 3}
	for i := range wantLow {
		if math.Abs(b0.Low()[i]-wantLow[i]) > 1e-9 || math.Abs(b0.High()[i]-wantHigh[i]) > 1e-9 {
			t.Errorf("Block 0 bounds mismatch at %d: low %f high %f, expected %f %f",
				i, b0.Low()[i], b0.High()[i], wantLow[i], wantHigh[i])
		}
	}
	b1, ok := cpa.At(1).(*set.Hyperrectangle[float64])
	if !ok {
		t.Fatalf("Block 1 should be a Hyperrectangle, got %T", cpa.At(1))
	}
	wantLow = []float64{0, -1}
	wantHigh = []float64{2, 1}
	for i := range wantLow {
		if math.Abs(b1.Low()[i]-wantLow[i]) > 1e-9 || math.Abs(b1.High()[i]-wantHigh[i]) > 1e-9 {
			t.Errorf("Block 1 bounds mismatch at %d: low %f high %f, expected %f %f",
				i, b1.Low()[i], b1.High()[i], wantLow[i], wantHigh[i])
		}
	}

	// 过逼近性质：原集合的支持向量属于分解结果
	for _, d := range [][]float64{{1, 0, 0, 0}, {0, -1, 0, 0}, {1, 1, 1, 1}, {-1, 2, -3, 4}} {
		sv, err := s.SupportVector(d)
		if err != nil {
			t.Fatalf("SupportVector(%v) failed: %v", d, err)
		}
		in, err := cpa.Membership(sv)
		if err != nil {
			t.Fatalf("Membership failed: %v", err)
		}
		if !in {
			t.Errorf("Support vector %v of the original set should belong to the decomposition", sv)
		}
	}
}

// TestDecomposeValidation 函数验证块划分的校验与空集合拒绝。
func TestDecomposeValidation(t *testing.T) {
	h, err := set.NewHyperrectangle([]float64{0, 0, 0}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("NewHyperrectangle failed: %v", err)
	}

	// 块大小之和不等于维度
	if _, err := Decompose[float64](h, []int{2, 2}); err == nil {
		t.Errorf("Block sizes not summing to the dimension should be rejected")
	}
	// 非正块大小
	if _, err := Decompose[float64](h, []int{3, 0}); err == nil {
		t.Errorf("Non-positive block size should be rejected")
	}
	// 空集合
	if _, err := Decompose[float64](set.NewEmptySet[float64](3), []int{3}); err == nil {
		t.Errorf("Decomposing the empty set should be rejected")
	}
	// 维度不可整除
	if _, err := UniformBlocks(3, 2); err == nil {
		t.Errorf("UniformBlocks(3, 2) should be rejected")
	}
}
