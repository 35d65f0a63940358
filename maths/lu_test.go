package maths

import (
	"math/rand"
	"testing"
)

// TestLuDenseSolve 函数验证了针对密集矩阵的 LU 分解和求解过程的正确性。
func TestLuDenseSolve(t *testing.T) {
	// 求解线性方程组 Ax = b
	// A = [[2, 3, 1],
	//      [1, 2, 3],
	//      [3, 1, 2]]
	// b = [9, 6, 8]
	// 预期解 x = [35/18, 29/18, 5/18] ≈ [1.94, 1.61, 0.28]

	// 定义矩阵 A
	a := NewDenseMatrixFromDense([][]float64{
		{2, 3, 1},
		{1, 2, 3},
		{3, 1, 2},
	})

	// 定义向量 b
	b := NewDenseVectorWithData([]float64{9, 6, 8})

	// 创建 LU 分解器
	lu, err := NewLU[float64](3)
	if err != nil {
		t.Fatalf("NewLU failed: %v", err)
	}
	// 对矩阵 A 进行分解
	err = lu.Decompose(a)
	if err != nil {
		t.Fatalf("Decomposition failed: %v", err)
	}

	// 求解 x
	x := NewDenseVector[float64](3)
	if err := lu.SolveReuse(b, x); err != nil {
		t.Fatalf("SolveReuse failed: %v", err)
	}

	// 验证结果
	expected := []float64{35.0 / 18.0, 29.0 / 18.0, 5.0 / 18.0}
	tolerance := 1e-9

	for i := 0; i < 3; i++ {
		if Abs(x.Get(i)-expected[i]) > tolerance {
			t.Errorf("Element x[%d] is incorrect. Got %f, expected %f", i, x.Get(i), expected[i])
		}
	}
}

// TestLuDenseSolveFloat32 函数验证泛型求解器在 float32 标量类型上的可用性。
func TestLuDenseSolveFloat32(t *testing.T) {
	// A = [[4, 2], [1, 3]], b = [10, 5]，预期解 x = [2, 1]
	a := NewDenseMatrixFromDense([][]float32{
		{4, 2},
		{1, 3},
	})
	b := NewDenseVectorWithData([]float32{10, 5})

	lu, err := NewLU[float32](2)
	if err != nil {
		t.Fatalf("NewLU failed: %v", err)
	}
	if err := lu.Decompose(a); err != nil {
		t.Fatalf("Decomposition failed: %v", err)
	}

	x := NewDenseVector[float32](2)
	if err := lu.SolveReuse(b, x); err != nil {
		t.Fatalf("SolveReuse failed: %v", err)
	}

	expected := []float32{2, 1}
	tolerance := float32(1e-5)
	for i := 0; i < 2; i++ {
		if Abs(x.Get(i)-expected[i]) > tolerance {
			t.Errorf("Element x[%d] is incorrect. Got %f, expected %f", i, x.Get(i), expected[i])
		}
	}
}

// TestLuDenseReuseDecomposition 函数验证单次分解可被多个右侧向量复用，
// 这是平行六面体顶点推导的核心使用模式（n 次求解共享一次分解）。
func TestLuDenseReuseDecomposition(t *testing.T) {
	a := NewDenseMatrixFromDense([][]float64{
		{1, 0},
		{0, 1},
	})
	lu, err := NewLU[float64](2)
	if err != nil {
		t.Fatalf("NewLU failed: %v", err)
	}
	if err := lu.Decompose(a); err != nil {
		t.Fatalf("Decomposition failed: %v", err)
	}

	// 对单位矩阵，Ax = b 的解就是 b 自身
	rhs := [][]float64{{1, 2}, {-3, 4}, {0, 0}}
	x := NewDenseVector[float64](2)
	for _, b := range rhs {
		if err := lu.SolveReuse(NewDenseVectorWithData(b), x); err != nil {
			t.Fatalf("SolveReuse failed for rhs %v: %v", b, err)
		}
		for i := range b {
			if Abs(x.Get(i)-b[i]) > 1e-12 {
				t.Errorf("Solve with rhs %v: x[%d] = %f, expected %f", b, i, x.Get(i), b[i])
			}
		}
	}
}

// TestLuDenseSingular 函数验证 Decompose 方法能否正确识别奇异矩阵。
func TestLuDenseSingular(t *testing.T) {
	// A 是一个奇异矩阵（有一行全为零）
	// A = [[1, 2, 3],
	//      [4, 5, 6],
	//      [0, 0, 0]]
	a := NewDenseMatrixFromDense([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{0, 0, 0},
	})

	lu, err := NewLU[float64](3)
	if err != nil {
		t.Fatalf("NewLU failed: %v", err)
	}
	// 对奇异矩阵进行分解，预期会返回错误
	err = lu.Decompose(a)
	if err == nil {
		t.Fatalf("Decompose should have failed for a singular matrix but it did not")
	}
}

// BenchmarkLuDenseDecompose 测试对密集矩阵进行 LU 分解的性能。
func BenchmarkLuDenseDecompose(b *testing.B) {
	size := 100
	m := NewDenseMatrix[float64](size, size)
	// 填充随机数据以避免对零矩阵的特殊优化
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			m.Set(i, j, rand.Float64())
		}
	}
	lu, err := NewLU[float64](size)
	if err != nil {
		b.Fatalf("NewLU failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := lu.Decompose(m)
		if err != nil {
			b.Fatalf("Decomposition failed during benchmark: %v", err)
		}
	}
}

// BenchmarkLuDenseSolve 测试 LU 分解后求解步骤的性能。
func BenchmarkLuDenseSolve(b *testing.B) {
	size := 100
	m := NewDenseMatrix[float64](size, size)
	vecB := NewDenseVector[float64](size)
	vecX := NewDenseVector[float64](size)

	// 填充随机数据
	for i := 0; i < size; i++ {
		vecB.Set(i, rand.Float64())
		for j := 0; j < size; j++ {
			m.Set(i, j, rand.Float64())
		}
	}
	// 通过增加对角线元素的值来确保矩阵非奇异
	for i := 0; i < size; i++ {
		m.Set(i, i, m.Get(i, i)+1)
	}

	lu, err := NewLU[float64](size)
	if err != nil {
		b.Fatalf("NewLU failed: %v", err)
	}
	// 先进行分解
	err = lu.Decompose(m)
	if err != nil {
		b.Fatalf("Decomposition failed during setup: %v", err)
	}

	b.ResetTimer()
	// 重复执行求解过程
	for i := 0; i < b.N; i++ {
		lu.SolveReuse(vecB, vecX)
	}
}
