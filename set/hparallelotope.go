package set

import (
	"fmt"
	"iter"

	"lazysets/maths"
)

// HParallelotope 约束表示下的平行六面体：
//
//	{x : D_i·x <= c_i 且 -D_i·x <= c_{n+i}, i = 1..n}
//
// 其中 D 为 n×n 方向矩阵，c 为长度 2n 的偏移向量。
// 值不可变；基顶点、极值顶点、中心、生成元矩阵等派生量
// 均按需从 (D, c) 重新计算，不做缓存——重复查询会重复线性求解。
// D 奇异时所有派生量返回线性求解错误（退化的平行六面体没有有效几何解）。
type HParallelotope[T maths.Number] struct {
	directions maths.Matrix[T] // 方向矩阵 D（n×n）
	offset     []T             // 偏移向量 c（长度 2n）
}

// NewHParallelotope 从方向矩阵与偏移向量构造平行六面体。
// D 必须为方阵且 len(c) == 2*rows(D)，违反时立即返回构造错误。
func NewHParallelotope[T maths.Number](directions [][]T, offset []T) (*HParallelotope[T], error) {
	n := len(directions)
	for i, row := range directions {
		if len(row) != n {
			return nil, fmt.Errorf("hparallelotope: directions must be square: row %d has %d cols, expected %d", i, len(row), n)
		}
	}
	if len(offset) != 2*n {
		return nil, fmt.Errorf("hparallelotope: offset length %d != 2*%d", len(offset), n)
	}
	p := &HParallelotope[T]{
		directions: maths.NewDenseMatrixFromDense(directions),
		offset:     make([]T, len(offset)),
	}
	copy(p.offset, offset)
	return p, nil
}

// Dim 返回环境维度 n。
func (p *HParallelotope[T]) Dim() int {
	return p.directions.Rows()
}

// Directions 返回方向矩阵 D 的副本。
func (p *HParallelotope[T]) Directions() maths.Matrix[T] {
	n := p.Dim()
	cpy := maths.NewDenseMatrix[T](n, n)
	p.directions.Copy(cpy)
	return cpy
}

// Offset 返回偏移向量 c 的副本。
func (p *HParallelotope[T]) Offset() []T {
	cpy := make([]T, len(p.offset))
	copy(cpy, p.offset)
	return cpy
}

// factorize 对方向矩阵执行一次LU分解，供各派生量的多次求解复用。
func (p *HParallelotope[T]) factorize() (maths.LU[T], error) {
	lu, err := maths.NewLU[T](p.Dim())
	if err != nil {
		return nil, fmt.Errorf("hparallelotope: %w", err)
	}
	if err := lu.Decompose(p.directions); err != nil {
		return nil, fmt.Errorf("hparallelotope: %w", err)
	}
	return lu, nil
}

// baseRHS 构造基顶点方程的右侧向量：偏移向量后半段取负。
func (p *HParallelotope[T]) baseRHS() []T {
	n := p.Dim()
	rhs := make([]T, n)
	for i := 0; i < n; i++ {
		rhs[i] = -p.offset[n+i]
	}
	return rhs
}

// solve 用给定的分解结果求解 D·x = rhs。
func (p *HParallelotope[T]) solve(lu maths.LU[T], rhs []T) ([]T, error) {
	x := maths.NewDenseVector[T](p.Dim())
	if err := lu.SolveReuse(maths.NewDenseVectorWithData(rhs), x); err != nil {
		return nil, fmt.Errorf("hparallelotope: %w", err)
	}
	return x.ToDense(), nil
}

// BaseVertex 求解 D·q = -c[n+1..2n]，得到隐式生成元坐标系的锚点。
func (p *HParallelotope[T]) BaseVertex() ([]T, error) {
	lu, err := p.factorize()
	if err != nil {
		return nil, err
	}
	return p.solve(lu, p.baseRHS())
}

// ExtremalVertices 返回 n 个极值顶点，每个轴一个。
// 轴 i 的右侧向量等于基右侧向量，但第 i 个分量替换为 +c_i；
// 每次求解使用基右侧向量的新副本（共享缓冲区不重新拷贝是正确性隐患）。
// 各求解相互独立，只共享一次矩阵分解。
func (p *HParallelotope[T]) ExtremalVertices() ([][]T, error) {
	lu, err := p.factorize()
	if err != nil {
		return nil, err
	}
	return p.extremalVertices(lu)
}

func (p *HParallelotope[T]) extremalVertices(lu maths.LU[T]) ([][]T, error) {
	n := p.Dim()
	base := p.baseRHS()
	vertices := make([][]T, n)
	for i := 0; i < n; i++ {
		rhs := make([]T, n)
		copy(rhs, base)
		rhs[i] = p.offset[i]
		v, err := p.solve(lu, rhs)
		if err != nil {
			return nil, err
		}
		vertices[i] = v
	}
	return vertices, nil
}

// Center 计算中心：q·(1 - n/2) + (Σ v_i)/2。
// 直接使用基顶点与极值顶点的闭式关系，避免重算顶点间的几何。
func (p *HParallelotope[T]) Center() ([]T, error) {
	lu, err := p.factorize()
	if err != nil {
		return nil, err
	}
	q, err := p.solve(lu, p.baseRHS())
	if err != nil {
		return nil, err
	}
	vertices, err := p.extremalVertices(lu)
	if err != nil {
		return nil, err
	}
	n := p.Dim()
	factor := T(1) - T(n)/2
	center := make([]T, n)
	for j := 0; j < n; j++ {
		var sum T
		for i := 0; i < n; i++ {
			sum += vertices[i][j]
		}
		center[j] = q[j]*factor + sum/2
	}
	return center, nil
}

// GenMat 计算生成元矩阵：第 i 列为 (v_i - q)/2，按轴顺序排列。
func (p *HParallelotope[T]) GenMat() (maths.Matrix[T], error) {
	lu, err := p.factorize()
	if err != nil {
		return nil, err
	}
	q, err := p.solve(lu, p.baseRHS())
	if err != nil {
		return nil, err
	}
	vertices, err := p.extremalVertices(lu)
	if err != nil {
		return nil, err
	}
	n := p.Dim()
	genmat := maths.NewDenseMatrix[T](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			genmat.Set(j, i, (vertices[i][j]-q[j])/2)
		}
	}
	return genmat, nil
}

// Generators 返回按轴顺序遍历 n 个生成元向量的惰性可重启序列。
// 线性求解在调用本方法时完成一次，序列本身可多次 range 且每次都产出
// 全部 n 个生成元（每次产出新的切片副本）。
func (p *HParallelotope[T]) Generators() (iter.Seq[[]T], error) {
	genmat, err := p.GenMat()
	if err != nil {
		return nil, err
	}
	n := p.Dim()
	return func(yield func([]T) bool) {
		for i := 0; i < n; i++ {
			g := make([]T, n)
			for j := 0; j < n; j++ {
				g[j] = genmat.Get(j, i)
			}
			if !yield(g) {
				return
			}
		}
	}, nil
}

// Constraints 从 (D, c) 重建全部 2n 个半空间约束：
// 第 i 个为 (D_i, c_i)，第 n+i 个为 (-D_i, c_{n+i})——
// 取负的是方向行而不是偏移。不涉及线性求解。
func (p *HParallelotope[T]) Constraints() []LinearConstraint[T] {
	n := p.Dim()
	constraints := make([]LinearConstraint[T], 0, 2*n)
	for i := 0; i < n; i++ {
		constraints = append(constraints, NewLinearConstraint(p.directions.RowCopy(i), p.offset[i]))
	}
	for i := 0; i < n; i++ {
		row := p.directions.RowCopy(i)
		for j := range row {
			row[j] = -row[j]
		}
		constraints = append(constraints, NewLinearConstraint(row, p.offset[n+i]))
	}
	return constraints
}

// SupportVector 通过生成元表示计算支持向量：
//
//	σ(d) = center + Σ sign(d·g_i)·g_i
//
// 其中 d·g_i = 0（含零方向）时取 +g_i。
func (p *HParallelotope[T]) SupportVector(d []T) ([]T, error) {
	n := p.Dim()
	if err := checkDim("hparallelotope support vector", n, len(d)); err != nil {
		return nil, err
	}
	center, err := p.Center()
	if err != nil {
		return nil, err
	}
	gens, err := p.Generators()
	if err != nil {
		return nil, err
	}
	sv := make([]T, n)
	copy(sv, center)
	for g := range gens {
		var dot T
		for j := 0; j < n; j++ {
			dot += d[j] * g[j]
		}
		if dot >= 0 {
			for j := 0; j < n; j++ {
				sv[j] += g[j]
			}
		} else {
			for j := 0; j < n; j++ {
				sv[j] -= g[j]
			}
		}
	}
	return sv, nil
}

// Membership 逐个检查全部 2n 个半空间约束（含容差的 <= 语义）。
// 不涉及线性求解，方向矩阵奇异时也能判定。
func (p *HParallelotope[T]) Membership(x []T) (bool, error) {
	n := p.Dim()
	if err := checkDim("hparallelotope membership", n, len(x)); err != nil {
		return false, err
	}
	for i := 0; i < n; i++ {
		var dot T
		for j := 0; j < n; j++ {
			dot += p.directions.Get(i, j) * x[j]
		}
		if float64(dot) > float64(p.offset[i])+Tolerance {
			return false, nil
		}
		if float64(-dot) > float64(p.offset[n+i])+Tolerance {
			return false, nil
		}
	}
	return true, nil
}
