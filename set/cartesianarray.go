package set

import "lazysets/maths"

// CartesianProductArray n 元惰性笛卡尔积，持有一个有序集合序列。
// 与二元形式不同，本类型是核心中唯一可变的类型：乘法运算原地追加到
// 同一底层序列。序列具有引用语义——若多个绑定引用同一数组，
// 任何一方的追加对所有绑定可见，调用方不得依赖未经自己执行的追加后的别名状态。
// 并发追加与查询需要外部同步。
type CartesianProductArray[T maths.Number] struct {
	sfarray []Set[T] // 按插入顺序排列的集合序列
}

// NewCartesianProductArray 从有序集合序列构造 n 元积（序列可为空，取得所有权）。
func NewCartesianProductArray[T maths.Number](sets []Set[T]) *CartesianProductArray[T] {
	return &CartesianProductArray[T]{sfarray: sets}
}

// MakeCartesianProductArray 预留 n 个元素容量的空积数组，
// 标量类型默认为 float64。
func MakeCartesianProductArray(n int) *CartesianProductArray[float64] {
	return &CartesianProductArray[float64]{sfarray: make([]Set[float64], 0, n)}
}

// Len 返回序列中的集合数量。
func (cpa *CartesianProductArray[T]) Len() int {
	return len(cpa.sfarray)
}

// At 返回序列中第 i 个集合。
func (cpa *CartesianProductArray[T]) At(i int) Set[T] {
	return cpa.sfarray[i]
}

// Dim 返回所有元素维度之和，空序列为 0。
func (cpa *CartesianProductArray[T]) Dim() int {
	dim := 0
	for _, s := range cpa.sfarray {
		dim += s.Dim()
	}
	return dim
}

// MulRight 右乘：将集合 s 追加到序列末尾，返回被修改的数组自身。
func (cpa *CartesianProductArray[T]) MulRight(s Set[T]) *CartesianProductArray[T] {
	cpa.sfarray = append(cpa.sfarray, s)
	return cpa
}

// MulLeft 左乘：同样将集合 s 追加到序列末尾（不是前插），
// 返回被修改的数组自身。
// 这是刻意的简化：笛卡尔积在重排意义下可交换，序列顺序只影响坐标布局，
// 与二元吸收元的对称性保持一致。
func (cpa *CartesianProductArray[T]) MulLeft(s Set[T]) *CartesianProductArray[T] {
	cpa.sfarray = append(cpa.sfarray, s)
	return cpa
}

// Merge 将 other 的全部元素按顺序追加到接收者上并返回接收者。
// other 本身不被修改，但其元素此后被两个数组按引用共享。
func (cpa *CartesianProductArray[T]) Merge(other *CartesianProductArray[T]) *CartesianProductArray[T] {
	cpa.sfarray = append(cpa.sfarray, other.sfarray...)
	return cpa
}

// SupportVector 计算积的支持向量。
// 沿序列做一次线性遍历，维护进入方向 d 的连续偏移；
// 每个元素用对应子区间查询，子结果写入输出向量的相同子区间。
func (cpa *CartesianProductArray[T]) SupportVector(d []T) ([]T, error) {
	n := cpa.Dim()
	if err := checkDim("cartesian product array support vector", n, len(d)); err != nil {
		return nil, err
	}
	result := make([]T, n)
	offset := 0
	for _, s := range cpa.sfarray {
		m := s.Dim()
		sv, err := s.SupportVector(d[offset : offset+m])
		if err != nil {
			return nil, err
		}
		copy(result[offset:offset+m], sv)
		offset += m
	}
	return result, nil
}

// Membership 判定点是否属于积集合。
// 同样的线性遍历，对各元素判定取合取，遇到第一个失败元素即短路。
// 顺序只影响短路位置，不影响结果真值。
func (cpa *CartesianProductArray[T]) Membership(x []T) (bool, error) {
	if err := checkDim("cartesian product array membership", cpa.Dim(), len(x)); err != nil {
		return false, err
	}
	offset := 0
	for _, s := range cpa.sfarray {
		m := s.Dim()
		in, err := s.Membership(x[offset : offset+m])
		if err != nil || !in {
			return false, err
		}
		offset += m
	}
	return true, nil
}
