package set

import "lazysets/maths"

// CartesianProduct 两个集合的二元惰性笛卡尔积 X × Y。
// 构造后不可变；查询按分量递归分派到两个操作数再拼接。
// 原地追加的乘法运算属于数组形式（CartesianProductArray），不属于本类型。
type CartesianProduct[T maths.Number] struct {
	X Set[T] // 第一个操作数（占据前 X.Dim() 个坐标）
	Y Set[T] // 第二个操作数（占据剩余坐标）
}

// NewCartesianProduct 从两个任意集合构造二元笛卡尔积。
// 不执行吸收规则检查，调用方应优先使用 Product。
func NewCartesianProduct[T maths.Number](x, y Set[T]) *CartesianProduct[T] {
	return &CartesianProduct[T]{X: x, Y: y}
}

// Dim 返回两个操作数维度之和。
func (cp *CartesianProduct[T]) Dim() int {
	return cp.X.Dim() + cp.Y.Dim()
}

// SupportVector 计算积集合的支持向量。
// 将方向 d 按第一个操作数的维度切分，分别查询两个子集合，
// 再按顺序拼接两个子支持向量——除各子支持向量外不需要任何其他信息，
// 这是惰性组合正确性的定义性质。
func (cp *CartesianProduct[T]) SupportVector(d []T) ([]T, error) {
	n := cp.Dim()
	if err := checkDim("cartesian product support vector", n, len(d)); err != nil {
		return nil, err
	}
	nx := cp.X.Dim()
	sx, err := cp.X.SupportVector(d[:nx])
	if err != nil {
		return nil, err
	}
	sy, err := cp.Y.SupportVector(d[nx:])
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, n)
	result = append(result, sx...)
	result = append(result, sy...)
	return result, nil
}

// Membership 判定点是否属于积集合。
// 将点按同样方式切分，结果为两个子判定的合取（第一个失败即短路）。
func (cp *CartesianProduct[T]) Membership(x []T) (bool, error) {
	if err := checkDim("cartesian product membership", cp.Dim(), len(x)); err != nil {
		return false, err
	}
	nx := cp.X.Dim()
	in, err := cp.X.Membership(x[:nx])
	if err != nil || !in {
		return false, err
	}
	return cp.Y.Membership(x[nx:])
}

// ProductChain 将一列集合折叠为右结合的二元积链 X1 ⊗ (X2 ⊗ (X3 ⊗ …))。
// 空序列返回维度为 0 的空集合；单元素序列原样返回该集合（不包裹）；
// 每一步折叠都先应用吸收规则。
func ProductChain[T maths.Number](sets ...Set[T]) Set[T] {
	switch len(sets) {
	case 0:
		return NewEmptySet[T](0)
	case 1:
		return sets[0]
	default:
		return Product(sets[0], ProductChain(sets[1:]...))
	}
}
