// Package set 实现凸集合的惰性代数表示。
//
// 集合不会被物化为顶点/面片列表，而是表示为对其他集合运算的组合，
// 在查询时按需求值。每个具体形状只需要实现两种基础查询：
//
//   - 支持向量（SupportVector）：集合在给定方向上最远的点
//   - 成员判定（Membership）：给定点是否属于闭集合
//
// 组合规则保证二者在不枚举集合点的前提下保持正确。
package set

import (
	"fmt"

	"lazysets/maths"
)

// Tolerance 成员判定和相等比较的浮点容差。
// 线性求解得到的边界点恰好落在约束面上，精确的 <= 比较会因舍入误差失败。
var Tolerance = 1e-9

// Set 是所有凸集合形状必须实现的能力契约。
// 所有操作都是值与输入的纯函数，不共享可变状态。
// 协作集合的标量类型由类型参数 T 统一约束：
// 不同标量类型的集合无法组合（编译期拒绝）。
type Set[T maths.Number] interface {
	// Dim 返回集合的环境维度（>= 0）。
	Dim() int
	// SupportVector 返回集合中与方向 d 点积最大的点 argmax_{x∈S} d·x。
	// 前置条件：len(d) == Dim()，违反时返回维度不匹配错误。
	// 零方向的行为由各个形状自行定义并在其文档中说明。
	SupportVector(d []T) ([]T, error)
	// Membership 判定点 x 是否属于闭集合（边界使用 <= 语义）。
	// 前置条件：len(x) == Dim()，违反时返回维度不匹配错误。
	Membership(x []T) (bool, error)
}

// checkDim 校验输入向量长度与集合维度一致。
// 所有操作在任何部分计算之前先执行此检查。
func checkDim(op string, dim, got int) error {
	if dim != got {
		return fmt.Errorf("%s: dimension mismatch: set dim %d, input length %d", op, dim, got)
	}
	return nil
}
