// Package lazysets 提供惰性凸集合代数的顶层封装。
// 具体的集合形状与组合规则在 set 子包中，分解算法在 decompose 子包中，
// 可视化在 draw 与 debug 子包中；本包把它们组装成面向调用方的分析流程。
package lazysets

import (
	"fmt"

	"lazysets/debug"
	"lazysets/decompose"
	"lazysets/draw"
	"lazysets/set"
)

// Analysis 集合分析器
// 持有一个（可能是复合的）集合，提供分解、包围盒与可视化入口。
// 标量类型为默认的 float64；需要其他标量类型时直接使用 set 子包。
type Analysis struct {
	S set.Set[float64]
}

// NewAnalysis 初始化
// 将给定集合折叠为右嵌套积链（空参数得到空集合，单参数原样保留）。
func NewAnalysis(sets ...set.Set[float64]) *Analysis {
	return &Analysis{S: set.ProductChain(sets...)}
}

// Dim 返回集合的环境维度。
func (a *Analysis) Dim() int {
	return a.S.Dim()
}

// Decompose 将集合按块划分分解为盒积。
func (a *Analysis) Decompose(blockSizes []int) (*set.CartesianProductArray[float64], error) {
	return decompose.Decompose(a.S, blockSizes)
}

// BoxBounds 计算整个集合的轴对齐包围盒（单块分解）。
func (a *Analysis) BoxBounds() (*set.Hyperrectangle[float64], error) {
	cpa, err := decompose.Decompose(a.S, []int{a.Dim()})
	if err != nil {
		return nil, err
	}
	box, ok := cpa.At(0).(*set.Hyperrectangle[float64])
	if !ok {
		return nil, fmt.Errorf("lazysets: unexpected block type %T", cpa.At(0))
	}
	return box, nil
}

// SavePNG 将二维集合的支持向量采样多边形保存为 PNG 文件。
func (a *Analysis) SavePNG(k int, path string) error {
	return draw.SavePNG(a.S, k, path)
}

// Charts 对二维集合采样支持函数，生成调试图表。
func (a *Analysis) Charts(name string, k int) (*debug.Charts, error) {
	rec, err := debug.NewRecord(k)
	if err != nil {
		return nil, err
	}
	if err := rec.Sample(name, a.S); err != nil {
		return nil, err
	}
	return &debug.Charts{Record: *rec}, nil
}
