// Package decompose 将高维集合分解为低维块上盒集合的笛卡尔积。
//
// 每个块通过对 ±e_j 方向的支持向量查询得到坐标上下界，
// 再以轴对齐超矩形过逼近该块的投影。输出保持维度和不变量：
// 各块维度之和等于输入集合的环境维度。
package decompose

import (
	"errors"
	"fmt"

	"lazysets/maths"
	"lazysets/set"
)

// UniformBlocks 生成均匀的块大小划分。
// dim 必须能被 size 整除，否则返回错误。
func UniformBlocks(dim, size int) ([]int, error) {
	if size < 1 {
		return nil, fmt.Errorf("decompose: block size %d must be positive", size)
	}
	if dim%size != 0 {
		return nil, fmt.Errorf("decompose: dimension %d is not divisible by block size %d", dim, size)
	}
	blocks := make([]int, dim/size)
	for i := range blocks {
		blocks[i] = size
	}
	return blocks, nil
}

// Decompose 把集合 s 按连续块划分 blockSizes 分解，
// 返回由各块盒过逼近组成的 CartesianProductArray。
// 块大小必须为正且总和等于 s 的维度；空集合无法分解。
func Decompose[T maths.Number](s set.Set[T], blockSizes []int) (*set.CartesianProductArray[T], error) {
	if _, ok := s.(*set.EmptySet[T]); ok {
		return nil, errors.New("decompose: cannot decompose the empty set")
	}
	total := 0
	for i, size := range blockSizes {
		if size < 1 {
			return nil, fmt.Errorf("decompose: block size %d at index %d must be positive", size, i)
		}
		total += size
	}
	dim := s.Dim()
	if total != dim {
		return nil, fmt.Errorf("decompose: block sizes sum to %d, set dimension is %d", total, dim)
	}

	cpa := set.NewCartesianProductArray(make([]set.Set[T], 0, len(blockSizes)))
	offset := 0
	for _, size := range blockSizes {
		box, err := blockBox(s, offset, size)
		if err != nil {
			return nil, err
		}
		cpa.MulRight(box)
		offset += size
	}
	return cpa, nil
}

// blockBox 对 [offset, offset+size) 坐标块做盒过逼近。
// 每个坐标两次支持向量查询：+e_j 给出上界，-e_j 给出下界。
func blockBox[T maths.Number](s set.Set[T], offset, size int) (*set.Hyperrectangle[T], error) {
	dim := s.Dim()
	center := make([]T, size)
	radius := make([]T, size)
	d := make([]T, dim)
	for j := 0; j < size; j++ {
		k := offset + j

		d[k] = 1
		sv, err := s.SupportVector(d)
		if err != nil {
			return nil, fmt.Errorf("decompose: %w", err)
		}
		high := sv[k]

		d[k] = -1
		sv, err = s.SupportVector(d)
		if err != nil {
			return nil, fmt.Errorf("decompose: %w", err)
		}
		low := sv[k]

		d[k] = 0
		center[j] = (high + low) / 2
		radius[j] = (high - low) / 2
	}
	box, err := set.NewHyperrectangle(center, radius)
	if err != nil {
		return nil, fmt.Errorf("decompose: %w", err)
	}
	return box, nil
}
