package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"

	"lazysets/set"
)

// Record 记录二维集合的支持函数采样数据
type Record struct {
	Angles  []float64      // 采样方向角度列（弧度）
	Names   []string       // 集合名称列
	Support [][]float64    // 支持函数值列：Support[i][j] = ρ(d_j) = d_j·σ(d_j)
	Vectors [][][2]float64 // 支持向量列：Vectors[i][j] = σ(d_j)
}

// NewRecord 初始化 k 个均匀方向的采样记录
func NewRecord(k int) (*Record, error) {
	if k < 3 {
		return nil, fmt.Errorf("debug: need at least 3 sample directions, got %d", k)
	}
	angles := make([]float64, k)
	for i := range angles {
		angles[i] = 2 * math.Pi * float64(i) / float64(k)
	}
	return &Record{Angles: angles}, nil
}

// Sample 记录一个二维集合在所有采样方向上的支持函数值与支持向量
func (list *Record) Sample(name string, s set.Set[float64]) error {
	if s.Dim() != 2 {
		return fmt.Errorf("debug: set dimension %d, expected 2", s.Dim())
	}
	support := make([]float64, 0, len(list.Angles))
	vectors := make([][2]float64, 0, len(list.Angles))
	for _, angle := range list.Angles {
		d := []float64{math.Cos(angle), math.Sin(angle)}
		sv, err := s.SupportVector(d)
		if err != nil {
			return fmt.Errorf("debug: %w", err)
		}
		support = append(support, d[0]*sv[0]+d[1]*sv[1])
		vectors = append(vectors, [2]float64{sv[0], sv[1]})
	}
	list.Names = append(list.Names, name)
	list.Support = append(list.Support, support)
	list.Vectors = append(list.Vectors, vectors)
	return nil
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

func (list *Record) Error(err error) { log.Println(err) }
