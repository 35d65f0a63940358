// Package draw 将二维集合渲染为支持向量采样多边形。
//
// 集合本身是惰性的，没有显式顶点；绘制时沿 k 个均匀旋转的方向
// 查询支持向量，得到的点列构成集合的外接多边形（过逼近）。
package draw

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"lazysets/set"
)

// Overapproximate2D 对二维集合沿 k 个方向采样支持向量，
// 返回按角度顺序排列的多边形顶点。
// 方向从 e1 出发，由旋转矩阵逐步旋转 2π/k 得到。
// 集合维度必须为 2 且 k >= 3。
func Overapproximate2D(s set.Set[float64], k int) ([][2]float64, error) {
	if s.Dim() != 2 {
		return nil, fmt.Errorf("draw: set dimension %d, expected 2", s.Dim())
	}
	if k < 3 {
		return nil, errors.New("draw: need at least 3 sample directions")
	}

	// 单步旋转矩阵
	theta := 2 * math.Pi / float64(k)
	rot := mat.NewDense(2, 2, []float64{
		math.Cos(theta), -math.Sin(theta),
		math.Sin(theta), math.Cos(theta),
	})

	vertices := make([][2]float64, 0, k)
	d := mat.NewVecDense(2, []float64{1, 0})
	for i := 0; i < k; i++ {
		sv, err := s.SupportVector([]float64{d.AtVec(0), d.AtVec(1)})
		if err != nil {
			return nil, fmt.Errorf("draw: %w", err)
		}
		vertices = append(vertices, [2]float64{sv[0], sv[1]})

		next := mat.NewVecDense(2, nil)
		next.MulVec(rot, d)
		d = next
	}
	return vertices, nil
}

// SavePNG 将集合的采样多边形绘制为 PNG 文件。
func SavePNG(s set.Set[float64], k int, path string) error {
	vertices, err := Overapproximate2D(s, k)
	if err != nil {
		return err
	}

	xys := make(plotter.XYs, len(vertices))
	for i, v := range vertices {
		xys[i].X = v[0]
		xys[i].Y = v[1]
	}

	p := plot.New()
	p.Title.Text = "Support polygon"
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"

	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	p.Add(poly, plotter.NewGrid())

	points, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	p.Add(points)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
