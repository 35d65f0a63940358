package draw

import (
	"math"
	"testing"

	"lazysets/set"
)

// TestOverapproximate2D 函数验证采样多边形的顶点都是集合的支持向量，
// 且多边形包含集合本身（逐方向核对）。
func TestOverapproximate2D(t *testing.T) {
	h, err := set.NewHyperrectangle([]float64{1, 2}, []float64{1, 3})
	if err != nil {
		t.Fatalf("NewHyperrectangle failed: %v", err)
	}

	vertices, err := Overapproximate2D(h, 8)
	if err != nil {
		t.Fatalf("Overapproximate2D failed: %v", err)
	}
	if len(vertices) != 8 {
		t.Fatalf("Expected 8 vertices, got %d", len(vertices))
	}

	// 每个顶点都必须属于集合（支持向量在闭集合内）
	for i, v := range vertices {
		in, err := h.Membership([]float64{v[0], v[1]})
		if err != nil {
			t.Fatalf("Membership failed: %v", err)
		}
		if !in {
			t.Errorf("Vertex %d %v should belong to the set", i, v)
		}
	}

	// 第一个方向是 e1，对应的支持向量横坐标为 center+radius = 2
	if math.Abs(vertices[0][0]-2) > 1e-9 {
		t.Errorf("First vertex should maximize x1: got %f, expected 2", vertices[0][0])
	}
}

// TestOverapproximate2DValidation 函数验证维度与采样数量校验。
func TestOverapproximate2DValidation(t *testing.T) {
	h3, err := set.NewHyperrectangle([]float64{0, 0, 0}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("NewHyperrectangle failed: %v", err)
	}
	if _, err := Overapproximate2D(h3, 8); err == nil {
		t.Errorf("Non-2D set should be rejected")
	}

	h2, err := set.NewHyperrectangle([]float64{0, 0}, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewHyperrectangle failed: %v", err)
	}
	if _, err := Overapproximate2D(h2, 2); err == nil {
		t.Errorf("Fewer than 3 directions should be rejected")
	}
}
