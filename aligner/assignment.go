package aligner

import "math"

// assign solves the maximum weight assignment for a rows x cols weight matrix (Hungarian method).
// It returns the column assigned to each row, -1 when the row stays unassigned or its weight is 0.
func assign(weights [][]int64, cols int) []int {
	rows := len(weights)
	size := max(rows, cols)
	result := make([]int, rows)
	for i := range result {
		result[i] = -1
	}
	if size == 0 {
		return result
	}
	cost := func(i, j int) int64 {
		if i < rows && j < cols {
			return -weights[i][j]
		}
		return 0
	}
	const inf = math.MaxInt64 / 4
	u := make([]int64, size+1)
	v := make([]int64, size+1)
	p := make([]int, size+1)
	way := make([]int, size+1)
	for i := 1; i <= size; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int64, size+1)
		used := make([]bool, size+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0, delta, j1 := p[j0], int64(inf), 0
			for j := 1; j <= size; j++ {
				if used[j] {
					continue
				}
				if cur := cost(i0-1, j-1) - u[i0] - v[j]; cur < minv[j] {
					minv[j], way[j] = cur, j0
				}
				if minv[j] < delta {
					delta, j1 = minv[j], j
				}
			}
			for j := 0; j <= size; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}
	for j := 1; j <= size; j++ {
		i := p[j] - 1
		if i >= 0 && i < rows && j-1 < cols && weights[i][j-1] > 0 {
			result[i] = j - 1
		}
	}
	return result
}
