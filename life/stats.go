package life

// Stats summarizes the current board for display.
type Stats struct {
	Generation int
	Population int
	Density    float64
	AvgAge     float64
}

// Stats computes population, density and average age over the live
// cells in one pass. AvgAge is 0 when the board is empty.
func (g *Grid) Stats() Stats {
	s := Stats{Generation: g.generation}
	totalAge := 0
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j].alive {
				s.Population++
				totalAge += g.cells[i][j].age
			}
		}
	}
	s.Density = float64(s.Population) / float64(g.rows*g.cols)
	if s.Population > 0 {
		s.AvgAge = float64(totalAge) / float64(s.Population)
	}
	return s
}
