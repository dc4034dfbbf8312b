// Package life implements Conway's Game of Life on a bounded grid,
// tracking how many consecutive generations each cell has been alive.
//
// Rules (from Wikipedia):
//
//  1. Any live cell with fewer than two live neighbors dies, as if by
//     underpopulation.
//  2. Any live cell with two or three live neighbors lives on to the
//     next generation.
//  3. Any live cell with more than three live neighbors dies, as if by
//     overpopulation.
//  4. Any dead cell with exactly three live neighbors becomes a live
//     cell, as if by reproduction.
//
// The grid does not wrap: neighbors outside the bounds are simply not
// counted.
package life

import (
	"fmt"
	"math/rand"
)

// deadAge marks a cell that is not alive this generation.
const deadAge = -1

// Cell holds one grid position. aliveNext is the liveness already
// computed for the following generation; it becomes alive on the next
// Advance.
type Cell struct {
	alive     bool
	aliveNext bool
	age       int
}

// CellView is a read-only copy of one cell's visible state. Age is -1
// for dead cells, otherwise the number of generations the cell has been
// continuously alive minus one (a cell born this generation has age 0).
type CellView struct {
	Alive bool
	Age   int
}

// Grid is a fixed-size Game of Life board. It always holds both the
// current generation and the precomputed next one, so a render pass
// between Advance calls sees a consistent board.
//
// A Grid is not safe for concurrent use; the expected driver is a
// single timer loop that alternates Advance and Snapshot.
type Grid struct {
	rows, cols int
	cells      [][]Cell
	rng        *rand.Rand
	generation int
}

// New returns an all-dead grid with the given dimensions. The rng is
// used only by Seed; passing a fixed-seed source makes runs
// reproducible.
func New(rows, cols int, rng *rand.Rand) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("life: invalid grid size %dx%d", rows, cols)
	}
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
		for j := range cells[i] {
			cells[i][j].age = deadAge
		}
	}
	return &Grid{rows: rows, cols: cols, cells: cells, rng: rng}, nil
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Generation returns how many times Advance has been called.
func (g *Grid) Generation() int { return g.generation }

// Seed randomizes the board: each cell independently starts alive with
// the given probability, at age 0. It then computes the next generation
// so the grid is immediately ready to Advance. Any previous board state
// is discarded and the generation counter resets.
func (g *Grid) Seed(threshold float64) {
	g.generation = 0
	for i := range g.cells {
		for j := range g.cells[i] {
			c := &g.cells[i][j]
			c.alive = g.rng.Float64() < threshold
			c.aliveNext = false
			if c.alive {
				c.age = 0
			} else {
				c.age = deadAge
			}
		}
	}
	g.computeNext()
}

// Advance commits the precomputed next generation, updates every cell's
// age, and computes the generation after that.
func (g *Grid) Advance() {
	for i := range g.cells {
		for j := range g.cells[i] {
			c := &g.cells[i][j]
			wasAlive := c.alive
			c.alive = c.aliveNext

			switch {
			case c.alive && wasAlive:
				c.age++
			case c.alive:
				// Born this generation. Set the age outright rather
				// than incrementing the dead sentinel.
				c.age = 0
			default:
				c.age = deadAge
			}
		}
	}
	g.computeNext()
	g.generation++
}

// computeNext fills aliveNext for every cell from the committed alive
// values. alive is never written here, so the neighbor counts always
// see the same generation.
func (g *Grid) computeNext() {
	for i := range g.cells {
		for j := range g.cells[i] {
			n := g.LiveNeighbors(i, j)
			g.cells[i][j].aliveNext = n == 3 || (n == 2 && g.cells[i][j].alive)
		}
	}
}

// LiveNeighbors counts the live cells in the Moore neighborhood of
// (row, col). Positions outside the grid are skipped, so the result is
// at most 3 for a corner cell, 5 for an edge cell and 8 for an interior
// cell.
func (g *Grid) LiveNeighbors(row, col int) int {
	sum := 0
	for i := row - 1; i <= row+1; i++ {
		for j := col - 1; j <= col+1; j++ {
			if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
				continue
			}
			if i == row && j == col {
				continue
			}
			if g.cells[i][j].alive {
				sum++
			}
		}
	}
	return sum
}

// Snapshot returns a copy of the visible state of every cell, indexed
// [row][col]. The copy does not alias grid memory.
func (g *Grid) Snapshot() [][]CellView {
	out := make([][]CellView, g.rows)
	for i := range out {
		out[i] = make([]CellView, g.cols)
		for j := range out[i] {
			out[i][j] = CellView{Alive: g.cells[i][j].alive, Age: g.cells[i][j].age}
		}
	}
	return out
}
