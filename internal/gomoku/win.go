package gomoku

// direction is a line orientation as a (dCol, dRow) step.
type direction struct {
	dCol int
	dRow int
}

// Checked in this order: horizontal, vertical, main diagonal, anti-diagonal.
var directions = [4]direction{
	{dCol: 1, dRow: 0},
	{dCol: 0, dRow: 1},
	{dCol: 1, dRow: 1},
	{dCol: 1, dRow: -1},
}

// IsWin reports whether the stone on (col, row) sits in a line of exactly
// WinLength stones of its color. Overlines do not win.
func IsWin(board *Board, col, row int) bool {
	return len(WinningLines(board, col, row)) > 0
}

// WinningLines returns every orientation through (col, row) that forms a line of
// exactly WinLength stones, each as the list of its moves from one end to the other.
func WinningLines(board *Board, col, row int) [][]Move {
	if !board.InBounds(col, row) {
		return nil
	}

	owner := board.At(col, row)
	if owner == Empty {
		return nil
	}

	var lines [][]Move
	for _, dir := range directions {
		back := countRun(board, col, row, -dir.dCol, -dir.dRow, owner)
		forward := countRun(board, col, row, dir.dCol, dir.dRow, owner)

		if back+1+forward != WinLength {
			continue
		}

		line := make([]Move, 0, WinLength)
		startCol, startRow := col-back*dir.dCol, row-back*dir.dRow
		for i := 0; i < WinLength; i++ {
			line = append(line, Move{Col: startCol + i*dir.dCol, Row: startRow + i*dir.dRow, Player: owner})
		}
		lines = append(lines, line)
	}

	return lines
}

// countRun counts consecutive owner stones after (col, row) in one direction.
// It looks at most WinLength cells away; a side that long already makes an overline.
func countRun(board *Board, col, row, dCol, dRow int, owner Cell) int {
	count := 0
	for i := 1; i <= WinLength; i++ {
		c, r := col+i*dCol, row+i*dRow
		if !board.InBounds(c, r) || board.At(c, r) != owner {
			break
		}
		count++
	}
	return count
}
