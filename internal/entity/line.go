package entity

// Lines - the 8 winning triples: rows, then columns, then the two diagonals.
// Scan order over this table is the tie-break order used by the policies.
var Lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Center is the middle cell of the board.
var Center = Move{Row: 1, Col: 1}
