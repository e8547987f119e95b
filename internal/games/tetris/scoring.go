package tetris

// pointsPerLines is the base award for clearing 1..4 rows at once.
var pointsPerLines = [...]int{0, 40, 100, 300, 1200}

// PointsForClear returns the points for clearing the given number of rows in a
// single lock at the given level. Counts outside 1..4 score nothing.
func PointsForClear(level, lines int) int {
	if lines < 1 || lines >= len(pointsPerLines) {
		return 0
	}
	return pointsPerLines[lines] * (level + 1)
}

// LinesToNextLevel returns the cumulative line count at which the given level
// advances, for a round started at startLevel.
//
// The first level-up needs startLevel*10+10 lines, but never more than
// max(100, startLevel*10-50); every later level adds 10.
func LinesToNextLevel(startLevel, level int) int {
	firstLimit := min(startLevel*10+10, max(100, startLevel*10-50))
	if level == startLevel {
		return firstLimit
	}
	return firstLimit + (level-startLevel)*10
}
