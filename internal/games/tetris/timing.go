package tetris

// FrameDuration is the length of one reference frame in seconds.
const FrameDuration = 1.0 / 60.0

// FramesPerDrop is the gravity speed per level, in reference frames per row.
// Levels past the end of the table use the last entry.
var FramesPerDrop = [30]int{
	48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
	5, 5, 5, 4, 4, 4, 3, 3, 3, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 1,
}

// DropInterval returns the seconds between automatic one-row drops at a level.
func DropInterval(level int) float64 {
	level = max(0, min(level, len(FramesPerDrop)-1))
	return float64(FramesPerDrop[level]) * FrameDuration
}
