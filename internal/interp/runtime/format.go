package runtime

import "strconv"

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

func formatReal(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}
