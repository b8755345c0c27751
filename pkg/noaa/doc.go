// Package noaa queries NOAA CO-OPS for high and low tide predictions at a
// station. A query names a station and a window of days; the answer is a time
// series of predictions with time, height in feet above MLLW, and whether the
// tide is high or low. Times are station local and carry the location the
// query was made with.
package noaa
