package collect

import (
	"image"
	"sort"

	"github.com/seerworks/styleseer/internal/signals"
)

const (
	// Channels are bucketed at 4 bits, giving 4096 possible buckets.
	bucketShift = 4

	// Pixels are sampled at this stride; full scans add nothing but time.
	sampleStride = 5

	// Pixels more transparent than this are page chrome, not design.
	alphaCutoff = 125

	maxDominantColors = 10
)

type bucketStat struct {
	count   int
	sumR    int
	sumG    int
	sumB    int
	firstAt int
}

// DominantColors quantizes an image into coarse RGB buckets and returns
// the mean color of the most populated ones, most frequent first. Ties
// break on first appearance, so identical screenshots always produce the
// same palette.
func DominantColors(img image.Image, max int) []signals.RGB {
	if img == nil || max <= 0 {
		return nil
	}

	stats := map[uint16]*bucketStat{}
	bounds := img.Bounds()
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			idx++
			if idx%sampleStride != 0 {
				continue
			}
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16>>8 < alphaCutoff {
				continue
			}
			r, g, b := int(r16>>8), int(g16>>8), int(b16>>8)
			key := uint16(r>>bucketShift)<<8 | uint16(g>>bucketShift)<<4 | uint16(b>>bucketShift)
			stat, ok := stats[key]
			if !ok {
				stat = &bucketStat{firstAt: idx}
				stats[key] = stat
			}
			stat.count++
			stat.sumR += r
			stat.sumG += g
			stat.sumB += b
		}
	}
	if len(stats) == 0 {
		return nil
	}

	ranked := make([]*bucketStat, 0, len(stats))
	for _, stat := range stats {
		ranked = append(ranked, stat)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].firstAt < ranked[j].firstAt
	})
	if len(ranked) > max {
		ranked = ranked[:max]
	}

	colors := make([]signals.RGB, 0, len(ranked))
	for _, stat := range ranked {
		colors = append(colors, signals.RGB{
			R: stat.sumR / stat.count,
			G: stat.sumG / stat.count,
			B: stat.sumB / stat.count,
		})
	}
	return colors
}
