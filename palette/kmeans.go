package palette

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sync"

	cwimage "github.com/mmuldo/colorweave/image"
)

// Point is a color in RGB space weighted by the number of pixels that
// have it.
type Point struct {
	Coords [3]float64
	Count  int
}

// Cluster is a group of points and their weighted mean.
type Cluster struct {
	Points []Point
	Center [3]float64
}

func euclidean(a, b [3]float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s)
}

// center returns the count-weighted mean of points, or old when there
// are none.
func center(points []Point, old [3]float64) [3]float64 {
	var vals [3]float64
	n := 0
	for _, p := range points {
		n += p.Count
		for i := range vals {
			vals[i] += p.Coords[i] * float64(p.Count)
		}
	}
	if n == 0 {
		return old
	}
	for i := range vals {
		vals[i] /= float64(n)
	}
	return vals
}

// nearestCluster returns the index of the center closest to p. The
// lowest index wins ties.
func nearestCluster(p Point, clusters []Cluster) int {
	idx := 0
	smallest := math.Inf(1)
	for i, c := range clusters {
		if d := euclidean(p.Coords, c.Center); d < smallest {
			smallest, idx = d, i
		}
	}
	return idx
}

// assign finds the nearest cluster of every point, splitting the work
// across workers goroutines.
func assign(points []Point, clusters []Cluster, workers int) []int {
	idx := make([]int, len(points))
	if workers <= 1 || len(points) < 2*workers {
		for i, p := range points {
			idx[i] = nearestCluster(p, clusters)
		}
		return idx
	}

	chunk := (len(points) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(points); start += chunk {
		end := min(start+chunk, len(points))
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				idx[i] = nearestCluster(points[i], clusters)
			}
		}(start, end)
	}
	wg.Wait()

	return idx
}

// KMeans partitions points into k clusters with Lloyd's method, starting
// from k distinct points drawn with rng. It stops once no center moves by
// minDiff or more in an iteration; there is no iteration cap.
func KMeans(points []Point, k int, minDiff float64, rng *rand.Rand, workers int) ([]Cluster, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: clusters = %d", ErrInvalidParameter, k)
	}
	if minDiff <= 0 {
		return nil, fmt.Errorf("%w: convergence = %v", ErrInvalidParameter, minDiff)
	}
	if k > len(points) {
		return nil, fmt.Errorf("%w: %d clusters, %d colors", ErrTooFewColors, k, len(points))
	}
	if rng == nil {
		rng = Config{}.newRand()
	}

	clusters := make([]Cluster, k)
	for i, j := range rng.Perm(len(points))[:k] {
		clusters[i] = Cluster{Points: []Point{points[j]}, Center: points[j].Coords}
	}

	for {
		plists := make([][]Point, k)
		for i, c := range assign(points, clusters, workers) {
			plists[c] = append(plists[c], points[i])
		}

		diff := 0.0
		for i := range clusters {
			old := clusters[i]
			clusters[i] = Cluster{Points: plists[i], Center: center(plists[i], old.Center)}
			diff = math.Max(diff, euclidean(old.Center, clusters[i].Center))
		}

		if diff < minDiff {
			return clusters, nil
		}
	}
}

// Points returns one point per distinct color of img.
func Points(img *image.RGBA) []Point {
	hist := cwimage.GetColors(img)
	points := make([]Point, len(hist))
	for i, cc := range hist {
		points[i] = Point{
			Coords: [3]float64{float64(cc.Color.R), float64(cc.Color.G), float64(cc.Color.B)},
			Count:  cc.Count,
		}
	}
	return points
}

func round(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// ExtractKMeans clusters the distinct colors of img into cfg.Clusters
// groups and returns their centers in cluster order.
func ExtractKMeans(img image.Image, cfg Config) (*Palette, error) {
	if e := cfg.Validate(); e != nil {
		return nil, e
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	log := cfg.logger().Named("kmeans")

	rgba := cwimage.Thumbnail(cwimage.ToRGBA(img), cfg.ThumbnailSize)
	points := Points(rgba)
	log.Debug("points", "colors", len(points), "clusters", cfg.Clusters)

	clusters, e := KMeans(points, cfg.Clusters, cfg.Convergence, cfg.newRand(), cfg.Workers)
	if e != nil {
		return nil, e
	}

	colors := make([]Color, len(clusters))
	for i, c := range clusters {
		n := 0
		for _, p := range c.Points {
			n += p.Count
		}
		colors[i] = Color{
			RGB:   RGB{round(c.Center[0]), round(c.Center[1]), round(c.Center[2])},
			Count: n,
		}
	}

	return &Palette{Colors: colors}, nil
}
