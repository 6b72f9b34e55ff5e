package image

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/farbraum/deltae/pkg/deltae"
)

// DominantExtractor finds an image's dominant colour by k-means clustering
// in L*a*b* space. Distances between samples and centroids are CIE76, so
// clusters form along perceptual boundaries rather than RGB ones.
type DominantExtractor struct {
	clusters      int
	maxIterations int
	convergence   float64
}

// NewDominantExtractor creates an extractor that partitions samples into
// the given number of clusters. Cluster counts outside [1, 64] are rejected.
func NewDominantExtractor(clusters int) (*DominantExtractor, error) {
	if clusters < 1 || clusters > 64 {
		return nil, fmt.Errorf("cluster count must be between 1 and 64, got %d", clusters)
	}
	return &DominantExtractor{
		clusters:      clusters,
		maxIterations: 20,
		convergence:   0.5,
	}, nil
}

// Extract returns the centroid of the largest cluster.
func (e *DominantExtractor) Extract(img image.Image) (deltae.Lab, error) {
	if img == nil {
		return deltae.Lab{}, fmt.Errorf("image cannot be nil")
	}

	samples := sampleLab(img, maxMeanSamples)
	if len(samples) == 0 {
		return deltae.Lab{}, fmt.Errorf("image has no pixels")
	}
	if e.clusters >= len(samples) {
		return MeanLab(img), nil
	}

	centroids, weights := e.kmeans(samples)

	dominant := 0
	for i, w := range weights {
		if w > weights[dominant] {
			dominant = i
		}
	}
	return centroids[dominant], nil
}

// kmeans clusters the samples and returns centroids with their relative
// cluster sizes. The generator is seeded deterministically so repeated runs
// on the same image agree.
func (e *DominantExtractor) kmeans(samples []deltae.Lab) ([]deltae.Lab, []float64) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 - Clustering seed, not security-sensitive
	centroids := e.seedCentroids(rng, samples)
	assignments := make([]int, len(samples))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, s := range samples {
			nearest := nearestCentroid(s, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		// Under 1% reassignment counts as converged.
		if float64(changed)/float64(len(samples)) < 0.01 {
			break
		}

		next := e.recentre(rng, samples, assignments)

		movement := 0.0
		for i := range centroids {
			movement += deltae.CIE76(centroids[i], next[i])
		}
		centroids = next
		if movement/float64(e.clusters) < e.convergence {
			break
		}
	}

	weights := make([]float64, e.clusters)
	for _, a := range assignments {
		weights[a]++
	}
	total := float64(len(assignments))
	for i := range weights {
		weights[i] /= total
	}

	return centroids, weights
}

// seedCentroids picks initial centroids with k-means++ weighting: each new
// centroid is drawn with probability proportional to its squared distance
// from the nearest existing one.
func (e *DominantExtractor) seedCentroids(rng *rand.Rand, samples []deltae.Lab) []deltae.Lab {
	centroids := make([]deltae.Lab, 0, e.clusters)
	centroids = append(centroids, samples[rng.Intn(len(samples))])

	distances := make([]float64, len(samples))
	for len(centroids) < e.clusters {
		total := 0.0
		for i, s := range samples {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := deltae.CIE76(s, c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Every sample coincides with a centroid already. Nudge a copy
			// so the remaining slots stay populated.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, deltae.Lab{L: last.L + 0.1, A: last.A, B: last.B})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, samples[i])
				break
			}
		}
	}

	return centroids
}

func nearestCentroid(s deltae.Lab, centroids []deltae.Lab) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := deltae.CIE76(s, c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recentre moves each centroid to the mean of its assigned samples. Empty
// clusters are reseeded from a random sample.
func (e *DominantExtractor) recentre(rng *rand.Rand, samples []deltae.Lab, assignments []int) []deltae.Lab {
	sums := make([]deltae.Lab, e.clusters)
	counts := make([]int, e.clusters)
	for i, s := range samples {
		cluster := assignments[i]
		sums[cluster].L += s.L
		sums[cluster].A += s.A
		sums[cluster].B += s.B
		counts[cluster]++
	}

	centroids := make([]deltae.Lab, e.clusters)
	for i := range centroids {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = deltae.Lab{L: sums[i].L / n, A: sums[i].A / n, B: sums[i].B / n}
		} else {
			centroids[i] = samples[rng.Intn(len(samples))]
		}
	}
	return centroids
}
