package redundancy

import (
	"fmt"
)

// Similarity returns the similarity percentage between two fragments.
// Identical content hashes short-circuit to 100; otherwise the score is the
// Jaccard overlap of the token sets. Two empty token sets are 100% similar,
// an empty set against a non-empty one is 0%.
func Similarity(a, b Fragment) float64 {
	if a.ContentHash == b.ContentHash {
		return 100.0
	}

	aTokens := Tokenize(a.Content)
	bTokens := Tokenize(b.Content)

	if len(aTokens) == 0 && len(bTokens) == 0 {
		return 100.0
	}
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0.0
	}

	intersection := 0
	for tok := range aTokens {
		if _, ok := bTokens[tok]; ok {
			intersection++
		}
	}
	union := len(aTokens) + len(bTokens) - intersection

	return float64(intersection) / float64(union) * 100.0
}

// Cluster groups fragments whose similarity to a cluster's first member
// meets the threshold. Assignment is greedy and first-match-wins: a fragment
// joins at most one cluster. Singleton groups are dropped.
func Cluster(fragments []Fragment, threshold float64) [][]Fragment {
	var clusters [][]Fragment
	used := make(map[int]bool, len(fragments))

	for i := range fragments {
		if used[i] {
			continue
		}

		cluster := []Fragment{fragments[i]}
		used[i] = true

		for j := i + 1; j < len(fragments); j++ {
			if used[j] {
				continue
			}
			if Similarity(fragments[i], fragments[j]) >= threshold {
				cluster = append(cluster, fragments[j])
				used[j] = true
			}
		}

		if len(cluster) >= 2 {
			clusters = append(clusters, cluster)
		}
	}

	return clusters
}

// BuildReport converts raw clusters into the redundancy report.
func BuildReport(clusters [][]Fragment) *Report {
	report := &Report{Clusters: make([]ClusterSummary, 0, len(clusters))}

	for i, cluster := range clusters {
		savings := 0
		locations := make([]Location, 0, len(cluster))
		for k, frag := range cluster {
			if k > 0 {
				savings += frag.LineCount()
			}
			locations = append(locations, Location{
				File:  frag.SourceDocument,
				Lines: fmt.Sprintf("%d-%d", frag.StartLine, frag.EndLine),
				Size:  frag.LineCount(),
			})
		}

		report.Clusters = append(report.Clusters, ClusterSummary{
			ClusterID:             i + 1,
			BlockCount:            len(cluster),
			Locations:             locations,
			PotentialSavingsLines: savings,
			Recommendation:        recommendation(cluster),
		})
		report.TotalDuplicateBlocks += len(cluster)
	}

	report.TotalClusters = len(report.Clusters)
	return report
}

// recommendation suggests how to consolidate a cluster's duplicates.
func recommendation(cluster []Fragment) string {
	files := make(map[string]bool)
	first := ""
	for _, frag := range cluster {
		if first == "" {
			first = frag.SourceDocument
		}
		files[frag.SourceDocument] = true
	}

	if len(files) == 1 {
		return fmt.Sprintf("Multiple code blocks in %s - consider extracting to reusable function", first)
	}
	return fmt.Sprintf("Code appears in %d files - consider creating shared module", len(files))
}
