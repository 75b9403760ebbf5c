// ABOUTME: Result combiner that merges per-domain ad sets and cluster sets
// ABOUTME: Produces one coherent view with globally unique, densely assigned cluster ids

package ads

import (
	"sort"

	"keyword-analysis-api/core/domain"
)

// combine concatenates the succeeded domains' ads in submission order and
// merges their per-domain cluster sets into one set whose cluster ids form
// the dense range 0..N-1. The caller guarantees succeeded is non-empty.
func combine(succeeded []domain.DomainResult) *domain.CombinedResult {
	result := &domain.CombinedResult{
		Domains: make([]string, 0, len(succeeded)),
		Ads:     make([]domain.Ad, 0),
	}

	for _, dr := range succeeded {
		result.Domains = append(result.Domains, dr.Domain)
		result.Ads = append(result.Ads, dr.Ads...)
	}
	result.AdsCount = len(result.Ads)

	result.Clustering = mergeClusterSets(succeeded)

	return result
}

// mergeClusterSets merges per-domain cluster sets. Domains without
// clustering contribute nothing. When no domain has clustering data the
// result is nil: "clustering not attempted" is distinct from a set with
// zero phrases.
func mergeClusterSets(succeeded []domain.DomainResult) *domain.ClusterSet {
	var merged *domain.ClusterSet
	offset := 0

	for _, dr := range succeeded {
		cs := dr.Clustering
		if cs == nil {
			continue
		}
		if merged == nil {
			merged = &domain.ClusterSet{
				Clusters:    make([]domain.Cluster, 0),
				Unclustered: make([]domain.PhraseInfo, 0),
			}
		}

		// Offset the incoming ids by the number of clusters merged so far
		// so ids never collide across domains.
		for _, cluster := range cs.Clusters {
			cluster.ID += offset
			merged.Clusters = append(merged.Clusters, cluster)
		}
		offset += len(cs.Clusters)

		merged.Unclustered = append(merged.Unclustered, cs.Unclustered...)
		merged.TotalPhrases += cs.TotalPhrases
	}

	if merged == nil {
		return nil
	}

	// Largest clusters first; stable so ties keep append order.
	sort.SliceStable(merged.Clusters, func(i, j int) bool {
		return merged.Clusters[i].Size > merged.Clusters[j].Size
	})

	// Dense re-id following the sorted order, overwriting the offset ids.
	for i := range merged.Clusters {
		merged.Clusters[i].ID = i
	}

	return merged
}
