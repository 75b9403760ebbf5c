// ABOUTME: Cluster domain models for keyphrase topic groups computed by the provider
// ABOUTME: The clustering algorithm itself is external; these types only carry its output

package domain

// PhraseInfo is a keyphrase together with a back-reference to its source ad.
type PhraseInfo struct {
	// Phrase is the extracted keyphrase text
	Phrase string

	// AdTitle, AdURL and CreativeID point back at the ad the phrase came
	// from; any of them may be empty when the provider omitted them
	AdTitle    string
	AdURL      string
	CreativeID string
}

// Cluster is a group of semantically related keyphrases.
type Cluster struct {
	// ID is unique within the owning ClusterSet. After a merge the combined
	// set's ids form the dense range 0..N-1.
	ID int

	// Name is a short topic-level label for the cluster
	Name string

	// Size is the number of member phrases; always equals len(Phrases)
	Size int

	// Phrases are the member keyphrases
	Phrases []PhraseInfo
}

// ClusterSet is one clustering outcome: the clusters plus the phrases that
// did not fit any cluster.
type ClusterSet struct {
	Clusters     []Cluster
	Unclustered  []PhraseInfo
	TotalPhrases int

	// Error is set when the provider could fetch ads but not cluster them.
	// This is degraded data, not a failure: such a set contributes zero
	// clusters to a merge.
	Error string
}
