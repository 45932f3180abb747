package models

// Shared-tier instance sizes; the clusters API rejects pause requests for
// these.
var nonPausableSizes = map[string]bool{
	"M0": true,
	"M2": true,
	"M5": true,
}

// Cluster holds the fields of an Atlas cluster the sweep cares about.
type Cluster struct {
	ProjectID    string
	Name         string
	ProviderName string // AWS, GCP, AZURE, or TENANT for shared tiers
	InstanceSize string // M0, M10, M30, ...
	Paused       bool
}

// IsPausable reports whether the cluster runs on a tier that supports the
// pause operation. Shared (tenant) clusters do not.
func (c Cluster) IsPausable() bool {
	if c.ProviderName == "TENANT" {
		return false
	}
	return !nonPausableSizes[c.InstanceSize]
}
