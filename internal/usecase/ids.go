package usecase

import "github.com/google/uuid"

// Namespace for workflow-derived record ids.
var derivacaoNamespace = uuid.MustParse("7c9e3a1d-52f4-4b8e-9f0a-6d2c8b5e4a17")

// derivedID returns the deterministic id of the record derived from sourceID
// for one purpose. Retrying a workflow re-derives the same id, so the store's
// conditional create rejects the duplicate instead of relying on scans.
func derivedID(sourceID, purpose string) string {
	return uuid.NewSHA1(derivacaoNamespace, []byte(sourceID+":"+purpose)).String()
}
