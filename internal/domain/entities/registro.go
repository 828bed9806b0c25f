package entities

// Registro is implemented by every entity persisted in a named collection.
// The store only ever addresses records by this id.
type Registro interface {
	RegistroID() string
}

// Versionado marks entities protected by optimistic concurrency. Writes to a
// versioned record are conditional on the version read by the caller, so the
// second writer of a racing pair fails instead of silently overwriting.
type Versionado interface {
	RegistroVersion() int64
}
