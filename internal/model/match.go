package model

// Match pairs a local script or bundle with the registry package version
// whose complete file-hash set it satisfies.
type Match struct {
	Package RegistryPackage
	Version RegistryPackageVersion
	Local   Script
}

// SearchResult is one package returned by a search, with its local usage
// when saves were provided.
type SearchResult struct {
	Package RegistryPackage
	Trusted bool
	Scripts []Script
	Scenes  []Path
}
