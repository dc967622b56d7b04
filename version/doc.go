// Package version provides build metadata for the fraghash binaries.
//
// Values come from compile-time variables set with -ldflags, falling back
// to the VCS stamp the go tool embeds (debug.ReadBuildInfo) and finally to
// placeholder values for development builds.
//
// The commit hash doubles as the writer identity recorded in every
// manifest header ("writer=fraghash@<commit>"), so two manifests can be
// traced back to the build that produced them:
//
//	go build -ldflags "-X github.com/dendrascience/fraghash/version.Commit=$(git rev-parse HEAD)"
package version
