// Package buildinfo carries the version identity stamped into viewbox
// binaries at build time:
//
//	go build -ldflags "\
//	    -X github.com/ericcole/ViewBox/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/ericcole/ViewBox/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/ericcole/ViewBox/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds identify themselves as "dev".
package buildinfo

var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the short git revision the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)
