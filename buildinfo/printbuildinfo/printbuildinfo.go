// Package printbuildinfo is imported for the side effect of printing the
// build information banner to stderr.
package printbuildinfo

import "github.com/NYU-Molecular-Pathology/sns-classes/buildinfo"

func init() {
	buildinfo.Banner()
}
