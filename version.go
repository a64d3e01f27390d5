package adminlist

import "fmt"

// Semantic version of the contract. Suffix is empty for tagged releases.
const (
	Maj    = 0
	Min    = 1
	Fix    = 0
	Suffix = "-dev"
)

// ContractName is reported by the version command and stored with the
// contract configuration.
const ContractName = "adminlist"

// GitCommit is set at build time with
//   -ldflags "-X github.com/iov-one/adminlist.GitCommit=<hash>"
var GitCommit = ""

// Version returns the release name followed by the commit it was built
// from, if known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)
	if GitCommit == "" {
		return v
	}
	return v + " " + GitCommit
}
