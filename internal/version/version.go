// Package version holds the product identity stamped into the default
// X-Mailer header field and reported by the CLI.
package version

import "github.com/coreos/go-semver/semver"

// Product is the name half of the X-Mailer value.
const Product = "mailout"

// Version is the release version of the library.
const Version = "0.3.0"

// Semver is the parsed release version. Parsing at init guards against a
// release being cut with a malformed Version string.
var Semver = semver.New(Version)

// Mailer returns the "<product> <version>" value used for the default
// X-Mailer header field.
func Mailer() string {
	return Product + " " + Version
}
