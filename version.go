package pokespeare

// Version information for pokespeare.
// These values can be overridden at build time using ldflags:
//
//	go build -ldflags "-X github.com/pokespeare/pokespeare.Version=1.0.0"
const (
	// Name is the application name.
	Name = "pokespeare"

	// Description is a short description of the application.
	Description = "Shakespearean Pokemon description gateway"

	// Version is the semantic version of the application.
	// Override at build time with ldflags for releases.
	Version = "0.1.0"
)

// BuildInfo contains build-time information.
// These are typically set via ldflags during build.
var (
	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// FullVersion returns the version string with optional build info.
func FullVersion() string {
	v := Version
	if GitCommit != "unknown" && GitCommit != "" {
		short := GitCommit
		if len(short) > 7 {
			short = short[:7]
		}
		v += "+" + short
	}
	return v
}

// UserAgent returns a user agent string for HTTP requests.
func UserAgent() string {
	return Name + "/" + Version
}
