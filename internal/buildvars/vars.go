package buildvars

// set during build time with -ldflags "-X .../buildvars.buildVersion=..."
var (
	buildVersion = "dev"
	buildDate    = ""
	commitHash   = ""
	commitDate   = ""
	commitBranch = ""
)

// BuildVersion returns immutable build version
func BuildVersion() string {
	return buildVersion
}

// BuildDate returns immutable build date
func BuildDate() string {
	return buildDate
}

// CommitHash returns immutable git commit hash
func CommitHash() string {
	return commitHash
}

// CommitDate returns immutable commit date
func CommitDate() string {
	return commitDate
}

// CommitBranch returns immutable commit branch
func CommitBranch() string {
	return commitBranch
}
