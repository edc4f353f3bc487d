package model

// Version is the release reported by --version and compared by --update.
const Version = "v0.3.0"

// Repository coordinates used for the update check.
const (
	RepoOwner = "gwc-tools"
	RepoName  = "gwc"
)
