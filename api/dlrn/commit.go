package dlrn

// A Commit identifies the latest successful build of a release: the source
// project plus the hashes DLRN combines into the build directory name. The
// zero value means no successful build could be resolved.
type Commit struct {
	Name         string `json:"name"`
	CommitHash   string `json:"commit_hash"`
	DistHash     string `json:"dist_hash"`
	ExtendedHash string `json:"extended_hash"`
}

// Empty reports whether the commit record was resolved.
func (c Commit) Empty() bool {
	return c == Commit{}
}

// commitEntry is one element of the `commits` list in commit.yaml.
type commitEntry struct {
	Status       string `yaml:"status"`
	ProjectName  string `yaml:"project_name"`
	CommitHash   string `yaml:"commit_hash"`
	DistroHash   string `yaml:"distro_hash"`
	ExtendedHash string `yaml:"extended_hash"`
}

type commitManifest struct {
	Commits []commitEntry `yaml:"commits"`
}

// Commit returns the commit record resolved at construction time.
func (c *Client) Commit() Commit {
	return c.commit
}

// fetchCommit resolves the commit record from the release's symlinked
// commit.yaml. Any failure leaves the record empty.
func (c *Client) fetchCommit() {
	endpoint := joinURL(c.URL, c.link, "commit.yaml")

	var manifest commitManifest
	fetched, err := c.fetchYAML(endpoint, &manifest)
	if err != nil {
		c.log.WithError(err).Warnf("could not parse %s", endpoint)
		return
	}
	if !fetched || len(manifest.Commits) == 0 {
		return
	}

	latest := manifest.Commits[0]
	if latest.Status != "SUCCESS" {
		c.log.Warnf("%+v has a status of error", latest)
		return
	}

	c.commit = Commit{
		Name:         latest.ProjectName,
		CommitHash:   latest.CommitHash,
		DistHash:     normalizeHash(latest.DistroHash),
		ExtendedHash: normalizeHash(latest.ExtendedHash),
	}
}
