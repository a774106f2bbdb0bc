package dlrn

// A PackageVersion describes one row of a build's versions.csv report.
type PackageVersion struct {
	// Source is the source repository commit the package was built from.
	Source string `json:"source"`
	// State is the build state DLRN reports for the package.
	State string `json:"state"`
	// Distgit is the distgit commit of the packaging used for the build.
	Distgit string `json:"distgit"`
	// NVR is the name-version-release string of the built package.
	NVR string `json:"nvr"`
}

// Versions fetches the versions.csv report of the resolved build and returns
// its rows keyed by project name. Duplicate project rows overwrite earlier
// ones. The map is empty when the report cannot be fetched; it is recomputed
// on every call.
func (c *Client) Versions() map[string]PackageVersion {
	endpoint := joinURL(c.buildURL(Hashes{
		Commit:   c.commit.CommitHash,
		Dist:     c.commit.DistHash,
		Extended: c.commit.ExtendedHash,
	}), "versions.csv")

	versions := make(map[string]PackageVersion)
	rows := c.parseCSV(endpoint)
	for {
		row, ok := rows.Next()
		if !ok {
			break
		}
		versions[row["Project"]] = PackageVersion{
			Source:  row["Source_Sha"],
			State:   row["Status"],
			Distgit: row["Dist_Sha"],
			NVR:     row["Pkg_NVR"],
		}
	}
	return versions
}
