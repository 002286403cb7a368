package image

import (
	"fmt"
	"time"

	"github.com/distribution/reference"
)

// tagFormat derives the tag from the deploy time at one-second resolution,
// which is what guarantees uniqueness across consecutive deploys.
const tagFormat = "20060102150405"

// Tag returns the image reference for a deploy at the given time, e.g.
// docserver:20260823142557. The reference is validated against the
// distribution grammar, and the configured repository must be a bare name
// so the timestamp is the only tag.
func Tag(repository string, now time.Time) (string, error) {
	named, err := reference.ParseNormalizedNamed(repository)
	if err != nil {
		return "", fmt.Errorf("invalid image repository %q: %w", repository, err)
	}

	if !reference.IsNameOnly(named) {
		return "", fmt.Errorf("image repository %q must not carry a tag or digest", repository)
	}

	tagged, err := reference.WithTag(named, now.UTC().Format(tagFormat))
	if err != nil {
		return "", fmt.Errorf("failed to tag image reference: %w", err)
	}

	return reference.FamiliarString(tagged), nil
}
