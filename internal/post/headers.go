package post

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-mdblog/internal/yamlutil"
)

// MaxDescriptionWords bounds the derived description.
const MaxDescriptionWords = 100

// descriptionSuffix is appended to derived descriptions.
const descriptionSuffix = "..."

var (
	errMissingCreated = errors.New("missing required field 'created'")
	errInvalidCreated = errors.New("field 'created' must be an RFC3339 timestamp")
)

// Headers is the metadata block at the top of a post file.
//
//	created: 2024-03-01T10:00:00+08:00
//	hidden: false
//	tags: [hello, world]
//	description: optional summary
//	title: optional title
type Headers struct {
	Created     time.Time `yaml:"created"`
	Hidden      bool      `yaml:"hidden"`
	Tags        []string  `yaml:"tags"`
	Description string    `yaml:"description"`
	Title       string    `yaml:"title"`
}

// rawHeaders keeps created as text so the timestamp format is checked
// here rather than by the YAML decoder's own time heuristics.
type rawHeaders struct {
	Created     string   `yaml:"created"`
	Hidden      bool     `yaml:"hidden"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
	Title       string   `yaml:"title"`
}

// parseHeaders decodes a trimmed header block.
func parseHeaders(head string) (Headers, error) {
	var raw rawHeaders
	if err := yamlutil.Unmarshal([]byte(head), &raw); err != nil {
		return Headers{}, err
	}

	created := strings.TrimSpace(raw.Created)
	if created == "" {
		return Headers{}, errMissingCreated
	}
	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return Headers{}, fmt.Errorf("%w: %q", errInvalidCreated, created)
	}

	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}
	return Headers{
		Created:     ts,
		Hidden:      raw.Hidden,
		Tags:        tags,
		Description: raw.Description,
		Title:       raw.Title,
	}, nil
}

// deriveDescription summarizes the first paragraph of body: at most
// MaxDescriptionWords whitespace-delimited words followed by "...".
func deriveDescription(body, separator string) string {
	first, _, _ := strings.Cut(body, separator)
	words := strings.Fields(first)
	if len(words) > MaxDescriptionWords {
		words = words[:MaxDescriptionWords]
	}
	desc := strings.Join(words, " ")
	if desc == "" {
		return ""
	}
	return desc + descriptionSuffix
}
