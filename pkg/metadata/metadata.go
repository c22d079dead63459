// Package metadata stamps generated documents with a provenance block and
// verifies that they have not been edited since generation.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// TagStart is the start of the metadata block.
	TagStart = "<!-- METADATA_START"
	// TagEnd is the end of the metadata block.
	TagEnd = "METADATA_END -->"
)

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata contains the provenance recorded in a document.
type Metadata struct {
	LastModify time.Time
	Generator  string
	RunID      string
	Hash       string
}

// Stamp describes the run that produced a document.
type Stamp struct {
	Generator string
	RunID     string
	Time      time.Time
}

// metadataRegex matches the entire metadata block including tags.
var metadataRegex = regexp.MustCompile(`(?s)<!--\s*METADATA_START\s*\n(.*?)\n\s*METADATA_END\s*-->`)

// Extract removes the metadata block from content and returns both the metadata and the cleaned content.
// The cleaned content is what gets hashed.
func Extract(content string) (*Metadata, string) {
	match := metadataRegex.FindStringSubmatch(content)
	cleanContent := metadataRegex.ReplaceAllString(content, "")
	// Trim trailing newlines from cleaned content for consistent hashing
	cleanContent = strings.TrimRight(cleanContent, "\n")

	if len(match) < 2 {
		return nil, cleanContent
	}

	meta := &Metadata{}

	for line := range strings.SplitSeq(match[1], "\n") {
		key, val, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}

		val = strings.TrimSpace(val)

		switch strings.TrimSpace(key) {
		case "GENERATOR":
			meta.Generator = val
		case "RUN_ID":
			meta.RunID = val
		case "LAST_MODIFY":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.LastModify = t
			}
		case "HASH":
			meta.Hash = val
		}
	}

	return meta, cleanContent
}

// CalculateHash computes the SHA-256 hash of the content (excluding metadata).
func CalculateHash(content string) string {
	_, clean := Extract(content)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign replaces any metadata block with a fresh one for stamp.
// A zero stamp time means now.
func Sign(content string, stamp Stamp) string {
	_, clean := Extract(content)

	when := stamp.Time
	if when.IsZero() {
		when = time.Now()
	}

	var sb strings.Builder

	sb.WriteString(clean)
	sb.WriteString("\n\n")
	sb.WriteString(TagStart + "\n")

	if stamp.Generator != "" {
		sb.WriteString("GENERATOR: " + stamp.Generator + "\n")
	}

	if stamp.RunID != "" {
		sb.WriteString("RUN_ID: " + stamp.RunID + "\n")
	}

	sb.WriteString("LAST_MODIFY: " + when.UTC().Format(time.RFC3339) + "\n")
	sb.WriteString("HASH: " + CalculateHash(clean) + "\n")
	sb.WriteString(TagEnd + "\n")

	return sb.String()
}

// SameContent reports whether two documents differ only in their metadata.
func SameContent(a, b string) bool {
	_, cleanA := Extract(a)
	_, cleanB := Extract(b)

	return cleanA == cleanB
}

// Verify checks if the content matches the hash in its metadata.
func Verify(content string) (bool, error) {
	meta, clean := Extract(content)
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(clean)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}
