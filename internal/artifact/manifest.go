package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// ErrChecksum is returned when artifact contents do not match the manifest.
var ErrChecksum = errors.New("artifact checksum mismatch")

// Kinds of artifact described by a manifest.
const (
	KindTables     = "phash-tables"
	KindTransition = "transition"
)

// Manifest describes a generated artifact.
type Manifest struct {
	BuildID   string    `json:"build_id"`
	Kind      string    `json:"kind"`
	HandSize  int       `json:"hand_size,omitempty"`
	Words     int       `json:"words"`
	States    int       `json:"states,omitempty"`
	SHA256    string    `json:"sha256"`
	CreatedAt time.Time `json:"created_at"`
}

// NewManifest describes words with a fresh build id.
func NewManifest(clock quartz.Clock, kind string, words []uint32) Manifest {
	return Manifest{
		BuildID:   uuid.NewString(),
		Kind:      kind,
		Words:     len(words),
		SHA256:    Checksum(words),
		CreatedAt: clock.Now().UTC(),
	}
}

// Checksum returns the hex SHA-256 of the encoded words.
func Checksum(words []uint32) string {
	sum := sha256.Sum256(Encode(words))
	return hex.EncodeToString(sum[:])
}

// Verify checks words against the manifest's length and checksum.
func (m Manifest) Verify(words []uint32) error {
	if len(words) != m.Words {
		return fmt.Errorf("%w: manifest %s lists %d words, artifact has %d", ErrSize, m.BuildID, m.Words, len(words))
	}
	if sum := Checksum(words); sum != m.SHA256 {
		return fmt.Errorf("%w: manifest %s has %s, artifact has %s", ErrChecksum, m.BuildID, m.SHA256, sum)
	}
	return nil
}

// ManifestPath returns the manifest location for an artifact path.
func ManifestPath(artifactPath string) string {
	return artifactPath + ".json"
}

// WriteManifest atomically writes m next to the artifact at artifactPath.
func WriteManifest(artifactPath string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	data = append(data, '\n')
	return WriteFileAtomic(ManifestPath(artifactPath), data, 0o644)
}

// ReadManifest loads the manifest for the artifact at artifactPath.
func ReadManifest(artifactPath string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(ManifestPath(artifactPath))
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse manifest: %w", err)
	}
	if _, err := uuid.Parse(m.BuildID); err != nil {
		return m, fmt.Errorf("manifest build id %q: %w", m.BuildID, err)
	}
	return m, nil
}
