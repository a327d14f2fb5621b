package corpus

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/AppleHolic/dvector/pkg/tensor"
)

// SpeakerDir returns the output directory name for a speaker, e.g.
// SpeakerDir(7, "p225") == "s0007(p225)". Indices wider than four digits are
// written in full.
func SpeakerDir(index int, speakerID string) string {
	return fmt.Sprintf("s%04d(%s)", index, speakerID)
}

// ArtifactName returns the artifact file name for an utterance.
func ArtifactName(utteranceID string) string {
	return utteranceID + tensor.FileExt
}

// ArtifactPath returns the store path of an utterance artifact.
func ArtifactPath(index int, speakerID, utteranceID string) string {
	return path.Join(SpeakerDir(index, speakerID), ArtifactName(utteranceID))
}

// UtteranceID strips the directory and the final extension from an audio
// path: "/c/alice/a.wav" -> "a", "x.y.wav" -> "x.y".
func UtteranceID(audioPath string) string {
	base := filepath.Base(audioPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
