package training

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FileCheckTrainer treats model training as an external black box.
//
// If every expected artifact already exists under ModelsDir, training is
// skipped. Otherwise the configured command runs to completion and its
// combined output is attached to any failure, so the orchestrator can
// report subprocess diagnostics to the caller.
type FileCheckTrainer struct {
	ModelsDir string
	Artifacts []string
	Command   []string
}

func (t *FileCheckTrainer) Train(ctx context.Context) error {
	if t.artifactsExist() {
		log.Printf("stage=training models already exist, skipping")
		return nil
	}

	if len(t.Command) == 0 {
		return errors.New("train models: no training command configured")
	}

	if err := os.MkdirAll(t.ModelsDir, 0o755); err != nil {
		return fmt.Errorf("train models: create models dir %q: %w", t.ModelsDir, err)
	}

	log.Printf("stage=training cmd=%q", strings.Join(t.Command, " "))
	cmd := exec.CommandContext(ctx, t.Command[0], t.Command[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("train models: run %q: %w: %s", t.Command[0], err, strings.TrimSpace(string(out)))
	}

	return nil
}

func (t *FileCheckTrainer) artifactsExist() bool {
	if len(t.Artifacts) == 0 {
		return false
	}
	for _, name := range t.Artifacts {
		if _, err := os.Stat(filepath.Join(t.ModelsDir, name)); err != nil {
			return false
		}
	}
	return true
}
