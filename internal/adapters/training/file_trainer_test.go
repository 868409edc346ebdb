package training

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileCheckTrainerSkipsWhenArtifactsExist(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"clustering_model.pkl", "distance_prediction_model.pkl"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("model"), 0o644); err != nil {
			t.Fatalf("write artifact: %v", err)
		}
	}

	trainer := &FileCheckTrainer{
		ModelsDir: dir,
		Artifacts: []string{"clustering_model.pkl", "distance_prediction_model.pkl"},
		// A command that would fail if it ran.
		Command: []string{"sh", "-c", "exit 1"},
	}

	if err := trainer.Train(context.Background()); err != nil {
		t.Fatalf("expected skip, got error: %v", err)
	}
}

func TestFileCheckTrainerRunsCommand(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "ran")

	trainer := &FileCheckTrainer{
		ModelsDir: dir,
		Artifacts: []string{"clustering_model.pkl"},
		Command:   []string{"sh", "-c", "touch " + marker},
	}

	if err := trainer.Train(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("training command did not run: %v", err)
	}
}

func TestFileCheckTrainerReportsCommandOutput(t *testing.T) {
	trainer := &FileCheckTrainer{
		ModelsDir: t.TempDir(),
		Artifacts: []string{"clustering_model.pkl"},
		Command:   []string{"sh", "-c", "echo no training data; exit 3"},
	}

	err := trainer.Train(context.Background())
	if err == nil {
		t.Fatal("expected error from failing command")
	}
	if !strings.Contains(err.Error(), "no training data") {
		t.Fatalf("error does not carry command output: %v", err)
	}
}

func TestFileCheckTrainerRequiresCommand(t *testing.T) {
	trainer := &FileCheckTrainer{
		ModelsDir: t.TempDir(),
		Artifacts: []string{"clustering_model.pkl"},
	}

	if err := trainer.Train(context.Background()); err == nil {
		t.Fatal("expected error when no command is configured")
	}
}
