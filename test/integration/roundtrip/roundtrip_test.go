package roundtrip_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anwit-paul/encryption-conversion/cmd"

	"github.com/spf13/cobra"
)

// runCommand executes the CLI with the given arguments against a fresh
// root command, the way main does.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd.ResetGlobalState()

	root := &cobra.Command{
		Use:          "pixelock",
		SilenceUsage: true,
	}
	cmd.RegisterCommands(root)
	root.SetArgs(args)
	return root.Execute()
}

// isolate redirects the config dir and passphrase env for one test.
func isolate(t *testing.T, passphrase string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(cmd.PassphraseEnvVar, passphrase)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	isolate(t, "1234")

	imagePath := filepath.Join(t.TempDir(), "secret.png")
	if err := runCommand(t, "encode", "--text", "hello", "--out", imagePath); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if _, err := os.Stat(imagePath); err != nil {
		t.Fatalf("encode did not write the image: %v", err)
	}

	textPath := filepath.Join(t.TempDir(), "recovered.txt")
	if err := runCommand(t, "decode", "--in", imagePath, "--out", textPath); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	recovered, err := os.ReadFile(textPath)
	if err != nil {
		t.Fatalf("failed to read recovered text: %v", err)
	}
	if string(recovered) != "hello" {
		t.Errorf("expected %q, got %q", "hello", recovered)
	}
}

func TestEncodeFromFile(t *testing.T) {
	isolate(t, "1234")

	textPath := filepath.Join(t.TempDir(), "message.txt")
	if err := os.WriteFile(textPath, []byte("a longer message read from a file"), 0600); err != nil {
		t.Fatalf("failed to write message file: %v", err)
	}

	imagePath := filepath.Join(t.TempDir(), "secret.png")
	if err := runCommand(t, "encode", "--in", textPath, "--out", imagePath); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	recoveredPath := filepath.Join(t.TempDir(), "recovered.txt")
	if err := runCommand(t, "decode", "--in", imagePath, "--out", recoveredPath); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	recovered, err := os.ReadFile(recoveredPath)
	if err != nil {
		t.Fatalf("failed to read recovered text: %v", err)
	}
	if string(recovered) != "a longer message read from a file" {
		t.Errorf("round trip mismatch: got %q", recovered)
	}
}

func TestDecodeWrongPassphrase(t *testing.T) {
	isolate(t, "1234")

	imagePath := filepath.Join(t.TempDir(), "secret.png")
	if err := runCommand(t, "encode", "--text", "hello", "--out", imagePath); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	t.Setenv(cmd.PassphraseEnvVar, "0000")
	if err := runCommand(t, "decode", "--in", imagePath); err == nil {
		t.Error("expected decode with the wrong passphrase to fail")
	}
}

func TestLongFlagAliases(t *testing.T) {
	isolate(t, "1234")

	imagePath := filepath.Join(t.TempDir(), "secret.png")
	if err := runCommand(t, "encode", "--text", "hello", "--output", imagePath); err != nil {
		t.Fatalf("encode with --output failed: %v", err)
	}

	textPath := filepath.Join(t.TempDir(), "recovered.txt")
	if err := runCommand(t, "decode", "--input", imagePath, "--output", textPath); err != nil {
		t.Fatalf("decode with --input failed: %v", err)
	}

	recovered, err := os.ReadFile(textPath)
	if err != nil {
		t.Fatalf("failed to read recovered text: %v", err)
	}
	if string(recovered) != "hello" {
		t.Errorf("expected %q, got %q", "hello", recovered)
	}
}

func TestInspectEncodedImage(t *testing.T) {
	isolate(t, "1234")

	imagePath := filepath.Join(t.TempDir(), "secret.png")
	if err := runCommand(t, "encode", "--text", "hello", "--out", imagePath); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if err := runCommand(t, "inspect", "--in", imagePath); err != nil {
		t.Errorf("inspect failed: %v", err)
	}
}

func TestInspectMissingImage(t *testing.T) {
	isolate(t, "1234")

	err := runCommand(t, "inspect", "--in", filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Error("expected inspect of a missing image to fail")
	}
}

func TestEncodeWithoutText(t *testing.T) {
	isolate(t, "1234")

	err := runCommand(t, "encode", "--out", filepath.Join(t.TempDir(), "secret.png"))
	if err == nil {
		t.Error("expected encode without any text source to fail")
	}
}

func TestLogAfterOperations(t *testing.T) {
	isolate(t, "1234")

	imagePath := filepath.Join(t.TempDir(), "secret.png")
	if err := runCommand(t, "encode", "--text", "hello", "--out", imagePath); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if err := runCommand(t, "log", "--limit", "5"); err != nil {
		t.Errorf("log failed: %v", err)
	}
}
