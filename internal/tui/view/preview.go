package view

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
	"time"
)

// PreviewState tracks the inline image preview lifecycle inside the modal.
type PreviewState struct {
	Enabled bool
	Loading bool
	Raw     string
	Err     string
}

const previewRows = 14

// RenderInlineImage downloads an image and renders it as colored text cells
// via chafa. The symbols format is used unconditionally: graphics-protocol
// escapes do not survive inside a bordered box.
func RenderInlineImage(imageURL string, width int) (string, error) {
	if width < 20 {
		width = 20
	}

	chafaPath, err := exec.LookPath("chafa")
	if err != nil {
		return "", fmt.Errorf("chafa is not installed")
	}

	client := &http.Client{Timeout: 8 * time.Second}
	resp, err := client.Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	args := []string{
		"--size", fmt.Sprintf("%dx%d", width, previewRows),
		"--view-size", fmt.Sprintf("%dx%d", width, previewRows),
		"--align", "top,center",
		"--format", "symbols",
		"-",
	}
	cmd := exec.Command(chafaPath, args...)
	cmd.Stdin = bytes.NewReader(imageData)
	output, err := cmd.CombinedOutput()
	trimmed := strings.TrimSpace(string(output))
	if err != nil {
		return "", fmt.Errorf("render image via chafa: %w: %s", err, trimmed)
	}
	if trimmed == "" {
		return "", fmt.Errorf("empty output")
	}
	return trimmed, nil
}
