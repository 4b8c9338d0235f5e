// Package util holds small helpers shared by the command line tools.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// FileDigest identifies an import file in command output.
type FileDigest struct {
	Size   int64
	SHA256 string
}

// ShortSum returns the first twelve hex digits of the checksum.
func (d FileDigest) ShortSum() string {
	if len(d.SHA256) <= 12 {
		return d.SHA256
	}

	return d.SHA256[:12]
}

// DigestFile returns the size and SHA256 checksum of the file at filePath.
func DigestFile(filePath string) (FileDigest, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return FileDigest{}, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return DigestReader(file)
}

// DigestReader consumes r and returns its size and SHA256 checksum.
func DigestReader(r io.Reader) (FileDigest, error) {
	hash := sha256.New()

	size, err := io.Copy(hash, r)
	if err != nil {
		return FileDigest{}, errors.Wrap(err, "failed to calculate checksum")
	}

	return FileDigest{Size: size, SHA256: hex.EncodeToString(hash.Sum(nil))}, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const units = "KMGTPE"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats an elapsed time for humans, e.g. "850ms", "12s", "5m10s", "1h30m".
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}
