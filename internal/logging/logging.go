package logging

import (
	"cmp"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// Logger is shared by every package. It discards records until Initialize
// turns debug logging on.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

const logExt = ".log"

// Initialize configures Logger and returns the path of the log file, or ""
// when logging stays off. SCHEMER_DEBUG, SCHEMER_DEBUG_FILE and
// SCHEMER_MAX_LOG_FILES, set by a parent schemer process, take effect here.
//
// Without debugFile a new <uuid>.log is created in logDir, keeping at most
// maxLogFiles files there (0 keeps all).
func Initialize(debug bool, debugFile string, logDir string, maxLogFiles int) (string, error) {
	debug = debug || os.Getenv("SCHEMER_DEBUG") == "1"
	if debugFile == "" {
		debugFile = os.Getenv("SCHEMER_DEBUG_FILE")
	}
	if n, err := strconv.Atoi(os.Getenv("SCHEMER_MAX_LOG_FILES")); err == nil {
		maxLogFiles = n
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	path := debugFile
	if path == "" {
		path = filepath.Join(logDir, uuid.NewString()+logExt)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	// custom files are never pruned
	if debugFile == "" && maxLogFiles > 0 {
		if err := pruneLogs(logDir, maxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path)

	return path, nil
}

// pruneLogs deletes the oldest *.log files in dir so that, with the file
// about to be created, at most keep remain.
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []fs.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != logExt {
			continue
		}
		if info, err := entry.Info(); err == nil {
			logs = append(logs, info)
		}
	}

	excess := len(logs) - keep + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b fs.FileInfo) int {
		return cmp.Compare(a.ModTime().UnixNano(), b.ModTime().UnixNano())
	})
	for _, info := range logs[:excess] {
		path := filepath.Join(dir, info.Name())
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}
	return nil
}
