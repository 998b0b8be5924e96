package ask

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultHistoryEntries  = 1000
	defaultHistoryFileSize = 1024 * 1024
	defaultHistoryBackups  = 3
)

// HistoryConfig holds answer history settings.
//
// File path formats:
//   - Empty string: memory-only history
//   - Absolute path: "/home/user/.app_answers"
//   - Home directory: "~/.app_answers"
//   - Relative path: "./answers" (converted to absolute)
//   - XDG compliant: use DefaultHistoryFile() for "~/.config/ask/history"
type HistoryConfig struct {
	Enabled     bool   // Enable/disable history
	MaxEntries  int    // Maximum number of entries kept (default: 1000)
	File        string // File path for persistence (empty = memory only)
	MaxFileSize int64  // File size in bytes that triggers rotation (default: 1MB)
	MaxBackups  int    // Number of rotated files to keep (default: 3)
}

// DefaultHistoryConfig returns an enabled, memory-only history configuration.
func DefaultHistoryConfig() *HistoryConfig {
	return &HistoryConfig{
		Enabled:     true,
		MaxEntries:  defaultHistoryEntries,
		MaxFileSize: defaultHistoryFileSize,
		MaxBackups:  defaultHistoryBackups,
	}
}

// DefaultHistoryFile returns $XDG_CONFIG_HOME/ask/history, falling back to
// ~/.config/ask/history.
func DefaultHistoryFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ask", "history")
}

// HistoryManager keeps accepted answers in memory and on disk.
type HistoryManager struct {
	config  HistoryConfig
	history []string
}

// NewHistoryManager creates a history manager. A nil config selects
// DefaultHistoryConfig; zero limits are replaced by their defaults.
func NewHistoryManager(config *HistoryConfig) *HistoryManager {
	if config == nil {
		config = DefaultHistoryConfig()
	}
	cfg := *config
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = defaultHistoryEntries
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = defaultHistoryFileSize
	}
	if cfg.MaxBackups < 0 {
		cfg.MaxBackups = defaultHistoryBackups
	}
	if cfg.File != "" {
		if absPath, err := expandHistoryPath(cfg.File); err == nil {
			cfg.File = absPath
		}
	}

	return &HistoryManager{config: cfg}
}

// IsEnabled returns whether history is enabled.
func (hm *HistoryManager) IsEnabled() bool {
	return hm.config.Enabled
}

// File returns the absolute history file path, or "" for memory-only history.
func (hm *HistoryManager) File() string {
	return hm.config.File
}

// LoadHistory appends the entries of the history file. A missing file is
// not an error.
func (hm *HistoryManager) LoadHistory() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}

	file, err := os.Open(hm.config.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			hm.history = append(hm.history, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	hm.trim()
	return nil
}

// SaveHistory writes the history to the configured file, rotating the
// previous file first when it has grown past MaxFileSize.
func (hm *HistoryManager) SaveHistory() error {
	if !hm.config.Enabled || hm.config.File == "" {
		return nil
	}

	if err := hm.rotateIfNeeded(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}

	if dir := filepath.Dir(hm.config.File); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	return hm.writeEntries(hm.history)
}

// AddEntry records an answer. Empty answers and repeats of the latest entry
// are ignored; the oldest entries are dropped beyond MaxEntries. Answers
// spanning several lines are stored on one line.
func (hm *HistoryManager) AddEntry(entry string) {
	entry = strings.ReplaceAll(entry, "\n", " ")
	if !hm.config.Enabled || strings.TrimSpace(entry) == "" {
		return
	}
	if n := len(hm.history); n > 0 && hm.history[n-1] == entry {
		return
	}
	hm.history = append(hm.history, entry)
	hm.trim()
}

// GetHistory returns a copy of the history, oldest first.
func (hm *HistoryManager) GetHistory() []string {
	if !hm.config.Enabled {
		return []string{}
	}
	return append([]string{}, hm.history...)
}

// SetHistory replaces the history.
func (hm *HistoryManager) SetHistory(history []string) {
	if !hm.config.Enabled {
		return
	}
	hm.history = append([]string{}, history...)
	hm.trim()
}

// ClearHistory removes all entries.
func (hm *HistoryManager) ClearHistory() {
	hm.history = nil
}

func (hm *HistoryManager) trim() {
	if over := len(hm.history) - hm.config.MaxEntries; over > 0 {
		hm.history = append([]string(nil), hm.history[over:]...)
	}
}

func (hm *HistoryManager) writeEntries(entries []string) error {
	file, err := os.Create(hm.config.File)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

func (hm *HistoryManager) rotateIfNeeded() error {
	info, err := os.Stat(hm.config.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.Size() < hm.config.MaxFileSize {
		return nil
	}
	return hm.rotateHistoryFile()
}

// rotateHistoryFile shifts file.N to file.N+1, moves the current file to
// file.1 and keeps only the newer half of the entries in memory so the next
// save does not rotate again immediately.
func (hm *HistoryManager) rotateHistoryFile() error {
	if hm.config.MaxBackups == 0 {
		return os.Truncate(hm.config.File, 0)
	}

	oldest := backupName(hm.config.File, hm.config.MaxBackups)
	if err := os.Remove(oldest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove oldest backup: %w", err)
	}

	for i := hm.config.MaxBackups - 1; i >= 1; i-- {
		from := backupName(hm.config.File, i)
		if _, err := os.Stat(from); err != nil {
			continue
		}
		if err := os.Rename(from, backupName(hm.config.File, i+1)); err != nil {
			return fmt.Errorf("failed to rotate backup %d: %w", i, err)
		}
	}

	if err := os.Rename(hm.config.File, backupName(hm.config.File, 1)); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	if keep := len(hm.history) / 2; keep >= 100 {
		hm.history = append([]string(nil), hm.history[len(hm.history)-keep:]...)
	}
	return nil
}

func backupName(file string, n int) string {
	return file + "." + strconv.Itoa(n)
}

// expandHistoryPath expands a leading ~ and converts the path to an absolute one.
func expandHistoryPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return absPath, nil
}
