package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/juju/errors"
)

// PathResolver resolves dictionary and config locations for the eomi binary
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	// Resolve symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}
	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  filepath.Dir(execPath),
		homeDir:        homeDir,
		configDir:      getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		pr.executablePath, pr.executableDir, pr.configDir)
	return pr, nil
}

// UserConfigDir returns the eomi config directory of the current user.
// Config files and the fallback data dir both live there.
func UserConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Annotate(err, "resolve home directory")
	}
	return getConfigDir(homeDir), nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "eomi")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "eomi")
		}
		return filepath.Join(homeDir, ".config", "eomi")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "eomi")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "eomi")
	default:
		return filepath.Join(homeDir, ".eomi")
	}
}

// GetDataDir resolves the directory holding the dictionary text files.
// Candidates are tried in order:
// 1. User-specified path (if absolute)
// 2. Relative to executable directory
// 3. Relative to current working directory
// 4. Common data dirs near the executable and in the config dir
func (pr *PathResolver) GetDataDir(userSpecifiedPath string) (string, error) {
	candidates := pr.getDataDirCandidates(userSpecifiedPath)
	for _, path := range candidates {
		if pr.isValidDataDir(path) {
			log.Debugf("Found valid data directory: %s", path)
			return path, nil
		}
		log.Debugf("Data directory candidate not valid: %s", path)
	}
	// most likely path, for error reporting
	if filepath.IsAbs(userSpecifiedPath) {
		return userSpecifiedPath, nil
	}
	return filepath.Join(pr.executableDir, userSpecifiedPath), nil
}

// isValidDataDir checks if a directory holds at least one dictionary file
func (pr *PathResolver) isValidDataDir(path string) bool {
	if !pr.isDirectory(path) {
		return false
	}
	return len(pr.listTextFiles(path)) > 0
}

// GetRuntimeInfo returns debug information about the current runtime environment
func (pr *PathResolver) GetRuntimeInfo() map[string]string {
	cwd, _ := os.Getwd()
	info := map[string]string{
		"executable_path": pr.executablePath,
		"executable_dir":  pr.executableDir,
		"current_dir":     cwd,
		"home_dir":        pr.homeDir,
		"config_dir":      pr.configDir,
		"os":              runtime.GOOS,
		"arch":            runtime.GOARCH,
	}
	for _, envVar := range []string{"PWD", "HOME", "XDG_CONFIG_HOME", "APPDATA"} {
		if value := os.Getenv(envVar); value != "" {
			info["env_"+strings.ToLower(envVar)] = value
		}
	}
	return info
}

// DiagnosePathIssues reports every data dir candidate and what it holds
func (pr *PathResolver) DiagnosePathIssues(userDataPath string) map[string]any {
	diag := make(map[string]any)
	diag["runtime_info"] = pr.GetRuntimeInfo()

	candidates := pr.getDataDirCandidates(userDataPath)
	candidateTests := make([]map[string]any, 0, len(candidates))
	for _, candidate := range candidates {
		candidateTests = append(candidateTests, map[string]any{
			"path":     candidate,
			"exists":   pr.pathExists(candidate),
			"is_dir":   pr.isDirectory(candidate),
			"is_valid": pr.isValidDataDir(candidate),
			"files":    pr.listTextFiles(candidate),
		})
	}
	diag["data_dir_candidates"] = candidateTests
	return diag
}

func (pr *PathResolver) pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (pr *PathResolver) isDirectory(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}

// listTextFiles lists dictionary files at the top level and under Root/
func (pr *PathResolver) listTextFiles(path string) []string {
	var files []string
	for _, pattern := range []string{"*.txt", filepath.Join("Root", "*.txt")} {
		matches, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}
	return files
}

func (pr *PathResolver) getDataDirCandidates(userSpecifiedPath string) []string {
	var candidates []string
	if filepath.IsAbs(userSpecifiedPath) {
		candidates = append(candidates, userSpecifiedPath)
	}
	candidates = append(candidates, filepath.Join(pr.executableDir, userSpecifiedPath))
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userSpecifiedPath))
	}
	return append(candidates,
		filepath.Join(pr.executableDir, "data"),
		filepath.Join(filepath.Dir(pr.executableDir), "data"),
		filepath.Join(pr.configDir, "data"),
	)
}
