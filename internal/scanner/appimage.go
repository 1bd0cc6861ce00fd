// ABOUTME: AppImage scanner: filesystem walk for .AppImage files and executable ELFs
// ABOUTME: Name/version come from filename patterns; uninstall deletes the file

package scanner

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/internal/log"
)

// Directory walk depth limit; AppImage folders are shallow by convention.
const appImageMaxDepth = 3

var (
	versionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`-(\d+\.\d+\.?\d*)[-_]?`),
		regexp.MustCompile(`_v?(\d+\.\d+\.?\d*)[-_]?`),
		regexp.MustCompile(`[_-](\d+\.\d+\.?\d*)$`),
	}
	nameSuffixPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[-_]v?\d+\.\d+.*$`),
		regexp.MustCompile(`[-_]x86_64.*$`),
		regexp.MustCompile(`[-_]amd64.*$`),
		regexp.MustCompile(`[-_]linux.*$`),
	}
)

// AppImageScanner discovers loose AppImage files in conventional locations.
type AppImageScanner struct {
	dirs []string
}

// NewAppImageScanner creates an AppImage scanner. extraDirs are searched in
// addition to the conventional locations.
func NewAppImageScanner(extraDirs []string) *AppImageScanner {
	return &AppImageScanner{dirs: append(searchDirs(), extraDirs...)}
}

// searchDirs lists the conventional AppImage locations.
func searchDirs() []string {
	dirs := []string{"/opt", "/usr/local/bin"}
	if home, err := os.UserHomeDir(); err == nil {
		for _, d := range []string{"Applications", "apps", ".local/bin", "AppImages", "Downloads"} {
			dirs = append(dirs, filepath.Join(home, d))
		}
	}
	return dirs
}

// Source returns SourceAppImage.
func (s *AppImageScanner) Source() catalog.Source { return catalog.SourceAppImage }

// Available is always true; this scanner only reads the filesystem.
func (s *AppImageScanner) Available() bool { return true }

// Scan walks the search directories looking for AppImage files.
func (s *AppImageScanner) Scan(ctx context.Context) ([]catalog.Package, error) {
	var pkgs []catalog.Package
	for _, dir := range s.dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		root := dir
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // unreadable entries are skipped, not fatal
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() {
				if walkDepth(root, path) > appImageMaxDepth {
					return fs.SkipDir
				}
				return nil
			}
			if !isAppImage(path) {
				return nil
			}

			filename := filepath.Base(path)
			p := catalog.New(ExtractAppImageName(filename), catalog.SourceAppImage)
			p.Version = ExtractAppImageVersion(filename)
			p.InstallPath = path
			p.Description = "AppImage at " + path
			p.AppType = catalog.AppGUI
			if info, err := d.Info(); err == nil {
				p.SizeBytes = uint64(info.Size())
			}
			pkgs = append(pkgs, p)
			return nil
		})
		if err != nil && !errors.Is(err, fs.SkipDir) {
			if errors.Is(err, context.Canceled) {
				return pkgs, err
			}
			log.Debug("appimage walk %s: %v", dir, err)
		}
	}
	return pkgs, nil
}

func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// isAppImage accepts .AppImage files by extension, plus executable ELF
// binaries (type-2 AppImages are plain ELF executables).
func isAppImage(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".appimage") {
		return true
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var header [4]byte
	if _, err := f.Read(header[:]); err != nil {
		return false
	}
	if !bytes.Equal(header[:], []byte("\x7fELF")) {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&0o111 != 0
}

// ExtractAppImageName strips extension, version, and architecture suffixes
// from an AppImage filename.
func ExtractAppImageName(filename string) string {
	name := trimAppImageExt(filename)
	for _, re := range nameSuffixPatterns {
		name = re.ReplaceAllString(name, "")
	}
	return name
}

// ExtractAppImageVersion pulls a dotted version out of an AppImage filename,
// or "unknown" when none is recognizable.
func ExtractAppImageVersion(filename string) string {
	name := trimAppImageExt(filename)
	for _, re := range versionPatterns {
		if m := re.FindStringSubmatch(name); m != nil {
			return m[1]
		}
	}
	return "unknown"
}

func trimAppImageExt(filename string) string {
	name := strings.TrimSuffix(filename, ".AppImage")
	return strings.TrimSuffix(name, ".appimage")
}

// Updates returns nothing: AppImages have no central update channel.
func (s *AppImageScanner) Updates(ctx context.Context) ([]UpdateInfo, error) {
	return nil, nil
}

// Uninstall deletes the AppImage file and any .desktop entries pointing at
// it.
func (s *AppImageScanner) Uninstall(ctx context.Context, pkg catalog.Package) error {
	if pkg.InstallPath == "" {
		return errors.New("no file path recorded for AppImage")
	}
	if err := os.Remove(pkg.InstallPath); err != nil {
		return err
	}
	s.removeDesktopEntries(pkg.InstallPath)
	return nil
}

// removeDesktopEntries deletes user desktop files referencing the AppImage.
// Best effort; a stale launcher is not an uninstall failure.
func (s *AppImageScanner) removeDesktopEntries(appPath string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".local/share/applications")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".desktop" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err == nil && strings.Contains(string(data), appPath) {
			if err := os.Remove(path); err != nil {
				log.Debug("removing desktop entry %s: %v", path, err)
			}
		}
	}
}

// Update is unsupported; AppImages are replaced manually by the user.
func (s *AppImageScanner) Update(ctx context.Context, pkg catalog.Package) error {
	return errors.New("AppImage updates are not supported")
}
