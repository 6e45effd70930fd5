package nativehost

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func (h *Host) installFiles() {
	h.DefineOperation("expand-file-name", h.expandFileName)
	h.DefineOperation("file-name-directory", fileNameDirectory)
	h.DefineOperation("file-name-nondirectory", mapString("file-name-nondirectory", fileNameNondirectory))
	h.DefineOperation("file-exists-p", fileExistsP)
	h.DefineOperation("delete-file", h.deleteFile)
	h.DefineOperation("rename-file", h.renameFile)
	h.DefineOperation("make-directory", h.makeDirectory)
	h.DefineOperation("directory-files", h.directoryFiles)
}

// expandFileName takes (name [directory]); relative names resolve against
// directory, or the default-directory cell when it is omitted.
func (h *Host) expandFileName(args ...any) (any, error) {
	if err := arity("expand-file-name", args, 1, 2); err != nil {
		return nil, err
	}
	name, err := stringArg("expand-file-name", args, 0)
	if err != nil {
		return nil, err
	}
	dir := ""
	if optional(args, 1) != nil {
		if dir, err = stringArg("expand-file-name", args, 1); err != nil {
			return nil, err
		}
	}
	return h.expand(name, dir)
}

func (h *Host) expand(name, dir string) (string, error) {
	if dir == "" {
		dir, _ = h.lookupCell("default-directory").(string)
	}
	name = expandHome(name)
	if !filepath.IsAbs(name) {
		dir = expandHome(dir)
		if !filepath.IsAbs(dir) {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return "", fmt.Errorf("expand-file-name: %w", err)
			}
			dir = abs
		}
		name = filepath.Join(dir, name)
	}
	return filepath.Clean(name), nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func fileNameDirectory(args ...any) (any, error) {
	if err := arity("file-name-directory", args, 1, 1); err != nil {
		return nil, err
	}
	name, err := stringArg("file-name-directory", args, 0)
	if err != nil {
		return nil, err
	}
	i := strings.LastIndexByte(name, filepath.Separator)
	if i < 0 {
		return nil, nil
	}
	return name[:i+1], nil
}

func fileNameNondirectory(name string) string {
	return name[strings.LastIndexByte(name, filepath.Separator)+1:]
}

func fileExistsP(args ...any) (any, error) {
	if err := arity("file-exists-p", args, 1, 1); err != nil {
		return nil, err
	}
	name, err := stringArg("file-exists-p", args, 0)
	if err != nil {
		return nil, err
	}
	_, statErr := os.Stat(expandHome(name))
	return statErr == nil, nil
}

func (h *Host) deleteFile(args ...any) (any, error) {
	if err := arity("delete-file", args, 1, 2); err != nil {
		return nil, err
	}
	name, err := stringArg("delete-file", args, 0)
	if err != nil {
		return nil, err
	}
	path, err := h.expand(name, "")
	if err != nil {
		return nil, err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("delete-file: %w", err)
	}
	return nil, nil
}

// renameFile takes (file newname [ok-if-already-exists]).
func (h *Host) renameFile(args ...any) (any, error) {
	if err := arity("rename-file", args, 2, 3); err != nil {
		return nil, err
	}
	from, err := stringArg("rename-file", args, 0)
	if err != nil {
		return nil, err
	}
	to, err := stringArg("rename-file", args, 1)
	if err != nil {
		return nil, err
	}
	if from, err = h.expand(from, ""); err != nil {
		return nil, err
	}
	if to, err = h.expand(to, ""); err != nil {
		return nil, err
	}
	if !truthy(optional(args, 2)) {
		if _, err := os.Stat(to); err == nil {
			return nil, fmt.Errorf("rename-file: file-already-exists: %s", to)
		}
	}
	if err := os.Rename(from, to); err != nil {
		return nil, fmt.Errorf("rename-file: %w", err)
	}
	return nil, nil
}

// makeDirectory takes (dir [parents]).
func (h *Host) makeDirectory(args ...any) (any, error) {
	if err := arity("make-directory", args, 1, 2); err != nil {
		return nil, err
	}
	name, err := stringArg("make-directory", args, 0)
	if err != nil {
		return nil, err
	}
	path, err := h.expand(name, "")
	if err != nil {
		return nil, err
	}
	if truthy(optional(args, 1)) {
		err = os.MkdirAll(path, 0o755)
	} else {
		err = os.Mkdir(path, 0o755)
	}
	if err != nil {
		return nil, fmt.Errorf("make-directory: %w", err)
	}
	return nil, nil
}

// directoryFiles takes (directory [full]) and returns sorted entry names,
// absolute when full is non-nil.
func (h *Host) directoryFiles(args ...any) (any, error) {
	if err := arity("directory-files", args, 1, 2); err != nil {
		return nil, err
	}
	name, err := stringArg("directory-files", args, 0)
	if err != nil {
		return nil, err
	}
	dir, err := h.expand(name, "")
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("directory-files: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	full := truthy(optional(args, 1))
	out := make([]any, 0, len(names))
	for _, n := range names {
		if full {
			n = filepath.Join(dir, n)
		}
		out = append(out, n)
	}
	return out, nil
}
