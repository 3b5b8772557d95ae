package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"golang.org/x/text/unicode/norm"
)

// Vault is a directory of Markdown notes.
// It implements every host interface required by the linters.
type Vault struct {
	root       string
	extensions []string
	ignore     GlobPaths

	// Lazy-load the list of files to resolve links
	inventoryOnce sync.Once
	inventory     map[string]bool
}

// NewVault creates a vault rooted at the given directory.
func NewVault(root string, extensions []string, ignore GlobPaths) *Vault {
	if len(extensions) == 0 {
		extensions = []string{"md"}
	}
	return &Vault{
		root:       root,
		extensions: extensions,
		ignore:     ignore,
	}
}

// NewVaultFromConfig creates the vault described by a configuration.
func NewVaultFromConfig(config *Config) *Vault {
	return NewVault(config.RootDirectory, config.ConfigFile.Core.Extensions, config.IgnoreFile.Entries)
}

func (v *Vault) Root() string {
	return v.root
}

// AbsolutePath converts a vault-relative path.
func (v *Vault) AbsolutePath(relativePath string) string {
	return filepath.Join(v.root, filepath.FromSlash(relativePath))
}

// RelativePath converts a path to a vault-relative path using / as separator.
func (v *Vault) RelativePath(absolutePath string) (string, error) {
	absolutePath, err := filepath.Abs(absolutePath)
	if err != nil {
		return "", err
	}
	relativePath, err := filepath.Rel(v.root, absolutePath)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(relativePath, "..") {
		return "", fmt.Errorf("%s is outside the vault %s", absolutePath, v.root)
	}
	return filepath.ToSlash(relativePath), nil
}

func (v *Vault) isNote(relativePath string) bool {
	ext := strings.TrimPrefix(path.Ext(relativePath), ".")
	for _, extension := range v.extensions {
		if strings.EqualFold(extension, ext) {
			return true
		}
	}
	return false
}

func (v *Vault) pattern() string {
	if len(v.extensions) == 1 {
		return "**/*." + v.extensions[0]
	}
	return "**/*.{" + strings.Join(v.extensions, ",") + "}"
}

// Notes lists the vault-relative paths of all notes, ignored files excepted.
func (v *Vault) Notes() ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(v.root), v.pattern(), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("unable to list notes in %s: %w", v.root, err)
	}
	var results []string
	for _, match := range matches {
		if v.ignore.Match(match) {
			CurrentLogger().Tracef("Ignoring %s", match)
			continue
		}
		results = append(results, match)
	}
	sort.Strings(results)
	return results, nil
}

/* ContentSource */

// LoadContent implements ContentSource.
func (v *Vault) LoadContent(relativePath string) (string, error) {
	content, err := os.ReadFile(v.AbsolutePath(relativePath))
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNoteNotFound, relativePath)
	}
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// LoadProperties implements ContentSource.
func (v *Vault) LoadProperties(relativePath string) (map[string]any, error) {
	file, err := v.parse(relativePath)
	if err != nil {
		return nil, err
	}
	return file.Properties()
}

func (v *Vault) parse(relativePath string) (*markdown.File, error) {
	file, err := markdown.ParseFile(v.AbsolutePath(relativePath))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, relativePath)
	}
	return file, err
}

/* PropertyMutator */

// SetProperty implements PropertyMutator.
func (v *Vault) SetProperty(ctx context.Context, relativePath string, key string, value any) error {
	return v.edit(ctx, relativePath, func(file *markdown.File) error {
		return file.SetProperty(key, value)
	})
}

// RemoveProperty implements PropertyMutator.
func (v *Vault) RemoveProperty(ctx context.Context, relativePath string, key string) error {
	return v.edit(ctx, relativePath, func(file *markdown.File) error {
		return file.RemoveProperty(key)
	})
}

// edit re-reads the note, applies the change, and saves it.
func (v *Vault) edit(ctx context.Context, relativePath string, change func(file *markdown.File) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := v.parse(relativePath)
	if err != nil {
		return err
	}
	if err := change(file); err != nil {
		return err
	}
	CurrentLogger().Debugf("Saving %s", relativePath)
	return file.Save()
}

/* CommandRunner */

// RunCommand implements CommandRunner.
func (v *Vault) RunCommand(ctx context.Context, commandID string, relativePath string) error {
	switch commandID {
	case MigrateDateFooterCommand:
		return v.edit(ctx, relativePath, migrateDateFooter)
	}
	return fmt.Errorf("unknown command %q", commandID)
}

// migrateDateFooter moves the legacy date footers to the created/updated properties.
// Existing properties are not overridden.
func migrateDateFooter(file *markdown.File) error {
	properties, err := file.Properties()
	if err != nil {
		return err
	}

	var kept []string
	var tracker markdown.FenceTracker
	for _, line := range file.Body.Lines() {
		if tracker.Feed(line).InFence() {
			kept = append(kept, line)
			continue
		}
		footer, ok := ParseDateFooter(line)
		if !ok {
			kept = append(kept, line)
			continue
		}
		if !MissingProperty(properties, footer.Property) {
			continue
		}
		if err := file.SetProperty(footer.Property, markdown.Date(footer.Date)); err != nil {
			return err
		}
		properties[footer.Property] = footer.Date
	}

	body := strings.TrimRight(strings.Join(kept, "\n"), " \t\n")
	if body != "" {
		body += "\n"
	}
	file.Body = markdown.Document(body)
	return nil
}

/* LinkResolver */

// Resolve implements LinkResolver.
// A title matches a file by its name or by any trailing part of its path, with or without the .md extension.
func (v *Vault) Resolve(title string, sourcePath string) bool {
	v.inventoryOnce.Do(v.buildInventory)
	key := norm.NFC.String(strings.TrimSpace(title))
	if key == "" {
		return true
	}
	return v.inventory[key]
}

func (v *Vault) buildInventory() {
	v.inventory = make(map[string]bool)
	files, err := doublestar.Glob(os.DirFS(v.root), "**/*", doublestar.WithFilesOnly())
	if err != nil {
		CurrentLogger().Warnf("Unable to list files in %s: %v", v.root, err)
		return
	}
	for _, file := range files {
		if v.ignore.Match(file) {
			continue
		}
		relativePath := norm.NFC.String(file)
		for {
			v.inventory[relativePath] = true
			if v.isNote(relativePath) {
				v.inventory[strings.TrimSuffix(relativePath, path.Ext(relativePath))] = true
			}
			_, rest, found := strings.Cut(relativePath, "/")
			if !found {
				break
			}
			relativePath = rest
		}
	}
	CurrentLogger().Debugf("Indexed %d files in %s", len(files), v.root)
}
