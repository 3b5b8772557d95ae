package core

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/julien-sobczak/the-notelinter/pkg/text"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"
)

// How many parent directories to traverse before considering a directory as not a vault
const maxDepth = 10

// Name of the configuration directory at the root of a vault
const ConfigDir = ".ntlint"

// Default .ntlint/config content
const DefaultConfig = `
[core]
extensions=["md"]

[layout]
notes="Notes"
articles="Articles"
daily="Daily"
weekly="Weekly"
attachments="Notes/attachments"

[lint]
disabled=[]
`

// Default .ntlintignore content
const DefaultIgnore = `
.obsidian/
.trash/
Templates/
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      sync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type ConfigFile struct {
	Core   ConfigCore
	Layout Layout
	Lint   ConfigLint
}
type ConfigCore struct {
	Extensions []string
}
type ConfigLint struct {
	// Rules to never evaluate
	Disabled []string
}

var regexExtension = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func (c ConfigFile) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Core),
		validation.Field(&c.Layout),
		validation.Field(&c.Lint),
	)
}

func (c ConfigCore) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Extensions, validation.Required, validation.Each(validation.Required, validation.Match(regexExtension))),
	)
}

func (l Layout) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Notes, validation.Required),
		validation.Field(&l.Articles, validation.Required),
		validation.Field(&l.Daily, validation.Required),
		validation.Field(&l.Weekly, validation.Required),
		validation.Field(&l.Attachments, validation.Required),
	)
}

func (c ConfigLint) Validate() error {
	var codes []any
	for _, code := range RuleCodes() {
		codes = append(codes, string(code))
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Disabled, validation.Each(validation.In(codes...))),
	)
}

// SupportExtension checks if the given file extension must be considered.
func (c *ConfigFile) SupportExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".") // ".md" => "md"
	for _, extension := range c.Core.Extensions {
		if strings.EqualFold(extension, ext) { // case-insensitive
			return true
		}
	}
	return false
}

// applyDefaults completes missing sections.
func (c *ConfigFile) applyDefaults() {
	if len(c.Core.Extensions) == 0 {
		c.Core.Extensions = []string{"md"}
	}
	if c.Layout.Notes == "" {
		c.Layout.Notes = DefaultLayout.Notes
	}
	if c.Layout.Articles == "" {
		c.Layout.Articles = DefaultLayout.Articles
	}
	if c.Layout.Daily == "" {
		c.Layout.Daily = DefaultLayout.Daily
	}
	if c.Layout.Weekly == "" {
		c.Layout.Weekly = DefaultLayout.Weekly
	}
	if c.Layout.Attachments == "" {
		c.Layout.Attachments = DefaultLayout.Attachments
	}
}

type IgnoreFile struct {
	Entries GlobPaths
}

type GlobPath string

func (g GlobPath) Negate() bool {
	return strings.HasPrefix(string(g), "!")
}

func (g GlobPath) Expr() string {
	return strings.TrimPrefix(string(g), "!")
}

// Pattern converts the gitignore-like expression into a doublestar pattern.
// A leading / anchors the pattern at the root. A trailing / matches everything under a directory.
func (g GlobPath) Pattern() string {
	expr := g.Expr()
	anchored := strings.HasPrefix(expr, "/")
	expr = strings.TrimPrefix(expr, "/")
	if strings.HasSuffix(expr, "/") {
		expr += "**"
	}
	if !anchored {
		expr = "**/" + expr
	}
	return expr
}

// Match tests a given vault-relative path.
func (g GlobPath) Match(path string) bool {
	path = strings.TrimPrefix(filepath.ToSlash(path), "/")
	matched, err := doublestar.Match(g.Pattern(), path)
	if err != nil {
		CurrentLogger().Warnf("Invalid glob pattern %q: %v", g, err)
		return false
	}
	return matched
}

type GlobPaths []GlobPath

// Match tests if a file path satisfies the conditions.
func (g GlobPaths) Match(path string) bool {
	foundMatch := false
	for _, entry := range g {
		// Test all lines to find a match (if a line match = the path must be included)
		if entry.Match(path) {
			if entry.Negate() {
				// An exclusion matched, the file must no longer be included.
				return false
			}
			foundMatch = true
		}
	}
	return foundMatch
}

/* Main config */

type Config struct {
	// Absolute top directory containing the .ntlint sub-directory
	RootDirectory string

	// .ntlint/config content
	ConfigFile ConfigFile

	// .ntlintignore content
	IgnoreFile IgnoreFile
}

func CurrentConfig() *Config {
	configOnce.Do(func() {
		var err error
		configSingleton, err = ReadConfigFromDirectory(currentHome())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current configuration: %v\n", err)
			os.Exit(1)
		}
		if configSingleton == nil {
			fmt.Fprintf(os.Stderr, "fatal: not a vault (or any of the parent directories): %s\n", ConfigDir)
			os.Exit(1)
		}
	})
	return configSingleton
}

// Catalog returns the note types of the configured layout.
func (c *Config) Catalog() Catalog {
	return NewCatalog(c.ConfigFile.Layout)
}

// DisabledRules returns the rules disabled in the configuration.
func (c *Config) DisabledRules() []RuleCode {
	var codes []RuleCode
	for _, name := range c.ConfigFile.Lint.Disabled {
		codes = append(codes, RuleCode(name))
	}
	return codes
}

func currentHome() string {
	// Supports overriding the root directory mainly for testing purposes. Ex:
	//
	//   $ env NTLINT_HOME=./examples go run ./cmd/ntlint lint
	if path, ok := os.LookupEnv("NTLINT_HOME"); ok {
		abspath, err := filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to evaluate $NTLINT_HOME")
			os.Exit(1)
		}
		if _, err := os.Stat(abspath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stderr, "Path in $NTLINT_HOME undefined")
			os.Exit(1)
		}
		return abspath
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to determine current directory: %v\n", err)
		os.Exit(1)
	}
	return cwd
}

// ReadConfigFromDirectory loads the configuration by searching for a .ntlint directory in the given directory
// or any parent directories. It returns nil when no vault is found.
func ReadConfigFromDirectory(path string) (*Config, error) {
	rootPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	i := 0 // Safeguard to not go up too far
	for {
		i++
		if i > maxDepth {
			return nil, nil
		}
		_, err := os.Stat(filepath.Join(rootPath, ConfigDir))
		if os.IsNotExist(err) {
			parent := filepath.Dir(rootPath)
			if parent == rootPath {
				// Root directory detected
				return nil, nil
			}
			rootPath = parent
		} else if err != nil {
			return nil, fmt.Errorf("error while searching for configuration directory: %w", err)
		} else {
			break
		}
	}

	// Check for .ntlint/config
	configFile, err := parseConfigFile(readOrDefault(filepath.Join(rootPath, ConfigDir, "config"), DefaultConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s/config file: %w", ConfigDir, err)
	}

	// Check for .ntlintignore
	ignoreFile, err := parseIgnoreFile(readOrDefault(filepath.Join(rootPath, ".ntlintignore"), DefaultIgnore))
	if err != nil {
		return nil, fmt.Errorf("failed to parse .ntlintignore file: %w", err)
	}

	return &Config{
		RootDirectory: rootPath,
		ConfigFile:    *configFile,
		IgnoreFile:    *ignoreFile,
	}, nil
}

func readOrDefault(path string, defaultContent string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			CurrentLogger().Warnf("Unable to read %s: %v", path, err)
		}
		return defaultContent
	}
	return string(content)
}

func parseConfigFile(content string) (*ConfigFile, error) {
	r := strings.NewReader(content)
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	var result ConfigFile
	if err := d.Decode(&result); err != nil {
		return nil, err
	}
	result.applyDefaults()
	return &result, nil
}

func parseIgnoreFile(content string) (*IgnoreFile, error) {
	var result IgnoreFile
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if text.IsBlank(line) {
			// ignore blank line
			continue
		}
		if strings.HasPrefix(line, "#") {
			// ignore comment
			continue
		}
		result.Entries = append(result.Entries, GlobPath(line))
	}
	return &result, scanner.Err()
}

// InitConfigFromDirectory creates the .ntlint configuration directory with default files including .ntlintignore.
func InitConfigFromDirectory(path string) (*Config, error) {
	currentConfig, err := ReadConfigFromDirectory(path)
	if err != nil {
		return nil, err
	}
	if currentConfig != nil {
		// Do not override current configuration
		return nil, fmt.Errorf("current configuration detected in %s", currentConfig.RootDirectory)
	}

	configPath := filepath.Join(path, ConfigDir)
	if err := os.Mkdir(configPath, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(configPath, "config"), []byte(DefaultConfig), 0644); err != nil {
		return nil, err
	}

	ignorePath := filepath.Join(path, ".ntlintignore")
	_, err = os.Stat(ignorePath)
	if os.IsNotExist(err) { // Do not override existing file!
		if err := os.WriteFile(ignorePath, []byte(DefaultIgnore), 0644); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	// Reread configuration
	return ReadConfigFromDirectory(path)
}

// Check validates the configuration.
func (c *Config) Check() error {
	if err := c.ConfigFile.Validate(); err != nil {
		return fmt.Errorf("invalid %s/config: %w", ConfigDir, err)
	}

	// Layout directories must be distinct
	layout := c.ConfigFile.Layout
	directories := []string{layout.Notes, layout.Articles, layout.Daily, layout.Weekly}
	for i, directory := range directories {
		if slices.Contains(directories[i+1:], directory) {
			return fmt.Errorf("directory %q is used by several note types", directory)
		}
	}

	for _, entry := range c.IgnoreFile.Entries {
		if !doublestar.ValidatePattern(entry.Pattern()) {
			return fmt.Errorf("invalid pattern %q in .ntlintignore", entry)
		}
	}

	return nil
}
