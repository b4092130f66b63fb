package user

import (
	"fmt"
	"strings"

	"github.com/nookmarket/nook-cli/internal/cloud/auction"
	"github.com/nookmarket/nook-cli/internal/session"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "nook"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagAPIBaseURL      = "api-url"
	FlagAPIBaseURLUsage = "Specify the base auction API server URL"
)

// set of supported CLI profile keys
const (
	keyAPIBaseURL = "api_base_url"
	keyAPIKeyName = "api_key_name"

	// KeySession is the profile key the serialized login session is stored at
	KeySession = session.DefaultSlot
)

// Profile is the CLI profile
type Profile struct {
	Flags
	Name string

	dir string
	fs  afero.Fs
}

// Flags are the CLI profile flags
type Flags struct {
	APIBaseURL string
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   afero.NewOsFs(),
	}, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Get returns the persisted value stored at key.
// A blank value reads as absent.
func (p *Profile) Get(key string) (string, bool) {
	value := p.GetString(key)
	return value, value != ""
}

// Set persists the value at key
func (p *Profile) Set(key, value string) error {
	p.SetString(key, value)
	return p.Save()
}

// Remove persists the removal of the value at key
func (p *Profile) Remove(key string) error {
	p.Clear(key)
	return p.Save()
}

// Load loads the CLI profile
func (p Profile) Load() error {
	viper.SetConfigName(p.Name)
	viper.AddConfigPath(p.dir)
	viper.SetConfigPermissions(0600)
	viper.SetConfigType(ProfileType)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv(p.propertyKey(keyAPIBaseURL), strings.ToUpper(envPrefix+"_"+keyAPIBaseURL)); err != nil {
		return fmt.Errorf("failed to load CLI profile: %w", err)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %w", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %w", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %w", err)
		}
	}

	if err := viper.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	if p.Flags.APIBaseURL == "" {
		apiBaseURL := p.APIBaseURL()
		if apiBaseURL == "" {
			apiBaseURL = auction.DefaultBaseURL
		}
		p.Flags.APIBaseURL = apiBaseURL
	}
	p.SetAPIBaseURL(p.Flags.APIBaseURL)

	return p.Save()
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, ProfileType)
}

// APIBaseURL gets the CLI profile auction API base url
func (p Profile) APIBaseURL() string {
	return p.GetString(keyAPIBaseURL)
}

// SetAPIBaseURL sets the CLI profile auction API base url
func (p Profile) SetAPIBaseURL(apiBaseURL string) {
	p.SetString(keyAPIBaseURL, apiBaseURL)
}

// APIKeyName gets the name given to API keys created for the CLI profile
func (p Profile) APIKeyName() string {
	if name := p.GetString(keyAPIKeyName); name != "" {
		return name
	}
	return session.DefaultAPIKeyName
}

// SetAPIKeyName sets the name given to API keys created for the CLI profile
func (p Profile) SetAPIKeyName(name string) {
	p.SetString(keyAPIKeyName, name)
}
