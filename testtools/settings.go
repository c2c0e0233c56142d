package testtools

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// EnvLiveTests enables tests labeled RequiresResources or RequiresCredentials.
	EnvLiveTests = "GOAWS_LIVE_TESTS"
	// EnvRegion overrides the region of live tests.
	EnvRegion = "GOAWS_TEST_REGION"
	// EnvProfile selects the shared config profile of live tests.
	EnvProfile = "GOAWS_TEST_PROFILE"
	// EnvSettingsFile points at a YAML settings file.
	EnvSettingsFile = "GOAWS_TEST_SETTINGS"
)

// Settings controls how a suite talks to AWS.
//
//	live: true
//	region: us-west-2
//	profile: samples
//	resources:
//	  iam.role: sample-role
//	  iam.policy_arn: arn:aws:iam::aws:policy/AmazonS3ReadOnlyAccess
type Settings struct {
	Live      bool              `yaml:"live"`
	Region    string            `yaml:"region"`
	Profile   string            `yaml:"profile"`
	Resources map[string]string `yaml:"resources"`
}

// Resource returns a pre-provisioned resource name from the settings file.
func (s Settings) Resource(key string) string {
	return s.Resources[key]
}

// LoadSettings reads the optional settings file and applies the environment
// on top of it.
func LoadSettings() (Settings, error) {
	settings := Settings{Region: MockRegion}

	if path := os.Getenv(EnvSettingsFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("os.ReadFile: %w", err)
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("yaml.Unmarshal: %w", err)
		}
	}

	if v := os.Getenv(EnvLiveTests); v != "" {
		live, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvLiveTests, err)
		}
		settings.Live = live
	}
	if v := os.Getenv(EnvRegion); v != "" {
		settings.Region = v
	}
	if v := os.Getenv(EnvProfile); v != "" {
		settings.Profile = v
	}
	if settings.Region == "" {
		settings.Region = MockRegion
	}

	return settings, nil
}
