package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type SitePage struct {
	Path     string  `yaml:"path"`
	Priority float64 `yaml:"priority"`
}

// SiteProfile holds the public-facing facts about the site that are not
// admin-editable documents.
type SiteProfile struct {
	BaseURL       string     `yaml:"baseUrl"`
	ArtistName    string     `yaml:"artistName"`
	Locales       []string   `yaml:"locales"`
	DefaultLocale string     `yaml:"defaultLocale"`
	Pages         []SitePage `yaml:"pages"`
}

func DefaultSiteProfile() SiteProfile {
	return SiteProfile{
		BaseURL:       "https://doriseinfalt.art",
		ArtistName:    "Doris Einfalt",
		Locales:       []string{"sl", "en"},
		DefaultLocale: "sl",
		Pages: []SitePage{
			{Path: "/stenske-poslikave", Priority: 0.9},
			{Path: "/delavnice", Priority: 0.9},
			{Path: "/slike", Priority: 0.8},
			{Path: "/izposoja", Priority: 0.8},
			{Path: "/fotografija", Priority: 0.7},
			{Path: "/galerija", Priority: 0.7},
			{Path: "/o-meni", Priority: 0.6},
			{Path: "/kontakt", Priority: 0.8},
		},
	}
}

// LoadSiteProfile reads the YAML profile at path.
// An empty path or a missing file is not an error; defaults are returned.
func LoadSiteProfile(path string) (SiteProfile, error) {
	cfg := DefaultSiteProfile()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read site profile: %w", err)
	}
	var fileCfg SiteProfile
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse site profile: %w", err)
	}
	// Merge: override defaults with provided values if non-zero
	if fileCfg.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(fileCfg.BaseURL, "/")
	}
	if fileCfg.ArtistName != "" {
		cfg.ArtistName = fileCfg.ArtistName
	}
	if len(fileCfg.Locales) > 0 {
		cfg.Locales = fileCfg.Locales
	}
	if fileCfg.DefaultLocale != "" {
		cfg.DefaultLocale = fileCfg.DefaultLocale
	}
	if len(fileCfg.Pages) > 0 {
		cfg.Pages = fileCfg.Pages
	}
	return cfg, nil
}
