package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration parses YAML scalars like "800ms" or "30s".
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// SearchPair is one configured (keywords, location) search.
type SearchPair struct {
	Keywords string `yaml:"keywords"`
	Location string `yaml:"location"`
}

// CrawlConfig drives one pipeline run. Defaults mirror the constants the
// site tolerates in practice: 5 pages per search, 25 cards per page,
// 800ms pacing between card activations.
type CrawlConfig struct {
	Profile           string        `yaml:"profile"`
	Searches          []SearchPair  `yaml:"searches"`
	MaxPages          int           `yaml:"max_pages"`
	PerPageCap        int           `yaml:"per_page_cap"`
	InterActionDelay  Duration      `yaml:"inter_action_delay"`
	NavigationTimeout Duration      `yaml:"navigation_timeout"`
	NavigationRetries int           `yaml:"navigation_retries"`
	RenderWait        Duration      `yaml:"render_wait"`
	Headless          bool          `yaml:"headless"`
	// Session picks the rendering engine: "chrome" (headless Chrome)
	// or "static" (plain HTTP, no script execution).
	Session       string `yaml:"session"`
	ScheduleHours int    `yaml:"schedule_hours"`
}

func DefaultCrawlConfig() *CrawlConfig {
	return &CrawlConfig{
		Profile: "linkedin",
		Searches: []SearchPair{
			{Keywords: "Software Engineer", Location: "United States"},
		},
		MaxPages:          5,
		PerPageCap:        25,
		InterActionDelay:  Duration(800 * time.Millisecond),
		NavigationTimeout: Duration(30 * time.Second),
		NavigationRetries: 1,
		RenderWait:        Duration(1500 * time.Millisecond),
		Headless:          true,
		Session:           "chrome",
		ScheduleHours:     12,
	}
}

// LoadCrawl reads a YAML crawl config, overlaying the file's values on
// the defaults. A missing file is not an error: the defaults apply.
func LoadCrawl(path string) (*CrawlConfig, error) {
	cfg := DefaultCrawlConfig()

	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return cfg, err
	}

	cfg.normalize()
	return cfg, nil
}

func (c *CrawlConfig) normalize() {
	if c.MaxPages <= 0 {
		c.MaxPages = 5
	}
	if c.PerPageCap <= 0 {
		c.PerPageCap = 25
	}
	if c.InterActionDelay <= 0 {
		c.InterActionDelay = Duration(800 * time.Millisecond)
	}
	if c.NavigationTimeout <= 0 {
		c.NavigationTimeout = Duration(30 * time.Second)
	}
	if c.NavigationRetries < 0 {
		c.NavigationRetries = 1
	}
	if c.RenderWait <= 0 {
		c.RenderWait = Duration(1500 * time.Millisecond)
	}
	if c.ScheduleHours <= 0 {
		c.ScheduleHours = 12
	}
	if strings.TrimSpace(c.Profile) == "" {
		c.Profile = "linkedin"
	}
	if strings.TrimSpace(c.Session) == "" {
		c.Session = "chrome"
	}

	pairs := make([]SearchPair, 0, len(c.Searches))
	for _, p := range c.Searches {
		p.Keywords = strings.TrimSpace(p.Keywords)
		p.Location = strings.TrimSpace(p.Location)
		if p.Keywords == "" && p.Location == "" {
			continue
		}
		pairs = append(pairs, p)
	}
	if len(pairs) > 0 {
		c.Searches = pairs
	}
}
