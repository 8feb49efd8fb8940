package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DeployStatic is the DEPLOY_TARGET value that selects static export mode.
const DeployStatic = "static"

// SocialLink is a profile link shown in the footer and on the contact page.
type SocialLink struct {
	Name string `mapstructure:"name"`
	Href string `mapstructure:"href"`
	Icon string `mapstructure:"icon"`
}

// Site holds metadata rendered into every page.
type Site struct {
	Name        string       `mapstructure:"name"`
	Title       string       `mapstructure:"title"`
	Description string       `mapstructure:"description"`
	URL         string       `mapstructure:"url"`
	Email       string       `mapstructure:"email"`
	Social      []SocialLink `mapstructure:"social"`
}

type Config struct {
	Port            string `mapstructure:"port"`
	ContentDir      string `mapstructure:"contentDir"`
	MessagesDir     string `mapstructure:"messagesDir"`
	StaticDir       string `mapstructure:"staticDir"`
	OutputDir       string `mapstructure:"outputDir"`
	DeployTarget    string `mapstructure:"deployTarget"`
	LogLevel        string `mapstructure:"logLevel"`
	ProjectsPerPage int    `mapstructure:"projectsPerPage"`
	FeaturedLimit   int    `mapstructure:"featuredLimit"`
	SubmissionsFile string `mapstructure:"submissionsFile"`
	CodeStyle       string `mapstructure:"codeStyle"`
	Site            Site   `mapstructure:"site"`
}

// Static reports whether the build targets a static export.
func (c Config) Static() bool {
	return strings.EqualFold(c.DeployTarget, DeployStatic)
}

var defaultSocial = []SocialLink{
	{Name: "GitHub", Href: "https://github.com/islamux", Icon: "github"},
	{Name: "Twitter", Href: "https://twitter.com/islamux", Icon: "twitter"},
	{Name: "LinkedIn", Href: "https://www.linkedin.com/in/fathi-alqadasi-7893471b/", Icon: "linkedin"},
	{Name: "GitLab", Href: "https://gitlab.com/islamux", Icon: "gitlab"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("contentDir", "web/content")
	v.SetDefault("messagesDir", "web/messages")
	v.SetDefault("staticDir", "web/static")
	v.SetDefault("outputDir", "out")
	v.SetDefault("deployTarget", "server")
	v.SetDefault("logLevel", "info")
	v.SetDefault("projectsPerPage", 9)
	v.SetDefault("featuredLimit", 3)
	v.SetDefault("submissionsFile", "data/submissions.jsonl")
	v.SetDefault("codeStyle", "github")

	v.SetDefault("site.name", "Islamux")
	v.SetDefault("site.title", "Islamux - Full-Stack Developer")
	v.SetDefault("site.description", "Full-stack developer specializing in Next.js, TypeScript, and Flutter. Building modern web applications.")
	v.SetDefault("site.url", "https://islamux.me")
	v.SetDefault("site.email", "fathi733@gmail.com")
	v.SetDefault("site.social", defaultSocial)
}

// Load resolves configuration as defaults < YAML file < environment.
// An empty cfgFile looks for ./portfolio.yaml and tolerates its absence.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("deployTarget", "PORTFOLIO_DEPLOYTARGET", "DEPLOY_TARGET"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("port", "PORTFOLIO_PORT", "PORT"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.ContentDir == "" {
		return errors.New("contentDir must not be empty")
	}
	if cfg.OutputDir == "" {
		return errors.New("outputDir must not be empty")
	}
	if cfg.ProjectsPerPage < 0 {
		return errors.New("projectsPerPage must not be negative")
	}
	if cfg.FeaturedLimit < 0 {
		return errors.New("featuredLimit must not be negative")
	}
	return nil
}
