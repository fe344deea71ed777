package provider

import (
	"regexp"
	"strings"

	"github.com/namewastaken/namewastaken/internal/core/checker"
)

// Registry order is fixed and doubles as display and fan-out order.
// It is also the tie-break when URL shapes could overlap: ParseProfileURL
// tries providers in this order and the first match wins.
var providers = []*Provider{
	{
		Name:        "x",
		DisplayName: "X/Twitter",
		Aliases:     []string{"x", "twitter"},
		Checker:     &checker.XChecker{},
		buildURL:    func(handle string) string { return "https://x.com/" + handle },
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^https?://(?:www\.)?x\.com/([a-zA-Z0-9._]+)`),
			regexp.MustCompile(`(?i)^https?://(?:www\.)?twitter\.com/([a-zA-Z0-9._]+)`),
		},
	},
	{
		Name:        "tiktok",
		DisplayName: "TikTok",
		Aliases:     []string{"tiktok", "tt"},
		Checker:     &checker.TikTokChecker{},
		buildURL:    func(handle string) string { return "https://tiktok.com/@" + handle },
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^https?://(?:www\.)?tiktok\.com/@([a-zA-Z0-9._]+)`),
		},
	},
	{
		Name:        "threads",
		DisplayName: "Threads",
		Aliases:     []string{"threads"},
		Checker:     &checker.ThreadsChecker{},
		buildURL:    func(handle string) string { return "https://threads.net/@" + handle },
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^https?://(?:www\.)?threads\.(?:net|com)/@([a-zA-Z0-9._]+)`),
		},
	},
	{
		Name:        "youtube",
		DisplayName: "YouTube",
		Aliases:     []string{"youtube", "yt"},
		Checker:     &checker.YouTubeChecker{},
		buildURL:    func(handle string) string { return "https://youtube.com/@" + handle },
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^https?://(?:www\.)?youtube\.com/@([a-zA-Z0-9._]+)`),
		},
	},
	{
		Name:        "instagram",
		DisplayName: "Instagram",
		Aliases:     []string{"instagram", "ig"},
		Checker:     &checker.InstagramChecker{},
		buildURL:    func(handle string) string { return "https://instagram.com/" + handle },
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^https?://(?:www\.)?instagram\.com/([a-zA-Z0-9._]+)`),
		},
	},
	{
		Name:        "facebook",
		DisplayName: "Facebook",
		Aliases:     []string{"facebook", "fb"},
		Checker:     &checker.FacebookChecker{},
		buildURL:    func(handle string) string { return "https://facebook.com/" + handle },
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^https?://(?:www\.)?facebook\.com/([a-zA-Z0-9.]+)`),
		},
	},
	{
		Name:        "telegram",
		DisplayName: "Telegram",
		Aliases:     []string{"telegram", "tg"},
		Checker:     &checker.TelegramChecker{},
		buildURL:    func(handle string) string { return "https://t.me/" + handle },
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^https?://(?:www\.)?t\.me/([a-zA-Z0-9_]+)`),
			regexp.MustCompile(`(?i)^https?://(?:www\.)?telegram\.me/([a-zA-Z0-9_]+)`),
		},
	},
	{
		Name:        "github",
		DisplayName: "GitHub",
		Aliases:     []string{"github", "gh"},
		Checker:     &checker.GitHubChecker{},
		buildURL:    func(handle string) string { return "https://github.com/" + handle },
		urlPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^https?://(?:www\.)?github\.com/([a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?)`),
		},
	},
}

var byAlias = buildAliasIndex(providers)

func buildAliasIndex(list []*Provider) map[string]*Provider {
	index := make(map[string]*Provider)
	for _, p := range list {
		for _, alias := range p.Aliases {
			index[strings.ToLower(alias)] = p
		}
	}
	return index
}

// List returns all registered providers in registry order. The returned
// slice must not be mutated.
func List() []*Provider {
	return providers
}

// Resolve returns the provider matching a name or alias, case-insensitive.
func Resolve(nameOrAlias string) (*Provider, bool) {
	p, ok := byAlias[strings.ToLower(strings.TrimSpace(nameOrAlias))]
	return p, ok
}

// ParseProfileURL tries every provider's URL shapes in registry order and
// returns the first match together with the extracted handle.
func ParseProfileURL(url string) (*Provider, string, bool) {
	for _, p := range providers {
		if handle, ok := p.ParseURL(url); ok {
			return p, handle, true
		}
	}
	return nil, "", false
}

// IsURL reports whether the input looks like a profile URL rather than a
// bare handle. It is a routing hint, not a validator.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
