package config

import "github.com/footprint-tools/argspec/internal/domain"

// Provider exposes a settings file as a domain.ConfigProvider.
type Provider struct {
	file *File
}

// NewProvider serves ~/.argspecrc.
func NewProvider() *Provider {
	return &Provider{file: UserFile()}
}

// NewProviderFor serves f.
func NewProviderFor(f *File) *Provider {
	return &Provider{file: f}
}

func (p *Provider) Get(key string) (string, bool) { return p.file.Get(key) }

func (p *Provider) GetAll() (map[string]string, error) { return p.file.GetAll() }

// Set stores value for a documented key.
func (p *Provider) Set(key, value string) error {
	return p.file.Update(func(lines Lines) (Lines, error) {
		lines, _, err := lines.Set(key, value)
		return lines, err
	})
}

// Unset removes key so its default applies again.
func (p *Provider) Unset(key string) error {
	return p.file.Update(func(lines Lines) (Lines, error) {
		lines, _ = lines.Unset(key)
		return lines, nil
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
