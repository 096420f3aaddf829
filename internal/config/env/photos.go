package envconfig

import "github.com/caarlos0/env/v11"

type photosEnv struct {
	Driver   string `env:"PHOTO_DRIVER" envDefault:"local"`
	Bucket   string `env:"PHOTO_BUCKET" envDefault:""`
	LocalDir string `env:"PHOTO_LOCAL_DIR" envDefault:"./uploads"`
	BaseURL  string `env:"PHOTO_BASE_URL" envDefault:"/uploads"`
}

type photos struct {
	raw photosEnv
}

func NewPhotosConfig() (*photos, error) {
	var raw photosEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &photos{raw: raw}, nil
}

func (cfg *photos) Driver() string   { return cfg.raw.Driver }
func (cfg *photos) Bucket() string   { return cfg.raw.Bucket }
func (cfg *photos) LocalDir() string { return cfg.raw.LocalDir }
func (cfg *photos) BaseURL() string  { return cfg.raw.BaseURL }
