package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"weather-forecast/internal/models"
)

const DefaultURLPrefix = "/v1/icons"

//go:embed icons/*.svg
var embedded embed.FS

var ErrMissingAsset = errors.New("missing asset")

// MissingAssetError reports a sky condition whose icon file cannot be found.
type MissingAssetError struct {
	Condition models.SkyCondition
	File      string
}

func (e *MissingAssetError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("no icon mapped for sky condition %q", e.Condition)
	}
	return fmt.Sprintf("icon %s for sky condition %q not found", e.File, e.Condition)
}

func (e *MissingAssetError) Is(target error) bool {
	return target == ErrMissingAsset
}

// iconFiles is the fixed icon set; unknown conditions use the placeholder.
var iconFiles = map[models.SkyCondition]string{
	models.SkyClear:   "clear.svg",
	models.SkyCloud:   "cloud.svg",
	models.SkyRain:    "rain.svg",
	models.SkySnow:    "snow.svg",
	models.SkyUnknown: "unknown.svg",
}

type IconSet struct {
	fsys      fs.FS
	urlPrefix string
}

// NewIconSet serves icons from dir, or from the embedded set when dir is empty.
func NewIconSet(dir, urlPrefix string) (*IconSet, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "icons")
		if err != nil {
			return nil, err
		}
		return NewIconSetFS(sub, urlPrefix), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("icon directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("icon directory: %s is not a directory", dir)
	}

	return NewIconSetFS(os.DirFS(dir), urlPrefix), nil
}

func NewIconSetFS(fsys fs.FS, urlPrefix string) *IconSet {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	return &IconSet{fsys: fsys, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (s *IconSet) URLPrefix() string {
	return s.urlPrefix
}

func (s *IconSet) file(c models.SkyCondition) (string, error) {
	name, ok := iconFiles[c]
	if !ok {
		return "", &MissingAssetError{Condition: c}
	}
	if _, err := fs.Stat(s.fsys, name); err != nil {
		return "", &MissingAssetError{Condition: c, File: name}
	}
	return name, nil
}

// URL returns the path the icon for c is served under.
func (s *IconSet) URL(c models.SkyCondition) (string, error) {
	if _, err := s.file(c); err != nil {
		return "", err
	}
	return path.Join(s.urlPrefix, c.String()), nil
}

// Open returns the icon bytes and content type for c.
func (s *IconSet) Open(c models.SkyCondition) ([]byte, string, error) {
	name, err := s.file(c)
	if err != nil {
		return nil, "", err
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, "", &MissingAssetError{Condition: c, File: name}
	}

	return data, contentType(name), nil
}

func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	}
	return "application/octet-stream"
}
