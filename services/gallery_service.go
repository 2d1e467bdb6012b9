package services

import (
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"venue-backend/models"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// GalleryService lists the images directory at request time. Adding or
// removing files needs no code change.
type GalleryService struct {
	dir      string
	siteName string
	log      zerolog.Logger
}

func NewGalleryService(dir, siteName string, log zerolog.Logger) *GalleryService {
	return &GalleryService{
		dir:      dir,
		siteName: siteName,
		log:      log.With().Str("component", "gallery").Logger(),
	}
}

// List returns the gallery entries sorted by filename, or a random
// permutation when shuffle is set. An unreadable directory yields an empty
// listing, never an error to the caller.
func (s *GalleryService) List(shuffle bool) []models.GalleryImage {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warn().Err(err).Str("dir", s.dir).Msg("cannot read gallery directory")
		return []models.GalleryImage{}
	}

	images := make([]models.GalleryImage, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		images = append(images, models.GalleryImage{
			Src: path.Join("/images", name),
			Alt: s.captionFor(name),
		})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Src < images[j].Src })
	if shuffle {
		rand.Shuffle(len(images), func(i, j int) {
			images[i], images[j] = images[j], images[i]
		})
	}
	return images
}

// captionFor turns "space-main.jpg" into "Space Main"; filenames with no
// usable words fall back to the site name.
func (s *GalleryService) captionFor(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	words := strings.Fields(base)
	if len(words) == 0 {
		return s.siteName
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
