package models

// GalleryImage is one entry of the gallery listing served to the lightbox.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}
