package model

// Image describes a file held by the upload store. It is embedded with an
// image_ column prefix, or serialized as JSON for photo lists.
type Image struct {
	Filename     string `json:"filename" gorm:"size:255"`
	OriginalName string `json:"originalName" gorm:"size:255"`
	Path         string `json:"path" gorm:"size:512"`
	URL          string `json:"url" gorm:"size:1024"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype" gorm:"size:100"`
}

func (i Image) IsZero() bool {
	return i.Path == ""
}

// replaceImage swaps the single image slot and reports what was there.
func replaceImage(slot *Image, images []Image) []Image {
	if len(images) == 0 {
		return nil
	}
	old := *slot
	*slot = images[len(images)-1]
	// extras beyond the single slot are handed back for cleanup too
	replaced := append([]Image(nil), images[:len(images)-1]...)
	if !old.IsZero() {
		replaced = append(replaced, old)
	}
	return replaced
}

func singleImage(img Image) []Image {
	if img.IsZero() {
		return nil
	}
	return []Image{img}
}
