package manage_gallery

import (
	"github.com/mulelash/MB-BeautyService/internal/domain"
)

type ImageResponse struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumbUrl"`
	Name     string `json:"name"`
}

func FromDomain(img *domain.GalleryImage) ImageResponse {
	return ImageResponse{
		ID:       img.ID,
		URL:      img.URL,
		ThumbURL: img.ThumbURL,
		Name:     img.Name,
	}
}

type ListResponse struct {
	Images []ImageResponse `json:"images"`
}

func FromDomainList(images []*domain.GalleryImage) ListResponse {
	out := ListResponse{Images: make([]ImageResponse, 0, len(images))}
	for _, img := range images {
		out.Images = append(out.Images, FromDomain(img))
	}
	return out
}
